package db

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/ubuntucrafts/catalog/pkg/env"
)

type DBEnv struct {
	Driver     DriverType
	Host       string
	Port       int
	Username   string
	Password   string
	Name       string
	AllowWrite bool
}

func NewDBEnv() *DBEnv {
	return &DBEnv{}
}

func (d *DBEnv) Populate() error {
	driver := os.Getenv("DB_DRIVER")
	if driver == "" {
		return &env.Error{Name: "DB_DRIVER"}
	}
	if !DriverType(driver).IsValid() {
		return &env.TypeError{Name: "DB_DRIVER"}
	}
	d.Driver = DriverType(driver)

	host := os.Getenv("DB_HOST")
	if host == "" {
		return &env.Error{Name: "DB_HOST"}
	}
	d.Host = host

	d.Port = d.Driver.Port()
	if port := os.Getenv("DB_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return &env.TypeError{Name: "DB_PORT"}
		}
		d.Port = p
	}

	username := os.Getenv("DB_USER")
	if username == "" {
		return &env.Error{Name: "DB_USER"}
	}
	d.Username = username

	password := os.Getenv("DB_PASS")
	if password == "" {
		return &env.Error{Name: "DB_PASS"}
	}
	d.Password = password

	name := os.Getenv("DB_NAME")
	if name == "" {
		return &env.Error{Name: "DB_NAME"}
	}
	d.Name = name

	if write := os.Getenv("DB_WRITE"); write != "" {
		b, err := strconv.ParseBool(write)
		if err != nil {
			return &env.TypeError{Name: "DB_WRITE"}
		}
		d.AllowWrite = b
	}

	return nil
}

func (d *DBEnv) ConnectionDSN() string {
	switch d.Driver.Name() {
	case driverMySQL:
		return fmt.Sprintf(d.Driver.Format(), d.Username, d.Password, d.Host, d.Port, d.Name)
	case driverPostgreSQL:
		userinfo := url.UserPassword(d.Username, d.Password).String()
		return fmt.Sprintf(d.Driver.Format(), userinfo, d.Host, d.Port, d.Name)
	default:
		return ""
	}
}
