//go:build integration
// +build integration

package test

import (
	"net"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/orlangure/gnomock"
	"github.com/orlangure/gnomock/preset/mysql"
	"github.com/stretchr/testify/assert"
)

var schema = []string{
	`CREATE TABLE products (
		product_id VARCHAR(64) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		price DOUBLE NOT NULL,
		stock BIGINT NOT NULL
	)`,
	`CREATE TABLE orders (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		total_amount DOUBLE NOT NULL
	)`,
	`CREATE TABLE order_items (
		order_id BIGINT NOT NULL,
		product_id VARCHAR(64) NOT NULL,
		quantity BIGINT NOT NULL,
		price DOUBLE NOT NULL
	)`,
	`INSERT INTO products (product_id, name, price, stock) VALUES ('p1', 'Mug', 10.5, 10)`,
}

func startMySQL(t *testing.T) *gnomock.Container {
	p := mysql.Preset(
		mysql.WithUser("gnomock", "gnomick"),
		mysql.WithDatabase("catalog"),
		mysql.WithQueries(schema...),
	)

	container, err := gnomock.Start(p, gnomock.WithUseLocalImagesFirst())
	assert.NoError(t, err)

	t.Cleanup(func() { _ = gnomock.Stop(container) })

	return container
}

func setEnvironment(dbHost, dbPort string) {
	os.Setenv("DB_DRIVER", "mysql")
	os.Setenv("DB_HOST", dbHost)
	os.Setenv("DB_PORT", dbPort)
	os.Setenv("DB_USER", "gnomock")
	os.Setenv("DB_PASS", "gnomick")
	os.Setenv("DB_NAME", "catalog")
	os.Setenv("DB_WRITE", "true")

	os.Setenv("STAGE_PREFIX", "dev")
}

func waitForPortOpen(port int) {
	address := net.JoinHostPort("localhost", strconv.Itoa(port))
	for {
		_, err := net.DialTimeout("tcp", address, 500*time.Millisecond)
		if err == nil {
			break
		}
	}
}
