package server

import (
	"os"
	"strconv"
	"strings"

	"github.com/ubuntucrafts/catalog/pkg/env"
)

const defaultPort = 8080

// ServerEnv carries the HTTP server configuration. StagePrefix models the
// API gateway deployment stage the service is published under, so routes
// resolve as e.g. /dev/products when STAGE_PREFIX=dev.
type ServerEnv struct {
	Port        int
	StagePrefix string
}

func NewServerEnv() *ServerEnv {
	return &ServerEnv{}
}

func (s *ServerEnv) Populate() error {
	s.Port = defaultPort
	if port := os.Getenv("HTTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return &env.TypeError{Name: "HTTP_PORT"}
		}
		s.Port = p
	}

	if stage := os.Getenv("STAGE_PREFIX"); stage != "" {
		s.StagePrefix = "/" + strings.Trim(stage, "/")
	}

	return nil
}
