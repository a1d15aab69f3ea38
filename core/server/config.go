package server

import (
	"net"
	"time"
)

// Config holds configuration for the read-only league HTTP API.
type Config struct {
	// Host is the interface to bind; empty binds all interfaces.
	Host string `mapstructure:"host" default:""`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReadTimeoutSeconds bounds reading a request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"15"`
}

// Address returns the listen address in host:port form.
func (c Config) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// ReadTimeout returns the request read timeout, defaulting to 15 seconds.
func (c Config) ReadTimeout() time.Duration {
	if c.ReadTimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}
