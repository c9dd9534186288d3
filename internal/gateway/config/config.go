// Package config handles configuration for the gateway,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the gateway.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the external HTTP endpoint.
//   - UserServiceAddr / OrderServiceAddr: backend gRPC addresses.
//   - ShutdownTimeout: grace period for draining in-flight requests.
type Config struct {
	EndpointAddrHTTP string
	UserServiceAddr  string
	OrderServiceAddr string
	ShutdownTimeout  time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.UserServiceAddr = "localhost:50051"
	c.OrderServiceAddr = "localhost:50052"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
