// Package config handles configuration for the user service,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the user service.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the internal gRPC endpoint.
//   - DatabaseDSN: optional PostgreSQL DSN (pgx). Empty selects the
//     in-memory store.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
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
