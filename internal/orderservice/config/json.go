package config

import (
	"encoding/json"
	"os"

	"github.com/riyal-rj/Microservices-GRPC/internal/flagx"
)

// JsonConfig is the JSON-file shape of Config.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	UserServiceAddr  string `json:"user_service_addr"`
	DatabaseDSN      string `json:"database_dsn"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags, if any.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.UserServiceAddr != "" {
		config.UserServiceAddr = c.UserServiceAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
}
