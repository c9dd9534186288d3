package config

import (
	"encoding/json"
	"os"

	"github.com/riyal-rj/Microservices-GRPC/internal/flagx"
)

// JsonConfig is the JSON-file shape of Config. It exists so config files can
// evolve independently of the runtime struct.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
}

// parseJson overlays values from the JSON file named by the -c/-config
// flags, if any. Invalid files panic: a config file that is present but
// unreadable is a deployment error.
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
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
}
