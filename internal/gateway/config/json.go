package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/riyal-rj/Microservices-GRPC/internal/flagx"
	"github.com/riyal-rj/Microservices-GRPC/internal/timex"
)

// JsonConfig is the JSON-file shape of Config. Durations accept both string
// values such as "5s" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP string         `json:"endpoint_addr_http"`
	UserServiceAddr  string         `json:"user_service_addr"`
	OrderServiceAddr string         `json:"order_service_addr"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
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

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.UserServiceAddr != "" {
		config.UserServiceAddr = c.UserServiceAddr
	}
	if c.OrderServiceAddr != "" {
		config.OrderServiceAddr = c.OrderServiceAddr
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = time.Duration(c.ShutdownTimeout.Duration)
	}
}
