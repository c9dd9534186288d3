package config

import (
	"flag"
	"os"

	"github.com/riyal-rj/Microservices-GRPC/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50052")
//	-u string   user service address
//	-d string   PostgreSQL DSN; empty keeps the in-memory store
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d"})

	fs := flag.NewFlagSet("orderservice", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.UserServiceAddr, "u", config.UserServiceAddr, "user service address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
