package main

import (
	"context"
	"log"

	"github.com/riyal-rj/Microservices-GRPC/internal/gateway"
	"github.com/riyal-rj/Microservices-GRPC/internal/gateway/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := gateway.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
