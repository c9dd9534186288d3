package main

import (
	"context"
	"log"

	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice"
	"github.com/riyal-rj/Microservices-GRPC/internal/orderservice/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := orderservice.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
