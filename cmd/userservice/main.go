package main

import (
	"context"
	"log"

	"github.com/riyal-rj/Microservices-GRPC/internal/userservice"
	"github.com/riyal-rj/Microservices-GRPC/internal/userservice/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := userservice.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
