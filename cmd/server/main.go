package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/ivolkov/filecab/internal/server"
	"github.com/ivolkov/filecab/internal/server/config"
)

func main() {

	// optional .env for local development
	_ = godotenv.Load()

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
