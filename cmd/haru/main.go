package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/harudiary/haru/internal/client"
	"github.com/harudiary/haru/internal/client/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, err := client.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
