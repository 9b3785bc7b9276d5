package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/avoronov/authgate/internal/client/api"
	"github.com/avoronov/authgate/internal/client/cli"
)

func main() {
	server := flag.String("server", "http://localhost:3000", "server base URL")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	app := cli.NewApp(api.New(*server), os.Stdin, os.Stdout)
	if err := app.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
