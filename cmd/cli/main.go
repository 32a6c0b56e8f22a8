package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/badgekeeper/internal/buildinfo"
	"github.com/dmitrijs2005/badgekeeper/internal/client/cli"
	"github.com/dmitrijs2005/badgekeeper/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The REPL notices the interrupt once its current read returns. Restoring
	// default handling lets a second interrupt end a blocked read.
	go func() {
		<-ctx.Done()
		stop()
	}()

	cfg := config.LoadConfig()
	app, err := cli.NewApp(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
