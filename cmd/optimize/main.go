// Command optimize runs the Optidash workflow once for every URI given on the command line.
// Exit status is 1 if at least one image was left unoptimized.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/OptidashOptimizer/internal/optimizer"
	"github.com/UnendingLoop/OptidashOptimizer/internal/settings"
	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/zlog"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: optimize <uri> [uri...]")
		os.Exit(2)
	}

	appConfig := config.New()
	appConfig.EnableEnv("")
	if err := appConfig.LoadEnvFiles("./.env"); err != nil {
		log.Printf("No .env loaded, using environment only: %v", err)
	}

	zlog.InitConsole()
	if err := zlog.SetLevel("info"); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	workflow := optimizer.NewFromConfig(appConfig)
	procSettings := settings.Load(appConfig.GetString)

	failed := 0
	for _, uri := range os.Args[1:] {
		if ctx.Err() != nil {
			break
		}
		if !workflow.Optimize(ctx, uri, procSettings) {
			failed++
		}
	}

	if failed > 0 || ctx.Err() != nil {
		stop()
		os.Exit(1)
	}
}
