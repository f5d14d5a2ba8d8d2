// Command server runs the assistant HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment. Run "server -help" to list the supported variables. SIGINT and SIGTERM trigger a graceful shutdown.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/assistant-core/internal/app"
	"github.com/heartmarshall/assistant-core/internal/config"
)

func main() {
	flag.Usage = func() { config.Usage(os.Stderr) }
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
