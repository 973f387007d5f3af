// Command fenrir-server runs the HTTP-fronted matching engine: a
// multi-symbol book registry behind the reference /trade and /cancel
// endpoints, plus /depth and /metrics.
package main

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"fenrir/internal/engine"
	"fenrir/internal/httpapi"
)

func main() {
	address := flag.String("address", "0.0.0.0:6060", "address to listen on")
	flag.Parse()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
	)
	defer stop()

	registry := engine.NewRegistry()
	srv := httpapi.New(*address, registry)

	if err := srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited with error")
	}
}
