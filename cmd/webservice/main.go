package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "time/tzdata"

	"github.com/alimikegami/point-of-sales/store-admin/config"
	"github.com/alimikegami/point-of-sales/store-admin/internal/app"
	"github.com/rs/zerolog/log"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application := &app.App{Config: config.CreateNewConfig()}

	if err := application.Setup(ctx); err != nil {
		application.StopServer()
		log.Fatal().Err(err).Msg("Failed to start server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Serve()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			application.StopServer()
			log.Fatal().Err(err).Msg("Server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
		if err := application.StopServer(); err != nil {
			log.Error().Err(err).Msg("Failed to stop server cleanly")
			os.Exit(1)
		}
		<-errCh
	}
}
