package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/RoyceAzure/lab/stylish/internal/api"
	"github.com/RoyceAzure/lab/stylish/internal/api/router"
	"github.com/RoyceAzure/lab/stylish/internal/appcontext"
	"github.com/RoyceAzure/lab/stylish/internal/config"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cf, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}

	app, err := appcontext.NewApplicationContext(ctx, cf)
	if err != nil {
		log.Fatal(err)
	}

	server := api.NewServer(
		app.Catalog,
		app.SessionRepo,
		app.Producer,
		app.Checkout,
		app.Admin,
		cf.LoginDelay(),
		app.Logger,
	)

	r := router.SetupRouter(server, &app.Logger)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cf.ServerPort),
		Handler: r,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		app.Logger.Info().Msg("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("server shutdown error")
		}
		if err := app.Shutdown(shutdownCtx); err != nil {
			app.Logger.Error().Err(err).Msg("application shutdown error")
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	app.Logger.Info().Msg("closed completed")
}
