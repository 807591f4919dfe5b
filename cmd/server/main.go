package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"alcatelz/internal/app/server/api"
	"alcatelz/internal/app/server/config"
	"alcatelz/internal/domain/record"
	"alcatelz/internal/infrastructure/markdown"
	"alcatelz/internal/infrastructure/storage"
	"alcatelz/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	conf := config.MustLoad()
	log := logger.NewWithLevel(conf.Env, conf.Logger.LogLevel)
	log.Info("starting server",
		slog.String("env", conf.Env),
		slog.String("store", conf.StoreDriver),
		slog.String("address", conf.Server.RunAddress),
	)

	if err := run(conf, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(conf *config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.New(ctx, conf, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", "error", err)
		}
	}()

	service := record.NewService(store, record.NewFactory(), log,
		record.WithMarkdown(markdown.New()),
		record.WithCodeLanguage(conf.CodeLanguage),
	)

	srv := &http.Server{
		Addr: conf.Server.RunAddress,
		Handler: api.New(api.Deps{
			Service:   service,
			Store:     store,
			StoreName: conf.StoreDriver,
			Log:       log,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
