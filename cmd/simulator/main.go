package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kiryu-dev/heckmeck/internal/adapters/webapi"
	"github.com/kiryu-dev/heckmeck/internal/config"
	"github.com/kiryu-dev/heckmeck/internal/domain"
	"github.com/kiryu-dev/heckmeck/internal/transport/ws"
	"github.com/kiryu-dev/heckmeck/internal/usecase/hub"
	"github.com/kiryu-dev/heckmeck/internal/usecase/simulation"
	"github.com/kiryu-dev/heckmeck/internal/usecase/strategy"
	"github.com/kiryu-dev/heckmeck/internal/usecase/turn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfgPath := flag.String("config", "", "path to config")
	flag.Parse()
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	cfg, err := config.New(*cfgPath)
	if err != nil {
		logger.Fatal(err.Error())
	}
	if cfg.Debug {
		if logger, err = zap.NewDevelopment(); err != nil {
			panic(err)
		}
	}
	defer func() {
		_ = logger.Sync()
	}()
	if err := run(cfg, logger); err != nil {
		logger.Fatal(err.Error())
	}
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	errGroup, ctx := errgroup.WithContext(ctx)
	errGroup.Go(func() error {
		select {
		case s := <-sigChan:
			return errors.Errorf("captured signal: %v", s)
		case <-ctx.Done():
			return nil
		}
	})
	var (
		feed     = hub.New(logger)
		registry = strategy.NewRegistry(cfg.Tunables, logger)
		sim      = simulation.New(cfg, registry, turn.New(logger), logger)
		sink     domain.FeedPublisher
	)
	if cfg.Feed.Addr != "" {
		server := ws.New(cfg.Feed.Addr, feed, logger)
		go func() {
			if err := server.ListenAndServe(); err != nil {
				logger.Error(err.Error())
			}
		}()
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Info("failed to shutdown feed server: " + err.Error())
			}
		}()
		sink = feed
	}
	errGroup.Go(func() error {
		defer cancel()
		summary, err := sim.Run(ctx, sink)
		if err != nil {
			return errors.WithMessage(err, "run simulation")
		}
		printSummary(os.Stdout, cfg, summary)
		if cfg.Report.Webhook == "" {
			return nil
		}
		if err := webapi.New(cfg.Report.Timeout).Publish(context.Background(), cfg.Report.Webhook, summary); err != nil {
			logger.Warn("failed to publish summary: " + err.Error())
		}
		return nil
	})
	return errGroup.Wait()
}
