package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-announcement-bot/internal/config"
	"github.com/diegoclair/slack-announcement-bot/internal/domain/service"
	"github.com/diegoclair/slack-announcement-bot/internal/handlers"
	"github.com/diegoclair/slack-announcement-bot/internal/logger"
	"github.com/diegoclair/slack-announcement-bot/internal/notifier"
	"github.com/diegoclair/slack-announcement-bot/internal/scheduler"
	"github.com/diegoclair/slack-announcement-bot/internal/storage"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/slack-go/slack"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	repo, err := storage.Open(storage.Config{
		Driver: cfg.StoreDriver,
		Path:   cfg.StorePath,
	}, log)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close storage")
		}
	}()

	slackClient := slack.New(cfg.SlackBotToken)
	slackNotifier := notifier.NewSlack(slackClient, cfg.SlackChannelID, cfg.DeliveryRate, log)

	clock := clockwork.NewRealClock()
	instance := service.NewInstance(repo, slackNotifier, log, service.Options{
		Clock:           clock,
		Location:        cfg.Location,
		AnnounceOnStart: cfg.AnnounceOnStart,
	})

	runner := scheduler.New(instance.Scheduler, scheduler.Config{
		Interval:    cfg.TickInterval,
		StopTimeout: cfg.DrainTimeout,
		Location:    cfg.Location,
		Clock:       clock,
	}, log)

	mux := http.NewServeMux()
	handlers.New(instance.Announcement, cfg.SlackSigningSecret, log).Routes(mux)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := runner.Start(ctx); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		return shutdown(server, runner, log)
	})

	return g.Wait()
}

// shutdown stops accepting commands first, then drains the scheduler so the
// last tick's state is persisted.
func shutdown(server *http.Server, runner *scheduler.Scheduler, log zerolog.Logger) error {
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var errList []error
	if err := server.Shutdown(ctx); err != nil {
		errList = append(errList, fmt.Errorf("failed to shutdown server: %w", err))
	}
	if err := runner.Stop(ctx); err != nil {
		errList = append(errList, err)
	}

	return errors.Join(errList...)
}
