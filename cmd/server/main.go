// cmd/server/main.go
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/statuskite/statuskite/pkg/agents"
	"github.com/statuskite/statuskite/pkg/alerts"
	"github.com/statuskite/statuskite/pkg/api"
	"github.com/statuskite/statuskite/pkg/checker"
	"github.com/statuskite/statuskite/pkg/config"
	"github.com/statuskite/statuskite/pkg/db"
	"github.com/statuskite/statuskite/pkg/lifecycle"
	"github.com/statuskite/statuskite/pkg/metrics"
	"github.com/statuskite/statuskite/pkg/monitoring"
	"github.com/statuskite/statuskite/pkg/scheduler"
	"github.com/statuskite/statuskite/pkg/status"
)

func main() {
	configPath := flag.String("config", "/etc/statuskite/server.json", "Path to config file")
	flag.Parse()

	var cfg config.ServerConfig
	if err := config.LoadAndValidate(*configPath, &cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	collector := metrics.NewManager(cfg.MetricsRetention)

	updater := monitoring.NewUpdater(database, collector)

	hub := api.NewHub()
	updater.AddListener(hub)

	if cfg.Webhook.Enabled {
		updater.AddListener(alerts.NewTransitionAlerter(alerts.NewWebhookAlerter(cfg.Webhook)))
	}

	runner := scheduler.NewRunner(database, checker.NewHTTPChecker(), updater, cfg.Workers)
	tracker := agents.NewTracker(database)
	aggregator := status.NewAggregator(database)

	server := api.NewServer(database, tracker, aggregator, runner, collector, hub, api.AuthConfig{
		Username:  cfg.Auth.Username,
		Password:  cfg.Auth.Password,
		JWTSecret: cfg.Auth.JWTSecret,
	})

	services := []lifecycle.Service{
		&schedulerService{runner: runner, interval: time.Duration(cfg.TickInterval)},
		&cleanupService{
			database:  database,
			retention: time.Duration(cfg.Retention),
			interval:  time.Duration(cfg.CleanupInterval),
		},
	}

	err = lifecycle.RunServer(context.Background(), &lifecycle.ServerOptions{
		ListenAddr:  cfg.ListenAddr,
		ServiceName: "statuskite-server",
		Handler:     server.Router(),
		Services:    services,
	})
	if err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// schedulerService adapts the check runner to the lifecycle contract.
type schedulerService struct {
	runner   *scheduler.Runner
	interval time.Duration
}

func (s *schedulerService) Start(ctx context.Context) error {
	return s.runner.Start(ctx, s.interval)
}

func (*schedulerService) Stop(context.Context) error {
	return nil
}

// cleanupService prunes ledger rows past the retention window.
type cleanupService struct {
	database  db.Service
	retention time.Duration
	interval  time.Duration
}

func (c *cleanupService) Start(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.database.CleanOldData(c.retention); err != nil {
				log.Printf("Error cleaning old data: %v", err)
			}
		}
	}
}

func (*cleanupService) Stop(context.Context) error {
	return nil
}
