package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"forecast-dashboard/config"
	"forecast-dashboard/di"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	if err := container.CityCatalogService.SyncCatalog(ctx); err != nil {
		log.Printf("Initial city catalog sync incomplete: %v", err)
	}
	container.CityCatalogService.StartPeriodicSync(ctx, config.CITY_CATALOG_SYNC_SCHEDULE_MINUTES*time.Minute)

	if err := container.DashboardHttpServer.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
