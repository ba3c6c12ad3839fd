package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"forecast-dashboard/dao/redis"
	"forecast-dashboard/models/city"
)

// CityCatalogService keeps the Redis geo index in sync with the built-in
// catalog and answers picker queries.
type CityCatalogService struct {
	cityDao *redis.RedisCityDAO
}

func NewCityCatalogService(cityDao *redis.RedisCityDAO) *CityCatalogService {
	return &CityCatalogService{cityDao: cityDao}
}

// SyncCatalog upserts every catalog city. It keeps going past failures and
// reports how many upserts failed.
func (cs *CityCatalogService) SyncCatalog(ctx context.Context) error {
	cities := city.All()
	log.Printf("[CityCatalogService] Syncing %d cities", len(cities))

	failed := 0
	for _, c := range cities {
		if err := cs.cityDao.UpsertCity(ctx, c); err != nil {
			log.Printf("[CityCatalogService] Upsert failed for %s: %v", c.Location(), err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("failed to sync %d of %d cities", failed, len(cities))
	}
	log.Println("[CityCatalogService] Catalog sync completed successfully.")
	return nil
}

// StartPeriodicSync re-syncs the catalog every interval until ctx is done.
func (cs *CityCatalogService) StartPeriodicSync(ctx context.Context, interval time.Duration) {
	go cs.startPeriodicSync(ctx, interval)
}

func (cs *CityCatalogService) startPeriodicSync(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[CityCatalogService] Periodic sync stopped.")
			return
		case <-ticker.C:
			if err := cs.SyncCatalog(ctx); err != nil {
				log.Printf("[CityCatalogService] SyncCatalog returned error: %v", err)
			}
		}
	}
}

// ListCities returns the catalog in picker order.
func (cs *CityCatalogService) ListCities() []city.City {
	return city.All()
}

// NearbyCities returns synced cities within radius km, nearest first.
func (cs *CityCatalogService) NearbyCities(ctx context.Context, lat, lon, radius float64) ([]city.City, error) {
	return cs.cityDao.GetNearbyCities(ctx, lat, lon, radius)
}
