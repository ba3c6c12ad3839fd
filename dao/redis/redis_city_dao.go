package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"forecast-dashboard/db"
	"forecast-dashboard/models/city"
)

const CITIES_GEO_KEY_V1 = "cities_geo_v1"
const CITIES_GEO_PLACE_MEMBER_FORMAT_V1 = "cities_geo_place_v1:%s"

// RedisCityDAO keeps the city catalog in a Redis geo index.
type RedisCityDAO struct {
	client db.RedisClient
}

func NewRedisCityDAO(client db.RedisClient) *RedisCityDAO {
	return &RedisCityDAO{client: client}
}

// UpsertCity stores the city as a geo member keyed by its location label.
func (dao *RedisCityDAO) UpsertCity(ctx context.Context, c city.City) error {
	memberKey := fmt.Sprintf(CITIES_GEO_PLACE_MEMBER_FORMAT_V1, c.Location())
	if err := dao.client.AddLocationWithJSON(ctx, CITIES_GEO_KEY_V1, memberKey, c.Lat, c.Lon, c); err != nil {
		return fmt.Errorf("[RedisCityDAO] failed to upsert city %q: %w", c.Location(), err)
	}
	return nil
}

// GetNearbyCities returns cities within radius km of (lat, lon), nearest first.
func (dao *RedisCityDAO) GetNearbyCities(ctx context.Context, lat, lon, radius float64) ([]city.City, error) {
	citiesJSON, err := dao.client.GetLocationsWithinRadius(ctx, CITIES_GEO_KEY_V1, lat, lon, radius)
	if err != nil {
		return nil, fmt.Errorf("[RedisCityDAO] failed to get cities: %w", err)
	}

	cities := make([]city.City, len(citiesJSON))
	for i, cityJSON := range citiesJSON {
		if err := json.Unmarshal([]byte(cityJSON), &cities[i]); err != nil {
			return nil, fmt.Errorf("failed to unmarshal city JSON: %w", err)
		}
	}
	log.Printf("[RedisCityDAO] Found %d cities within %.0f km of (%.4f, %.4f)", len(cities), radius, lat, lon)
	return cities, nil
}

// GetCity loads one city by its location label.
func (dao *RedisCityDAO) GetCity(ctx context.Context, location string) (*city.City, error) {
	key := fmt.Sprintf(CITIES_GEO_PLACE_MEMBER_FORMAT_V1, location)
	str, err := dao.client.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get city %q: %w", location, err)
	}
	var c city.City
	if err := json.Unmarshal([]byte(str), &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal city JSON: %w", err)
	}
	return &c, nil
}

// ListCityLocations returns the labels of every stored city, sorted.
func (dao *RedisCityDAO) ListCityLocations(ctx context.Context) ([]string, error) {
	keys, err := dao.client.Keys(ctx, fmt.Sprintf(CITIES_GEO_PLACE_MEMBER_FORMAT_V1, "*"))
	if err != nil {
		return nil, fmt.Errorf("failed to list city keys: %w", err)
	}
	prefix := fmt.Sprintf(CITIES_GEO_PLACE_MEMBER_FORMAT_V1, "")
	locations := make([]string, 0, len(keys))
	for _, k := range keys {
		locations = append(locations, strings.TrimPrefix(k, prefix))
	}
	sort.Strings(locations)
	return locations, nil
}
