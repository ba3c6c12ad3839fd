package di

import (
	"context"
	"fmt"
	"log"
	"time"

	"forecast-dashboard/config"
	"forecast-dashboard/dao/redis"
	"forecast-dashboard/db"
	"forecast-dashboard/server"
	"forecast-dashboard/server/handlers"
	services "forecast-dashboard/service"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
)

// Container holds all application dependencies.
type Container struct {
	Config              *config.Config
	RedisClient         db.RedisClient
	RedisCityDao        *redis.RedisCityDAO
	ForecastGenerator   *services.ForecastGenerator
	ForecastService     *services.ForecastService
	CityCatalogService  *services.CityCatalogService
	ForecastHandler     *handlers.ForecastHandler
	CityHandler         *handlers.CityHandler
	MuxRouter           *mux.Router
	Router              *server.Router
	DashboardHttpServer *server.DashboardHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	log.Printf("[Container] initializing container - env: %s", cfg.Env)

	var redisClient db.RedisClient
	if cfg.UsesRedis() {
		log.Printf("[Container] Using redis at %s", cfg.RedisAddress)
		redisClient = db.NewGeoRedisClient(goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddress,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}))
	} else {
		log.Printf("[Container] Using in-memory city store")
		redisClient = db.NewMockRedisClient()
	}
	if err := redisClient.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisCityDao := redis.NewRedisCityDAO(redisClient)

	forecastGenerator := services.NewForecastGenerator()
	forecastService := services.NewForecastService(forecastGenerator, cfg.ForecastSeed, cfg.ForecastStartOffsetMonths)
	cityCatalogService := services.NewCityCatalogService(redisCityDao)

	forecastHandler := handlers.NewForecastHandler(forecastService)
	cityHandler := handlers.NewCityHandler(cityCatalogService)

	muxRouter := mux.NewRouter()
	muxRouter.Use(server.RequestLogger, server.RateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router := server.NewRouter(forecastHandler, cityHandler, muxRouter)

	dashboardHttpServer := server.NewDashboardHttpServer(router, muxRouter, cfg.HTTPAddress,
		config.HTTP_SHUTDOWN_TIMEOUT_SECONDS*time.Second)

	return &Container{
		Config:              cfg,
		RedisClient:         redisClient,
		RedisCityDao:        redisCityDao,
		ForecastGenerator:   forecastGenerator,
		ForecastService:     forecastService,
		CityCatalogService:  cityCatalogService,
		ForecastHandler:     forecastHandler,
		CityHandler:         cityHandler,
		MuxRouter:           muxRouter,
		Router:              router,
		DashboardHttpServer: dashboardHttpServer,
	}, nil
}
