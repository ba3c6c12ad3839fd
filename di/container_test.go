package di

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"forecast-dashboard/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewContainer_InMemory(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Env:                       "dev",
		HTTPAddress:               "127.0.0.1:0",
		ForecastSeed:              42,
		ForecastStartOffsetMonths: 6,
		RateLimitRPS:              100,
		RateLimitBurst:            100,
	}

	c, err := NewContainer(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, c.CityCatalogService.SyncCatalog(ctx))
	c.Router.RegisterRoutes()

	for _, path := range []string{
		"/ping",
		"/v1/cities",
		"/v1/cities/nearby?lat=48.85&lon=2.35&radius=100",
		"/v1/forecast?city=Paris,+France&date=2024-01-01",
		"/v1/forecast/table?city=Paris,+France&date=2024-01-01",
		"/v1/forecast/chart?city=Paris,+France&date=2024-01-01",
	} {
		rr := httptest.NewRecorder()
		c.MuxRouter.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}
}
