package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/metacore/ads-performance-api/internal/api/handler/router"
	"github.com/metacore/ads-performance-api/internal/config"
	"github.com/metacore/ads-performance-api/internal/usecases/authenticating"
	"github.com/metacore/ads-performance-api/internal/usecases/insighting"
	"github.com/metacore/ads-performance-api/pkg/metrics"
	"github.com/metacore/ads-performance-api/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// json é o codec da camada de apresentação, compatível com a biblioteca
// padrão porém mais rápido na serialização das respostas agregadas.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Users(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Datasets(m *metrics.Metrics, cfg *config.Config, repo DatasetReplacer) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets",
			Method:      http.MethodPost,
			Handler:     UploadDataset(m, cfg, repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets",
			Method:      http.MethodDelete,
			Handler:     ResetDataset(repo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Insights(service insighting.Insighter, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/overview",
			Method:      http.MethodGet,
			Handler:     GetOverview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/leaderboards",
			Method:      http.MethodGet,
			Handler:     GetLeaderboards(service, cfg),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/dimensions",
			Method:      http.MethodGet,
			Handler:     GetDimensions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/insights/summary",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}
