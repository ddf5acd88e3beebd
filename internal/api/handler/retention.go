package handler

import (
	"net/http"

	"github.com/metacore/ads-performance-api/internal/api/handler/router"
	"github.com/metacore/ads-performance-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// RetentionRunner é o recorte do agendador de retenção exposto pela API.
type RetentionRunner interface {
	TriggerManualPrune()
	GetStatus() map[string]any
}

func Retention(service RetentionRunner) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/retention/status",
			Method:      http.MethodGet,
			Handler:     RetentionStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/retention/run",
			Method:      http.MethodPost,
			Handler:     RunRetention(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func RetentionStatus(service RetentionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(service.GetStatus()); err != nil {
			logrus.Error(err)
		}
	}
}

// RunRetention dispara a limpeza de versões antigas em background e responde
// de imediato; o resultado aparece no status.
func RunRetention(service RetentionRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.TriggerManualPrune()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Limpeza de versões antigas iniciada",
		})
	}
}
