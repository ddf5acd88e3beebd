package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/metacore/ads-performance-api/internal/config"
	"github.com/metacore/ads-performance-api/internal/usecases/insighting"
	"github.com/metacore/ads-performance-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// GetLeaderboards devolve os quadros top-N do conjunto filtrado. O parâmetro
// `limit` sobrescreve o tamanho configurado; valores inválidos são ignorados.
func GetLeaderboards(service insighting.Insighter, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := cfg.Ranking.LeaderboardLimit
		if raw := r.URL.Query().Get("limit"); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n > 0 {
				limit = n
			}
		}

		resp, err := service.Leaderboards(parseFilters(r), time.Now(), limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar leaderboards")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
