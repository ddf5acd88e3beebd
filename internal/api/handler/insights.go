package handler

import (
	"net/http"
	"time"

	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/metacore/ads-performance-api/internal/usecases/insighting"
	"github.com/metacore/ads-performance-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

var validPresets = map[domain.DatePreset]bool{
	domain.DatePreset7d:  true,
	domain.DatePreset14d: true,
	domain.DatePreset30d: true,
	domain.DatePresetMTD: true,
	domain.DatePresetAll: true,
}

// parseFilters monta o estado de filtragem a partir da query string.
// Preset ausente ou desconhecido cai no padrão da aplicação.
func parseFilters(r *http.Request) domain.Filters {
	q := r.URL.Query()

	filters := domain.DefaultFilters()
	if preset := domain.DatePreset(q.Get("date_preset")); validPresets[preset] {
		filters.DatePreset = preset
	}

	filters.Product = q.Get("product")
	filters.Campaign = q.Get("campaign")
	filters.AdSet = q.Get("ad_set")
	filters.Ad = q.Get("ad")

	return filters
}

func GetOverview(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.Overview(parseFilters(r), time.Now())
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar visão geral")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func GetDimensions(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.Dimensions(parseFilters(r))
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar dimensões de filtro")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func GetSummary(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := service.Summary(parseFilters(r), time.Now())
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar resumo numérico")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar dataset", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}
