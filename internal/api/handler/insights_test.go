package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/metacore/ads-performance-api/infrastructure/repository/mocks"
	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/metacore/ads-performance-api/internal/usecases/insighting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseFilters(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected domain.Filters
	}{
		{
			name:     "Sem parâmetros cai no padrão da aplicação",
			target:   "/v1/insights/overview",
			expected: domain.DefaultFilters(),
		},
		{
			name:   "Preset e dimensões da query string",
			target: "/v1/insights/overview?date_preset=7d&product=CBAS&campaign=C1&ad_set=S1&ad=A1",
			expected: domain.Filters{
				DatePreset: domain.DatePreset7d,
				Product:    "CBAS",
				Campaign:   "C1",
				AdSet:      "S1",
				Ad:         "A1",
			},
		},
		{
			name:     "Preset desconhecido volta ao padrão",
			target:   "/v1/insights/overview?date_preset=90d",
			expected: domain.DefaultFilters(),
		},
		{
			name:     "Preset all é aceito",
			target:   "/v1/insights/overview?date_preset=all",
			expected: domain.Filters{DatePreset: domain.DatePresetAll},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			assert.Equal(t, tt.expected, parseFilters(req))
		})
	}
}

func insightsDataset() []domain.AdRecord {
	return []domain.AdRecord{
		{
			Date: "2024-03-14", AdName: "AD01", Product: domain.ProductCBAS,
			CampaignName: "Conversao | CBAS", Spend: 100, Impressions: 1000,
			LinkClicks: 50, Purchases: 2,
		},
		{
			Date: "2024-03-15", AdName: "AD01", Product: domain.ProductCBAS,
			CampaignName: "Conversao | CBAS", Spend: 50, Impressions: 500,
			LinkClicks: 25, Purchases: 1,
		},
		{
			Date: "2023-01-05", AdName: "AD02", Product: domain.ProductIBFC,
			CampaignName: "Leads IBFC", Spend: 200, Impressions: 800,
			LinkClicks: 10, Purchases: 1,
		},
	}
}

func TestGetOverview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().Get().Return(insightsDataset(), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/insights/overview?date_preset=all", nil)
	rec := httptest.NewRecorder()

	GetOverview(insighting.NewService(mockRepo)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp insighting.OverviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.RecordCount)
	assert.Equal(t, domain.DatePresetAll, resp.Filters.DatePreset)
	assert.InDelta(t, 350.0, resp.Totals.Spend, 0.001)

	// Criativos ordenados por investimento decrescente.
	require.Len(t, resp.Creatives, 2)
	assert.Equal(t, "AD02", resp.Creatives[0].AdName)
	assert.Equal(t, "AD01", resp.Creatives[1].AdName)
	assert.InDelta(t, 150.0, resp.Creatives[1].Spend, 0.001)
}

func TestGetLeaderboards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDatasetRepository(ctrl)
	mockRepo.EXPECT().Get().Return(insightsDataset(), nil)

	// O parâmetro limit sobrescreve o tamanho configurado.
	req := httptest.NewRequest(http.MethodGet, "/v1/insights/leaderboards?date_preset=all&limit=1", nil)
	rec := httptest.NewRecorder()

	GetLeaderboards(insighting.NewService(mockRepo), testConfig()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp insighting.LeaderboardsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, 3, resp.RecordCount)
	require.Len(t, resp.Leaderboards.TopSpend, 1)
	assert.Equal(t, "AD02", resp.Leaderboards.TopSpend[0].Name)
	assert.InDelta(t, 200.0, resp.Leaderboards.TopSpend[0].Value, 0.001)
}
