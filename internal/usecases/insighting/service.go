// Package insighting é o motor de agregação: reduz a coleção filtrada de
// registros em visões agregadas (rollups por criativo, série temporal e
// totais) e monta as respostas consumidas pela camada de apresentação.
package insighting

import (
	"time"

	"github.com/metacore/ads-performance-api/infrastructure/repository"
	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/metacore/ads-performance-api/internal/usecases/filtering"
	"github.com/metacore/ads-performance-api/internal/usecases/ranking"
	"github.com/metacore/ads-performance-api/pkg/utils"
)

// OverviewResponse é a visão geral do conjunto filtrado: totais, série
// temporal e rollups por criativo (ordenados por investimento decrescente).
type OverviewResponse struct {
	Totals      domain.Totals               `json:"totals"`
	TimeSeries  []domain.TimeBucket         `json:"time_series"`
	Creatives   []domain.AggregatedCreative `json:"creatives"`
	RecordCount int                         `json:"record_count"`
	Filters     domain.Filters              `json:"filters"`
}

// LeaderboardsResponse embala os quadros de ranqueamento do conjunto filtrado.
type LeaderboardsResponse struct {
	Leaderboards ranking.Leaderboards `json:"leaderboards"`
	RecordCount  int                  `json:"record_count"`
	Filters      domain.Filters       `json:"filters"`
}

// DimensionsResponse lista os valores distintos de cada dimensão para montar
// os drop-downs em cascata. Cada nível é restrito pela seleção dos níveis
// acima dele.
type DimensionsResponse struct {
	Products  []string `json:"products"`
	Campaigns []string `json:"campaigns"`
	AdSets    []string `json:"ad_sets"`
	Ads       []string `json:"ads"`
}

// SummaryCreative é a fatia de um criativo exposta ao colaborador de
// narrativa: só números e texto, nenhum interno do motor.
type SummaryCreative struct {
	AdName    string  `json:"ad_name"`
	Spend     float64 `json:"spend"`
	Purchases float64 `json:"purchases"`
	CTR       float64 `json:"ctr"`
}

// SummaryResponse é o resumo numérico consumido pelo gerador de insights.
type SummaryResponse struct {
	TotalSpend     float64           `json:"total_spend"`
	TotalPurchases float64           `json:"total_purchases"`
	AverageCPA     float64           `json:"average_cpa"`
	TopCreatives   []SummaryCreative `json:"top_creatives"`
}

// Insighter expõe as visões agregadas do dataset corrente. Todas as
// operações recalculam do zero a partir da coleção completa: estratégia
// deliberada que elimina bugs de soma parcial desatualizada, aceitável
// porque o volume de entrada é limitado.
type Insighter interface {
	Overview(filters domain.Filters, now time.Time) (*OverviewResponse, error)
	Leaderboards(filters domain.Filters, now time.Time, limit int) (*LeaderboardsResponse, error)
	Dimensions(filters domain.Filters) (*DimensionsResponse, error)
	Summary(filters domain.Filters, now time.Time) (*SummaryResponse, error)
}

type Service struct {
	datasetRepo repository.DatasetRepository
}

func NewService(datasetRepo repository.DatasetRepository) Insighter {
	return &Service{datasetRepo: datasetRepo}
}

func (s *Service) Overview(filters domain.Filters, now time.Time) (*OverviewResponse, error) {
	records, err := s.datasetRepo.Get()
	if err != nil {
		return nil, err
	}

	filtered := filtering.Apply(records, filters, now)

	return &OverviewResponse{
		Totals:      ComputeTotals(filtered),
		TimeSeries:  AggregateByDay(filtered),
		Creatives:   SortBySpendDesc(AggregateByCreative(filtered)),
		RecordCount: len(filtered),
		Filters:     filters,
	}, nil
}

func (s *Service) Leaderboards(filters domain.Filters, now time.Time, limit int) (*LeaderboardsResponse, error) {
	records, err := s.datasetRepo.Get()
	if err != nil {
		return nil, err
	}

	filtered := filtering.Apply(records, filters, now)
	creatives := AggregateByCreative(filtered)

	return &LeaderboardsResponse{
		Leaderboards: ranking.BuildLeaderboards(creatives, limit),
		RecordCount:  len(filtered),
		Filters:      filters,
	}, nil
}

// Dimensions calcula as opções em cascata sobre o dataset completo, sem
// janela de datas: o recorte temporal não deve esconder opções de navegação.
func (s *Service) Dimensions(filters domain.Filters) (*DimensionsResponse, error) {
	records, err := s.datasetRepo.Get()
	if err != nil {
		return nil, err
	}

	resp := &DimensionsResponse{
		Products:  []string{},
		Campaigns: []string{},
		AdSets:    []string{},
		Ads:       []string{},
	}

	seenProduct := map[string]bool{}
	seenCampaign := map[string]bool{}
	seenAdSet := map[string]bool{}
	seenAd := map[string]bool{}

	for _, r := range records {
		if !seenProduct[r.Product] {
			seenProduct[r.Product] = true
			resp.Products = append(resp.Products, r.Product)
		}

		if filters.Product != "" && r.Product != filters.Product {
			continue
		}
		if !seenCampaign[r.CampaignName] {
			seenCampaign[r.CampaignName] = true
			resp.Campaigns = append(resp.Campaigns, r.CampaignName)
		}

		if filters.Campaign != "" && r.CampaignName != filters.Campaign {
			continue
		}
		if !seenAdSet[r.AdSetName] {
			seenAdSet[r.AdSetName] = true
			resp.AdSets = append(resp.AdSets, r.AdSetName)
		}

		if filters.AdSet != "" && r.AdSetName != filters.AdSet {
			continue
		}
		if !seenAd[r.AdName] {
			seenAd[r.AdName] = true
			resp.Ads = append(resp.Ads, r.AdName)
		}
	}

	return resp, nil
}

// Summary monta o resumo numérico para o colaborador de narrativa: totais do
// conjunto filtrado e os cinco criativos de maior investimento.
func (s *Service) Summary(filters domain.Filters, now time.Time) (*SummaryResponse, error) {
	records, err := s.datasetRepo.Get()
	if err != nil {
		return nil, err
	}

	filtered := filtering.Apply(records, filters, now)
	totals := ComputeTotals(filtered)
	top := SortBySpendDesc(AggregateByCreative(filtered))

	if len(top) > ranking.DefaultLimit {
		top = top[:ranking.DefaultLimit]
	}

	// O resumo alimenta texto de narrativa: valores já saem arredondados
	// para duas casas, os agregados brutos continuam com precisão total.
	summary := &SummaryResponse{
		TotalSpend:     utils.RoundWithTwoDecimalPlace(totals.Spend),
		TotalPurchases: totals.Purchases,
		AverageCPA:     utils.RoundWithTwoDecimalPlace(totals.CPA),
		TopCreatives:   make([]SummaryCreative, 0, len(top)),
	}

	for _, c := range top {
		summary.TopCreatives = append(summary.TopCreatives, SummaryCreative{
			AdName:    c.AdName,
			Spend:     utils.RoundWithTwoDecimalPlace(c.Spend),
			Purchases: c.Purchases,
			CTR:       utils.RoundWithTwoDecimalPlace(c.CTR),
		})
	}

	return summary, nil
}
