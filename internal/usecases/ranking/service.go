// Package ranking produz seleções top-N ordenadas e limitadas sobre uma
// coleção agregada de criativos.
package ranking

import (
	"sort"

	"github.com/metacore/ads-performance-api/internal/domain"
)

// DefaultLimit é o tamanho padrão dos leaderboards.
const DefaultLimit = 5

// Metric extrai o valor numérico de ranqueamento de um criativo agregado.
type Metric func(domain.AggregatedCreative) float64

// Entry é um item de leaderboard: nome do criativo e o valor da métrica.
type Entry struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Leaderboards são os quatro quadros de referência da visão geral.
type Leaderboards struct {
	TopSpend     []Entry `json:"top_spend"`
	TopLeads     []Entry `json:"top_leads"`
	TopPurchases []Entry `json:"top_purchases"`
	BestCPA      []Entry `json:"best_cpa"`
}

// TopByMetric devolve os n maiores criativos pela métrica, em ordem
// decrescente. Empates são estáveis: preservam a ordem relativa da agregação.
// n não positivo cai no limite padrão.
func TopByMetric(creatives []domain.AggregatedCreative, metric Metric, n int) []Entry {
	ranked := rank(creatives, func(a, b domain.AggregatedCreative) bool {
		return metric(a) > metric(b)
	})
	return takeEntries(ranked, metric, n)
}

// BestByCost devolve os n menores criativos pelo custo informado, em ordem
// crescente. Criativos cujo denominador de elegibilidade é zero nunca entram:
// uma razão com denominador zero não é candidata válida de ranqueamento,
// independente do valor numérico que carregue.
func BestByCost(creatives []domain.AggregatedCreative, cost, eligible Metric, n int) []Entry {
	candidates := make([]domain.AggregatedCreative, 0, len(creatives))
	for _, c := range creatives {
		if eligible(c) > 0 {
			candidates = append(candidates, c)
		}
	}

	ranked := rank(candidates, func(a, b domain.AggregatedCreative) bool {
		return cost(a) < cost(b)
	})
	return takeEntries(ranked, cost, n)
}

// BuildLeaderboards monta os quadros da visão geral: top investimento, top
// leads, top compras e melhor CPA (somente criativos com ao menos uma compra).
func BuildLeaderboards(creatives []domain.AggregatedCreative, n int) Leaderboards {
	spend := func(c domain.AggregatedCreative) float64 { return c.Spend }
	leads := func(c domain.AggregatedCreative) float64 { return c.Leads }
	purchases := func(c domain.AggregatedCreative) float64 { return c.Purchases }
	cpa := func(c domain.AggregatedCreative) float64 { return c.CPA }

	return Leaderboards{
		TopSpend:     TopByMetric(creatives, spend, n),
		TopLeads:     TopByMetric(creatives, leads, n),
		TopPurchases: TopByMetric(creatives, purchases, n),
		BestCPA:      BestByCost(creatives, cpa, purchases, n),
	}
}

func rank(creatives []domain.AggregatedCreative, less func(a, b domain.AggregatedCreative) bool) []domain.AggregatedCreative {
	ranked := make([]domain.AggregatedCreative, len(creatives))
	copy(ranked, creatives)

	sort.SliceStable(ranked, func(i, j int) bool {
		return less(ranked[i], ranked[j])
	})

	return ranked
}

func takeEntries(ranked []domain.AggregatedCreative, metric Metric, n int) []Entry {
	if n <= 0 {
		n = DefaultLimit
	}
	if n > len(ranked) {
		n = len(ranked)
	}

	entries := make([]Entry, 0, n)
	for _, c := range ranked[:n] {
		entries = append(entries, Entry{Name: c.AdName, Value: metric(c)})
	}
	return entries
}
