package ranking

import (
	"testing"

	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopByMetric(t *testing.T) {
	creatives := []domain.AggregatedCreative{
		{AdName: "A", Spend: 10},
		{AdName: "B", Spend: 40},
		{AdName: "C", Spend: 10}, // empate com A
		{AdName: "D", Spend: 25},
	}

	spend := func(c domain.AggregatedCreative) float64 { return c.Spend }

	entries := TopByMetric(creatives, spend, 3)

	require.Len(t, entries, 3)
	assert.Equal(t, Entry{Name: "B", Value: 40}, entries[0])
	assert.Equal(t, Entry{Name: "D", Value: 25}, entries[1])
	// Empate resolvido pela ordem de entrada: A antes de C.
	assert.Equal(t, Entry{Name: "A", Value: 10}, entries[2])
}

func TestTopByMetric_LimiteMaiorQueAColecao(t *testing.T) {
	creatives := []domain.AggregatedCreative{
		{AdName: "A", Spend: 10},
		{AdName: "B", Spend: 20},
	}

	spend := func(c domain.AggregatedCreative) float64 { return c.Spend }

	entries := TopByMetric(creatives, spend, 10)

	assert.Len(t, entries, 2)
}

func TestTopByMetric_LimiteNaoPositivoCaiNoPadrao(t *testing.T) {
	creatives := make([]domain.AggregatedCreative, 0, 8)
	for i := 0; i < 8; i++ {
		creatives = append(creatives, domain.AggregatedCreative{
			AdName: string(rune('A' + i)),
			Spend:  float64(i),
		})
	}

	spend := func(c domain.AggregatedCreative) float64 { return c.Spend }

	assert.Len(t, TopByMetric(creatives, spend, 0), DefaultLimit)
	assert.Len(t, TopByMetric(creatives, spend, -3), DefaultLimit)
}

func TestBestByCost(t *testing.T) {
	creatives := []domain.AggregatedCreative{
		{AdName: "A", CPA: 50, Purchases: 2},
		{AdName: "B", CPA: 0, Purchases: 0}, // zero compras: CPA 0 não é elegível
		{AdName: "C", CPA: 20, Purchases: 5},
		{AdName: "D", CPA: 80, Purchases: 1},
	}

	cpa := func(c domain.AggregatedCreative) float64 { return c.CPA }
	purchases := func(c domain.AggregatedCreative) float64 { return c.Purchases }

	entries := BestByCost(creatives, cpa, purchases, 5)

	require.Len(t, entries, 3)
	assert.Equal(t, "C", entries[0].Name) // menor custo primeiro
	assert.Equal(t, "A", entries[1].Name)
	assert.Equal(t, "D", entries[2].Name)

	for _, e := range entries {
		assert.NotEqual(t, "B", e.Name)
	}
}

func TestBestByCost_NenhumElegivel(t *testing.T) {
	creatives := []domain.AggregatedCreative{
		{AdName: "A", CPA: 0, Purchases: 0},
		{AdName: "B", CPA: 0, Purchases: 0},
	}

	cpa := func(c domain.AggregatedCreative) float64 { return c.CPA }
	purchases := func(c domain.AggregatedCreative) float64 { return c.Purchases }

	entries := BestByCost(creatives, cpa, purchases, 5)

	assert.Empty(t, entries)
}

func TestBuildLeaderboards(t *testing.T) {
	creatives := []domain.AggregatedCreative{
		{AdName: "A", Spend: 100, Leads: 1, Purchases: 2, CPA: 50},
		{AdName: "B", Spend: 50, Leads: 9, Purchases: 0, CPA: 0},
		{AdName: "C", Spend: 80, Leads: 4, Purchases: 8, CPA: 10},
	}

	boards := BuildLeaderboards(creatives, 2)

	require.Len(t, boards.TopSpend, 2)
	assert.Equal(t, "A", boards.TopSpend[0].Name)
	assert.Equal(t, "C", boards.TopSpend[1].Name)

	require.Len(t, boards.TopLeads, 2)
	assert.Equal(t, "B", boards.TopLeads[0].Name)

	require.Len(t, boards.TopPurchases, 2)
	assert.Equal(t, "C", boards.TopPurchases[0].Name)

	// Melhor CPA em ordem crescente, sem o criativo de zero compras.
	require.Len(t, boards.BestCPA, 2)
	assert.Equal(t, "C", boards.BestCPA[0].Name)
	assert.Equal(t, "A", boards.BestCPA[1].Name)
}

func TestBuildLeaderboards_ColecaoVazia(t *testing.T) {
	boards := BuildLeaderboards(nil, 5)

	assert.Empty(t, boards.TopSpend)
	assert.Empty(t, boards.TopLeads)
	assert.Empty(t, boards.TopPurchases)
	assert.Empty(t, boards.BestCPA)
}
