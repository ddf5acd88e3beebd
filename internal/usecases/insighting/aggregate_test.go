package insighting

import (
	"testing"
	"time"

	"github.com/metacore/ads-performance-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateByCreative(t *testing.T) {
	records := []domain.AdRecord{
		{
			Date: "2024-01-01", AdName: "A", Product: domain.ProductCBAS,
			CampaignName: "C1", ThumbnailURL: "https://cdn/a.jpg",
			Spend: 100, Impressions: 1000, LinkClicks: 30, Purchases: 1,
			Plays: 200, Video95: 40,
		},
		{
			Date: "2024-01-01", AdName: "B",
			Spend: 10, Impressions: 500, LinkClicks: 5,
		},
		{
			Date: "2024-01-02", AdName: "A", Product: domain.ProductCBAS,
			CampaignName: "C1-renomeada", ThumbnailURL: "https://cdn/a2.jpg",
			Spend: 50, Impressions: 1000, LinkClicks: 70, Purchases: 2,
			Plays: 100, Video95: 20,
		},
	}

	creatives := AggregateByCreative(records)

	require.Len(t, creatives, 2)

	// Ordem de primeira aparição: A antes de B.
	a := creatives[0]
	assert.Equal(t, "A", a.AdName)
	assert.Equal(t, 150.0, a.Spend)
	assert.Equal(t, 2000.0, a.Impressions)
	assert.Equal(t, 100.0, a.LinkClicks)
	assert.Equal(t, 3.0, a.Purchases)

	// Razões recalculadas das somas, nunca média das razões por linha.
	assert.InDelta(t, 5.0, a.CTR, 0.001)  // 100/2000 * 100
	assert.InDelta(t, 50.0, a.CPA, 0.001) // 150/3
	assert.InDelta(t, 1.5, a.CPC, 0.001)  // 150/100
	assert.InDelta(t, 20.0, a.Retention, 0.001) // 60/300 * 100

	// Campos descritivos vêm do primeiro registro da chave.
	assert.Equal(t, "C1", a.CampaignName)
	assert.Equal(t, "https://cdn/a.jpg", a.ThumbnailURL)

	b := creatives[1]
	assert.Equal(t, "B", b.AdName)
	assert.Equal(t, 0.0, b.CPA) // zero compras: razão vira 0, nunca Inf
}

// Agregar uma coleção particionada em qualquer ordem de concatenação deve
// produzir as mesmas somas por criativo.
func TestAggregateByCreative_IndependenteDaOrdem(t *testing.T) {
	parte1 := []domain.AdRecord{
		{Date: "2024-01-01", AdName: "A", Spend: 100, Impressions: 1000},
		{Date: "2024-01-01", AdName: "B", Spend: 10, Impressions: 200},
	}
	parte2 := []domain.AdRecord{
		{Date: "2024-01-02", AdName: "A", Spend: 50, Impressions: 500},
	}

	direta := AggregateByCreative(append(append([]domain.AdRecord{}, parte1...), parte2...))
	inversa := AggregateByCreative(append(append([]domain.AdRecord{}, parte2...), parte1...))

	require.Len(t, direta, 2)
	require.Len(t, inversa, 2)

	somas := func(creatives []domain.AggregatedCreative) map[string]float64 {
		out := make(map[string]float64, len(creatives))
		for _, c := range creatives {
			out[c.AdName] = c.Spend
		}
		return out
	}

	assert.Equal(t, somas(direta), somas(inversa))
	assert.Equal(t, 150.0, somas(direta)["A"])
}

// Somar-então-dividir é associativo: agregar cada partição separadamente e
// recombinar as somas produz as mesmas razões que agregar a coleção inteira
// de uma vez. Vale para qualquer particionamento.
func TestAggregateByCreative_AssociatividadeDeParticoes(t *testing.T) {
	records := []domain.AdRecord{
		{Date: "2024-01-01", AdName: "A", Spend: 100, Impressions: 1000, LinkClicks: 30, Purchases: 1},
		{Date: "2024-01-02", AdName: "A", Spend: 50, Impressions: 500, LinkClicks: 40, Purchases: 2},
		{Date: "2024-01-03", AdName: "A", Spend: 25, Impressions: 2500, LinkClicks: 5, Purchases: 1},
	}

	tests := []struct {
		name   string
		partes [][]domain.AdRecord
	}{
		{
			name: "Partição em duas partes",
			partes: [][]domain.AdRecord{
				records[:2],
				records[2:],
			},
		},
		{
			name: "Partição em três partes",
			partes: [][]domain.AdRecord{
				records[:1],
				records[1:2],
				records[2:],
			},
		},
	}

	inteira := AggregateByCreative(records)
	require.Len(t, inteira, 1)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Agrega cada parte isolada e recombina somando campo a campo.
			var spend, impressions, linkClicks, purchases float64
			for _, parte := range tt.partes {
				creatives := AggregateByCreative(parte)
				require.Len(t, creatives, 1)
				spend += creatives[0].Spend
				impressions += creatives[0].Impressions
				linkClicks += creatives[0].LinkClicks
				purchases += creatives[0].Purchases
			}

			assert.Equal(t, inteira[0].Spend, spend)
			assert.Equal(t, inteira[0].Impressions, impressions)
			assert.Equal(t, inteira[0].LinkClicks, linkClicks)
			assert.Equal(t, inteira[0].Purchases, purchases)

			// A razão recalculada das somas recombinadas é a razão do todo.
			assert.InDelta(t, inteira[0].CTR, safeRatio(linkClicks, impressions)*100, 0.0001)
			assert.InDelta(t, inteira[0].CPA, safeRatio(spend, purchases), 0.0001)
		})
	}
}

// Agregar uma coleção que já representa o total de um criativo devolve o
// mesmo total: a agregação é idempotente sobre entradas únicas.
func TestAggregateByCreative_Idempotencia(t *testing.T) {
	creatives := AggregateByCreative([]domain.AdRecord{
		{
			Date: "2024-01-01", AdName: "A", Product: domain.ProductCBAS,
			Spend: 150, Impressions: 2000, LinkClicks: 100, Purchases: 3,
			Plays: 300, Video95: 60,
		},
	})
	require.Len(t, creatives, 1)

	c := creatives[0]
	reagregado := AggregateByCreative([]domain.AdRecord{
		{
			Date: "2024-01-01", AdName: c.AdName, Product: c.Product,
			Spend: c.Spend, Impressions: c.Impressions,
			LinkClicks: c.LinkClicks, Purchases: c.Purchases,
			Plays: c.Plays, Video95: c.Video95,
		},
	})

	require.Len(t, reagregado, 1)
	assert.Equal(t, c, reagregado[0])
}

func TestAggregateByCreative_ColecaoVazia(t *testing.T) {
	creatives := AggregateByCreative(nil)

	assert.NotNil(t, creatives)
	assert.Empty(t, creatives)
}

func TestAggregateByDay(t *testing.T) {
	records := []domain.AdRecord{
		{Date: "2024-02-01", AdName: "A", Spend: 30, Purchases: 1},
		{Date: "2024-01-31", AdName: "A", Spend: 20, LinkClicks: 5},
		{Date: "2024-02-01", AdName: "B", Spend: 70, Purchases: 2},
		{Date: "31/01/2024", AdName: "C", Spend: 999}, // data inválida fica fora
	}

	buckets := AggregateByDay(records)

	require.Len(t, buckets, 2)

	// Ordenação cronológica pela data, não pelo rótulo: "01 fev" vem
	// depois de "31 jan" apesar de ser lexicograficamente menor.
	assert.Equal(t, "31 jan", buckets[0].Label)
	assert.Equal(t, "01 fev", buckets[1].Label)

	assert.Equal(t, 20.0, buckets[0].Spend)
	assert.Equal(t, 100.0, buckets[1].Spend)
	assert.Equal(t, 3.0, buckets[1].Purchases)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), buckets[1].Day)
}

func TestComputeTotals(t *testing.T) {
	records := []domain.AdRecord{
		{Date: "2024-01-01", Spend: 100, Impressions: 1000, LinkClicks: 40, LPV: 20, Leads: 4, Purchases: 2, Conversations: 5},
		{Date: "2024-01-02", Spend: 50, Impressions: 1000, LinkClicks: 10, LPV: 5, Leads: 1, Purchases: 0, Conversations: 0},
	}

	totals := ComputeTotals(records)

	assert.Equal(t, 150.0, totals.Spend)
	assert.InDelta(t, 75.0, totals.CPA, 0.001)  // 150/2
	assert.InDelta(t, 30.0, totals.CPL, 0.001)  // 150/5
	assert.InDelta(t, 3.0, totals.CPC, 0.001)   // 150/50
	assert.InDelta(t, 2.5, totals.CTR, 0.001)   // 50/2000 * 100
	assert.InDelta(t, 50.0, totals.LPVRate, 0.001)
	assert.InDelta(t, 30.0, totals.CostPerConversation, 0.001)
}

func TestComputeTotals_ColecaoVazia(t *testing.T) {
	totals := ComputeTotals(nil)

	assert.Equal(t, 0.0, totals.Spend)
	assert.Equal(t, 0.0, totals.CPA)
	assert.Equal(t, 0.0, totals.CTR)
}

func TestSortBySpendDesc(t *testing.T) {
	creatives := []domain.AggregatedCreative{
		{AdName: "A", Spend: 10},
		{AdName: "B", Spend: 30},
		{AdName: "C", Spend: 10}, // empate com A: mantém A antes de C
		{AdName: "D", Spend: 20},
	}

	sorted := SortBySpendDesc(creatives)

	names := make([]string, 0, len(sorted))
	for _, c := range sorted {
		names = append(names, c.AdName)
	}
	assert.Equal(t, []string{"B", "D", "A", "C"}, names)

	// A origem permanece intocada.
	assert.Equal(t, "A", creatives[0].AdName)
}
