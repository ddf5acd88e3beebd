package insighting

import (
	"fmt"
	"sort"
	"time"

	"github.com/metacore/ads-performance-api/internal/domain"
)

const dateLayout = "2006-01-02"

// Abreviações de mês em pt-BR para o rótulo dos buckets diários.
var ptBRMonths = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// AggregateByCreative agrupa os registros por nome de anúncio e soma campo a
// campo todas as métricas aditivas. As razões são recalculadas uma única vez
// a partir das somas — nunca pela média de razões pré-calculadas. Campos
// descritivos vêm do primeiro registro de cada chave e não são recalculados.
//
// A ordem do resultado é a ordem de primeira aparição de cada chave. Coleção
// vazia entra, coleção vazia sai.
func AggregateByCreative(records []domain.AdRecord) []domain.AggregatedCreative {
	index := make(map[string]int, len(records))
	creatives := make([]domain.AggregatedCreative, 0)

	for _, r := range records {
		i, ok := index[r.AdName]
		if !ok {
			i = len(creatives)
			index[r.AdName] = i
			creatives = append(creatives, domain.AggregatedCreative{
				AdName:       r.AdName,
				Product:      r.Product,
				CampaignName: r.CampaignName,
				AdSetName:    r.AdSetName,
				ThumbnailURL: r.ThumbnailURL,
				Permalink:    r.Permalink,
			})
		}

		c := &creatives[i]
		c.Spend += r.Spend
		c.Impressions += r.Impressions
		c.Reach += r.Reach
		c.LinkClicks += r.LinkClicks
		c.LPV += r.LPV
		c.Leads += r.Leads
		c.Purchases += r.Purchases
		c.Conversations += r.Conversations
		c.Comments += r.Comments
		c.Engagement += r.Engagement
		c.Reactions += r.Reactions
		c.Shares += r.Shares
		c.Saves += r.Saves
		c.Thruplays += r.Thruplays
		c.Plays += r.Plays
		c.Video95 += r.Video95
	}

	for i := range creatives {
		c := &creatives[i]
		c.CTR = safeRatio(c.LinkClicks, c.Impressions) * 100
		c.Retention = safeRatio(c.Video95, c.Plays) * 100
		c.CPA = safeRatio(c.Spend, c.Purchases)
		c.CPC = safeRatio(c.Spend, c.LinkClicks)
	}

	return creatives
}

// AggregateByDay agrupa os registros por dia do calendário, somando os campos
// exibidos na série temporal. A ordenação é pelo timestamp do dia, nunca pelo
// rótulo formatado — rótulos lexicográficos desordenam na virada de mês/ano.
// Registros com data não parseável ficam fora da série.
func AggregateByDay(records []domain.AdRecord) []domain.TimeBucket {
	index := make(map[string]int, len(records))
	buckets := make([]domain.TimeBucket, 0)

	for _, r := range records {
		day, err := time.Parse(dateLayout, r.Date)
		if err != nil {
			continue
		}

		i, ok := index[r.Date]
		if !ok {
			i = len(buckets)
			index[r.Date] = i
			buckets = append(buckets, domain.TimeBucket{
				Day:   day,
				Label: dayLabel(day),
			})
		}

		b := &buckets[i]
		b.Spend += r.Spend
		b.LinkClicks += r.LinkClicks
		b.Purchases += r.Purchases
		b.Leads += r.Leads
		b.Conversations += r.Conversations
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Day.Before(buckets[j].Day)
	})

	return buckets
}

// ComputeTotals soma o conjunto filtrado inteiro e deriva as razões dos
// cartões de KPI a partir das somas. Denominador zero produz 0 — nunca
// NaN nem Inf.
func ComputeTotals(records []domain.AdRecord) domain.Totals {
	var t domain.Totals

	for _, r := range records {
		t.Spend += r.Spend
		t.Impressions += r.Impressions
		t.Reach += r.Reach
		t.LinkClicks += r.LinkClicks
		t.LPV += r.LPV
		t.Leads += r.Leads
		t.Purchases += r.Purchases
		t.Conversations += r.Conversations
	}

	t.CPA = safeRatio(t.Spend, t.Purchases)
	t.CPL = safeRatio(t.Spend, t.Leads)
	t.CPC = safeRatio(t.Spend, t.LinkClicks)
	t.CTR = safeRatio(t.LinkClicks, t.Impressions) * 100
	t.LPVRate = safeRatio(t.LPV, t.LinkClicks) * 100
	t.CostPerConversation = safeRatio(t.Spend, t.Conversations)

	return t
}

// SortBySpendDesc devolve uma cópia ordenada por investimento decrescente.
// Passo explícito e separado do agrupamento: o consumidor decide quando
// ordenar. Empates preservam a ordem de primeira aparição.
func SortBySpendDesc(creatives []domain.AggregatedCreative) []domain.AggregatedCreative {
	sorted := make([]domain.AggregatedCreative, len(creatives))
	copy(sorted, creatives)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Spend > sorted[j].Spend
	})

	return sorted
}

func safeRatio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

func dayLabel(day time.Time) string {
	return fmt.Sprintf("%02d %s", day.Day(), ptBRMonths[day.Month()-1])
}
