// Package filtering aplica a janela de datas e os filtros em cascata de
// dimensão (produto → campanha → conjunto → anúncio) sobre uma coleção de
// registros, sem mutar a origem.
package filtering

import (
	"time"

	"github.com/metacore/ads-performance-api/internal/domain"
)

const dateLayout = "2006-01-02"

// Apply devolve o subconjunto de records que satisfaz todos os predicados
// ativos de filters, preservando a ordem relativa original.
//
// O pipeline não impõe a hierarquia dos seletores: qualquer combinação —
// inclusive um seletor inferior preenchido com os superiores vazios — produz
// um resultado correto, possivelmente vazio. Nunca retorna erro.
//
// now é o relógio do chamador; os presets de data são avaliados contra o dia
// do calendário de now, inclusivo no limite.
func Apply(records []domain.AdRecord, filters domain.Filters, now time.Time) []domain.AdRecord {
	if len(records) == 0 {
		return []domain.AdRecord{}
	}

	cutoff, dated := cutoffFor(filters.DatePreset, now)

	filtered := make([]domain.AdRecord, 0, len(records))
	for _, record := range records {
		if dated && !inWindow(record.Date, cutoff) {
			continue
		}
		if filters.Product != "" && record.Product != filters.Product {
			continue
		}
		if filters.Campaign != "" && record.CampaignName != filters.Campaign {
			continue
		}
		if filters.AdSet != "" && record.AdSetName != filters.AdSet {
			continue
		}
		if filters.Ad != "" && record.AdName != filters.Ad {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// cutoffFor traduz o preset para a data mínima inclusiva. O segundo retorno
// indica se existe restrição de data.
func cutoffFor(preset domain.DatePreset, now time.Time) (time.Time, bool) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch preset {
	case domain.DatePreset7d:
		return today.AddDate(0, 0, -7), true
	case domain.DatePreset14d:
		return today.AddDate(0, 0, -14), true
	case domain.DatePreset30d:
		return today.AddDate(0, 0, -30), true
	case domain.DatePresetMTD:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), true
	default:
		// "all" e presets desconhecidos: sem restrição de data.
		return time.Time{}, false
	}
}

// inWindow compara a data do registro com o corte. Datas que não parseiam
// ficam fora de qualquer janela datada (e dentro de "all", que nem chega aqui).
func inWindow(date string, cutoff time.Time) bool {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return false
	}
	return !d.Before(cutoff)
}
