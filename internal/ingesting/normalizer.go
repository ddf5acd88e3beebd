package ingesting

import (
	"sort"
	"strconv"
	"strings"

	"github.com/metacore/ads-performance-api/internal/domain"
)

// Cabeçalhos do export de anúncios da Meta, como chegam no arquivo.
const (
	colDate                = "Date"
	colAccountName         = "Account Name"
	colCampaignName        = "Campaign Name"
	colAdSetName           = "Adset Name"
	colAdName              = "Ad Name"
	colSpend               = "Spend (Cost, Amount Spent)"
	colImpressions         = "Impressions"
	colReach               = "Reach (Estimated)"
	colLinkClicks          = "Action Link Clicks"
	colLPV                 = "Action Landing Page View"
	colLeads               = "Action Leads"
	colCostPerLead         = "Cost Per Action Leads"
	colPurchases           = "Action Omni Purchase"
	colCostPerPurchase     = "Cost Per Action Omni Purchase"
	colConversations       = "Action Messaging Conversations Started (Onsite Conversion)"
	colCostPerConversation = "Cost Per Action Messaging Conversations Started (Onsite Conversion)"
	colCTRMeta             = "CTR (Clickthrough Rate)"
	colEngagementRanking   = "Engagement Rate Ranking"
	colThumbnailURL        = "Thumbnail URL"
	colPermalink           = "Instagram Permalink URL"
	colComments            = "Action Post Comments"
	colEngagement          = "Action Post Engagement"
	colReactions           = "Action Post Reactions"
	colShares              = "Action Post Shares"
	colSaves               = "Action Post Save (Onsite Conversion)"
	colThruplays           = "Video Thruplay Watched Actions"
	colPlays               = "Video Play Actions"
	colVideo95             = "Video 95 Percent Watched Actions"
)

var expectedColumns = []string{
	colDate, colAccountName, colCampaignName, colAdSetName, colAdName,
	colSpend, colImpressions, colReach, colLinkClicks, colLPV,
	colLeads, colCostPerLead, colPurchases, colCostPerPurchase,
	colConversations, colCostPerConversation, colCTRMeta,
	colEngagementRanking, colThumbnailURL, colPermalink,
	colComments, colEngagement, colReactions, colShares, colSaves,
	colThruplays, colPlays, colVideo95,
}

// Normalize transforma linhas brutas em registros canônicos. Transformação
// pura: nenhum efeito colateral, nenhuma I/O.
//
// Uma linha é inválida somente quando o campo de data está vazio; ela é
// descartada em silêncio e contada no relatório. Qualquer outro campo ausente
// ou não numérico vira 0 (numérico) ou "" (texto) — nunca rejeita a linha.
func Normalize(rows []RawRow) ([]domain.AdRecord, *domain.IngestionReport) {
	records := make([]domain.AdRecord, 0, len(rows))
	report := &domain.IngestionReport{TotalRows: len(rows)}

	var minDate, maxDate string

	for _, row := range rows {
		date := strings.TrimSpace(row[colDate])
		if date == "" {
			continue
		}

		// Comparação lexicográfica: correta enquanto a origem mantiver
		// datas zero-padded de largura fixa.
		if minDate == "" || date < minDate {
			minDate = date
		}
		if maxDate == "" || date > maxDate {
			maxDate = date
		}

		campaignName := stringField(row, colCampaignName)
		impressions := numberField(row, colImpressions)
		linkClicks := numberField(row, colLinkClicks)

		records = append(records, domain.AdRecord{
			Date:         date,
			Product:      DetectProduct(campaignName),
			AccountName:  stringField(row, colAccountName),
			CampaignName: campaignName,
			AdSetName:    stringField(row, colAdSetName),
			AdName:       stringField(row, colAdName),

			Spend:         numberField(row, colSpend),
			Impressions:   impressions,
			Reach:         numberField(row, colReach),
			LinkClicks:    linkClicks,
			LPV:           numberField(row, colLPV),
			Leads:         numberField(row, colLeads),
			Purchases:     numberField(row, colPurchases),
			Conversations: numberField(row, colConversations),
			Comments:      numberField(row, colComments),
			Engagement:    numberField(row, colEngagement),
			Reactions:     numberField(row, colReactions),
			Shares:        numberField(row, colShares),
			Saves:         numberField(row, colSaves),
			Thruplays:     numberField(row, colThruplays),
			Plays:         numberField(row, colPlays),
			Video95:       numberField(row, colVideo95),

			CostPerLead:         numberField(row, colCostPerLead),
			CostPerPurchase:     numberField(row, colCostPerPurchase),
			CostPerConversation: numberField(row, colCostPerConversation),
			CTRMeta:             numberField(row, colCTRMeta),

			CTRNormalized: ratio(linkClicks, impressions) * 100,

			EngagementRanking: stringFieldDefault(row, colEngagementRanking, domain.EngagementRankingUnknown),
			ThumbnailURL:      SanitizeURL(row[colThumbnailURL]),
			Permalink:         SanitizeURL(row[colPermalink]),
		})
	}

	report.ValidRows = len(records)
	report.DateRange = [2]string{minDate, maxDate}
	report.MissingColumns, report.ExtraColumns = diffColumns(rows)

	return records, report
}

// DetectProduct classifica o produto varrendo o nome da campanha, sem
// diferenciar maiúsculas, pela lista ordenada de marcadores conhecidos.
// Política first-match-wins: um nome contendo dois marcadores resolve sempre
// para o que vem antes na lista.
func DetectProduct(campaignName string) string {
	name := strings.ToUpper(campaignName)
	for _, marker := range domain.ProductMarkers {
		if strings.Contains(name, marker) {
			return marker
		}
	}
	return domain.ProductBoostedPosts
}

// SanitizeURL apara espaços; entrada ausente normaliza para string vazia.
func SanitizeURL(raw string) string {
	return strings.TrimSpace(raw)
}

func stringField(row RawRow, key string) string {
	return strings.TrimSpace(row[key])
}

func stringFieldDefault(row RawRow, key, fallback string) string {
	if v := strings.TrimSpace(row[key]); v != "" {
		return v
	}
	return fallback
}

// numberField coage a célula para número. Valores ausentes, vazios ou não
// numéricos viram 0. Aceita vírgula decimal e separadores de milhar, comuns
// em exports re-salvos por planilha.
func numberField(row RawRow, key string) float64 {
	raw := strings.TrimSpace(row[key])
	if raw == "" {
		return 0
	}

	raw = strings.ReplaceAll(raw, "R$", "")
	raw = strings.ReplaceAll(raw, "$", "")
	raw = strings.ReplaceAll(raw, " ", "")
	if strings.Contains(raw, ",") && !strings.Contains(raw, ".") {
		raw = strings.ReplaceAll(raw, ",", ".")
	} else {
		raw = strings.ReplaceAll(raw, ",", "")
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v != v { // NaN nunca entra na forma canônica
		return 0
	}
	return v
}

func ratio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

// diffColumns compara o cabeçalho observado com o conjunto canônico de
// colunas do export, para diagnóstico no relatório de ingestão.
func diffColumns(rows []RawRow) (missing, extra []string) {
	missing = []string{}
	extra = []string{}

	if len(rows) == 0 {
		return missing, extra
	}

	seen := make(map[string]bool, len(rows[0]))
	for key := range rows[0] {
		seen[key] = true
	}

	known := make(map[string]bool, len(expectedColumns))
	for _, col := range expectedColumns {
		known[col] = true
		if !seen[col] {
			missing = append(missing, col)
		}
	}

	for key := range seen {
		if !known[key] {
			extra = append(extra, key)
		}
	}

	sort.Strings(missing)
	sort.Strings(extra)
	return missing, extra
}
