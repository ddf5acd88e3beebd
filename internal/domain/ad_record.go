package domain

// Produtos conhecidos, extraídos do nome da campanha. A ordem da lista
// importa: a classificação é first-match-wins (ver ingesting.DetectProduct).
const (
	ProductCBAS    = "CBAS"
	ProductIBFC    = "IBFC"
	ProductCatarse = "CATARSE"
	ProductSSPC    = "SSPC"

	// ProductBoostedPosts é o rótulo reservado para campanhas não
	// identificadas (posts turbinados). O texto também é exibido ao usuário.
	ProductBoostedPosts = "POSTS TURBINADOS"
)

// ProductMarkers é a lista ordenada de marcadores usados na classificação.
var ProductMarkers = []string{ProductCBAS, ProductIBFC, ProductCatarse, ProductSSPC}

// EngagementRankingUnknown é o valor padrão quando o export não informa o ranking.
const EngagementRankingUnknown = "UNKNOWN"

// AdRecord é uma linha normalizada do export de performance de anúncios.
// Imutável depois de produzido pelo normalizador: todo valor derivado é
// recalculado a partir da coleção completa, nunca atualizado no lugar.
type AdRecord struct {
	Date         string `json:"date"`
	Product      string `json:"product"`
	AccountName  string `json:"account_name"`
	CampaignName string `json:"campaign_name"`
	AdSetName    string `json:"ad_set_name"`
	AdName       string `json:"ad_name"`

	// Métricas aditivas: seguras para somar entre registros.
	Spend         float64 `json:"spend"`
	Impressions   float64 `json:"impressions"`
	Reach         float64 `json:"reach"`
	LinkClicks    float64 `json:"link_clicks"`
	LPV           float64 `json:"lpv"`
	Leads         float64 `json:"leads"`
	Purchases     float64 `json:"purchases"`
	Conversations float64 `json:"conversations"`
	Comments      float64 `json:"comments"`
	Engagement    float64 `json:"engagement"`
	Reactions     float64 `json:"reactions"`
	Shares        float64 `json:"shares"`
	Saves         float64 `json:"saves"`
	Thruplays     float64 `json:"thruplays"`
	Plays         float64 `json:"plays"`
	Video95       float64 `json:"video95"`

	// Razões fornecidas pela origem: mantidas só para referência,
	// nunca re-derivadas por soma.
	CostPerLead         float64 `json:"cost_per_lead"`
	CostPerPurchase     float64 `json:"cost_per_purchase"`
	CostPerConversation float64 `json:"cost_per_conversation"`
	CTRMeta             float64 `json:"ctr_meta"`

	// CTRNormalized é calculado localmente: linkClicks/impressions*100.
	CTRNormalized float64 `json:"ctr_normalized"`

	EngagementRanking string `json:"engagement_ranking"`
	ThumbnailURL      string `json:"thumbnail_url"`
	Permalink         string `json:"permalink"`
}
