package domain

import "time"

// AggregatedCreative é o rollup de todos os registros que compartilham o
// mesmo nome de anúncio. Os campos aditivos são somas; as razões são
// recalculadas uma única vez a partir das somas (nunca média de razões
// pré-calculadas). Efêmero: recalculado a cada chamada, nunca mutado.
type AggregatedCreative struct {
	AdName       string `json:"ad_name"`
	Product      string `json:"product"`
	CampaignName string `json:"campaign_name"`
	AdSetName    string `json:"ad_set_name"`
	ThumbnailURL string `json:"thumbnail_url"`
	Permalink    string `json:"permalink"`

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

	CTR       float64 `json:"ctr"`
	Retention float64 `json:"retention"`
	CPA       float64 `json:"cpa"`
	CPC       float64 `json:"cpc"`
}

// TimeBucket agrega os registros de um mesmo dia do calendário. Day é a
// chave de ordenação cronológica; Label é apenas apresentação (formato
// pt-BR) e nunca deve ser usado para ordenar.
type TimeBucket struct {
	Day   time.Time `json:"day"`
	Label string    `json:"label"`

	Spend         float64 `json:"spend"`
	LinkClicks    float64 `json:"link_clicks"`
	Purchases     float64 `json:"purchases"`
	Leads         float64 `json:"leads"`
	Conversations float64 `json:"conversations"`
}

// Totals é o resumo aditivo do conjunto filtrado inteiro, com as razões
// derivadas usadas nos cartões de KPI da visão geral.
type Totals struct {
	Spend         float64 `json:"spend"`
	Impressions   float64 `json:"impressions"`
	Reach         float64 `json:"reach"`
	LinkClicks    float64 `json:"link_clicks"`
	LPV           float64 `json:"lpv"`
	Leads         float64 `json:"leads"`
	Purchases     float64 `json:"purchases"`
	Conversations float64 `json:"conversations"`

	CPA                 float64 `json:"cpa"`
	CPL                 float64 `json:"cpl"`
	CPC                 float64 `json:"cpc"`
	CTR                 float64 `json:"ctr"`
	LPVRate             float64 `json:"lpv_rate"`
	CostPerConversation float64 `json:"cost_per_conversation"`
}
