package domain

// IngestionReport resume o resultado de uma ingestão. Linhas sem data são
// descartadas em silêncio: entram em TotalRows mas não em ValidRows nem nos
// limites de DateRange.
//
// DateRange usa comparação lexicográfica das datas, suficiente porque o
// formato vem zero-padded da origem. Se a origem mudar o formato, o limite
// sai errado sem aviso.
type IngestionReport struct {
	TotalRows      int       `json:"total_rows"`
	ValidRows      int       `json:"valid_rows"`
	DateRange      [2]string `json:"date_range"`
	MissingColumns []string  `json:"missing_columns"`
	ExtraColumns   []string  `json:"extra_columns"`
}

// DroppedRows é a contagem de linhas descartadas por falta de data.
func (r *IngestionReport) DroppedRows() int {
	return r.TotalRows - r.ValidRows
}
