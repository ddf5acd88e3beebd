package domain

// DatePreset identifica a janela de datas aplicada sobre os registros.
type DatePreset string

const (
	DatePreset7d  DatePreset = "7d"
	DatePreset14d DatePreset = "14d"
	DatePreset30d DatePreset = "30d"
	DatePresetMTD DatePreset = "mtd"
	DatePresetAll DatePreset = "all"
)

// Filters é o estado de filtragem selecionado pelo consumidor. O valor é
// imutável do ponto de vista do motor: cada aplicação recebe sua própria
// cópia como argumento, nenhum estado global é mantido.
//
// Os seletores formam uma hierarquia (produto ⊇ campanha ⊇ conjunto ⊇
// anúncio). Limpar um nível superior deve limpar os inferiores — isso é
// responsabilidade de quem monta o Filters (ver ClearFrom); o pipeline de
// filtragem tolera qualquer combinação, inclusive um seletor inferior
// preenchido com os superiores vazios.
type Filters struct {
	DatePreset DatePreset `json:"date_preset"`
	Product    string     `json:"product"`
	Campaign   string     `json:"campaign"`
	AdSet      string     `json:"ad_set"`
	Ad         string     `json:"ad"`
}

// DefaultFilters devolve o estado inicial de filtragem da aplicação.
func DefaultFilters() Filters {
	return Filters{DatePreset: DatePreset30d}
}

// ClearFrom limpa o seletor do nível informado e todos os níveis abaixo
// dele, preservando a invariante da cascata para o chamador.
func (f Filters) ClearFrom(level string) Filters {
	switch level {
	case "product":
		f.Product = ""
		fallthrough
	case "campaign":
		f.Campaign = ""
		fallthrough
	case "ad_set":
		f.AdSet = ""
		fallthrough
	case "ad":
		f.Ad = ""
	}
	return f
}
