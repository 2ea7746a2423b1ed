package kpi

// StageCounts lines up the full funnel for one profile and range: the three
// hand-entered counters plus the two lead-derived outcome stages, in the
// fixed chain contato -> qualificacao -> reuniao marcada -> realizada ->
// venda.
type StageCounts struct {
	Contato          int64
	Qualificacao     int64
	ReuniaoMarcada   int64
	ReuniaoRealizada int64
	Venda            int64
}

// ConversionRates are the adjacent stage-to-stage percentages, each "x.y%"
// or the literal "0%" when the upstream stage is empty.
type ConversionRates struct {
	QualificacaoFromContato string `json:"qualificacao_de_contato"`
	MarcadaFromQualificacao string `json:"marcada_de_qualificacao"`
	RealizadaFromMarcada    string `json:"realizada_de_marcada"`
	VendaFromRealizada      string `json:"venda_de_realizada"`
}

// Conversions computes the rate for each adjacent stage pair.
func Conversions(s StageCounts) ConversionRates {
	return ConversionRates{
		QualificacaoFromContato: RatePercent(float64(s.Qualificacao), float64(s.Contato)),
		MarcadaFromQualificacao: RatePercent(float64(s.ReuniaoMarcada), float64(s.Qualificacao)),
		RealizadaFromMarcada:    RatePercent(float64(s.ReuniaoRealizada), float64(s.ReuniaoMarcada)),
		VendaFromRealizada:      RatePercent(float64(s.Venda), float64(s.ReuniaoRealizada)),
	}
}
