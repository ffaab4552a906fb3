package precificacao

import "github.com/shopspring/decimal"

// EntradaKPI valores base para o cálculo dos indicadores.
// CustosFixosMensais é opcional; quando nil não há ponto de equilíbrio.
type EntradaKPI struct {
	PrecoVenda         decimal.Decimal
	CustoTotal         decimal.Decimal
	ImpostoTotal       decimal.Decimal
	CustosFixosMensais *decimal.Decimal
}

// KPIs indicadores de precificação derivados de um preço de venda.
type KPIs struct {
	PrecoVenda         decimal.Decimal
	ImpostoValor       decimal.Decimal
	MargemLiquida      decimal.Decimal // R$
	MargemPercentual   decimal.Decimal // % sobre o preço
	Markup             decimal.Decimal // % sobre o custo
	MargemContribuicao decimal.Decimal // R$
	// PontoEquilibrio unidades/mês para a margem de contribuição cobrir os
	// custos fixos; nil quando não há custos fixos ou a margem de
	// contribuição é ≤ 0 (divisão indefinida, não um erro).
	PontoEquilibrio *int64
	LucroDesejado   decimal.Decimal
}

// CalcularKPIs deriva margem líquida, markup, margem de contribuição e
// ponto de equilíbrio. Preço zero dá margem percentual zero e custo zero
// dá markup zero, sem erro.
func CalcularKPIs(in EntradaKPI) KPIs {
	receitaLiquida := in.PrecoVenda.Sub(in.ImpostoTotal)
	margemLiquida := receitaLiquida.Sub(in.CustoTotal)

	margemPercentual := decimal.Zero
	if in.PrecoVenda.IsPositive() {
		margemPercentual = margemLiquida.Div(in.PrecoVenda).Mul(cem)
	}

	markup := decimal.Zero
	if in.CustoTotal.IsPositive() {
		markup = in.PrecoVenda.Sub(in.CustoTotal).Div(in.CustoTotal).Mul(cem)
	}

	margemContribuicao := in.PrecoVenda.Sub(in.CustoTotal).Sub(in.ImpostoTotal)

	var pontoEquilibrio *int64
	if in.CustosFixosMensais != nil && in.CustosFixosMensais.IsPositive() && margemContribuicao.IsPositive() {
		unidades := in.CustosFixosMensais.Div(margemContribuicao).Ceil().IntPart()
		pontoEquilibrio = &unidades
	}

	return KPIs{
		PrecoVenda:         in.PrecoVenda,
		ImpostoValor:       in.ImpostoTotal,
		MargemLiquida:      margemLiquida,
		MargemPercentual:   margemPercentual,
		Markup:             markup,
		MargemContribuicao: margemContribuicao,
		PontoEquilibrio:    pontoEquilibrio,
		LucroDesejado:      margemLiquida,
	}
}
