// Package precificacao contém as fórmulas de formação de preço:
// composição de custo, preço de venda sugerido, KPIs e simulação de
// cenários. Todas as operações são funções puras sobre decimal.
package precificacao

import "github.com/shopspring/decimal"

// CustoComposicao decompõe o custo total de um produto. Todos os campos
// são valores em R$ e não negativos.
type CustoComposicao struct {
	Compra      decimal.Decimal `json:"custo_compra"`
	Embalagem   decimal.Decimal `json:"custo_embalagem"`
	MaoDeObra   decimal.Decimal `json:"custo_mao_obra"`
	Operacional decimal.Decimal `json:"custo_operacional"`
	Frete       decimal.Decimal `json:"custo_frete"`
	Outros      decimal.Decimal `json:"custo_outros"`
}

// CustoTotal soma as seis parcelas da composição.
func (c CustoComposicao) CustoTotal() decimal.Decimal {
	return c.Compra.
		Add(c.Embalagem).
		Add(c.MaoDeObra).
		Add(c.Operacional).
		Add(c.Frete).
		Add(c.Outros)
}
