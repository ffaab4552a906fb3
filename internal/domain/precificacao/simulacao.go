package precificacao

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
)

// ConfigSimulacao faixa de preços a simular para um custo e carga fixos.
type ConfigSimulacao struct {
	PrecoMinimo     decimal.Decimal
	PrecoMaximo     decimal.Decimal
	Incremento      decimal.Decimal
	CustoTotal      decimal.Decimal
	CargaTributaria decimal.Decimal // %
}

// Cenario uma linha da simulação, com valores arredondados a 2 casas.
type Cenario struct {
	PrecoVenda       decimal.Decimal `json:"preco_venda"`
	Imposto          decimal.Decimal `json:"imposto"`
	ReceitaLiquida   decimal.Decimal `json:"receita_liquida"`
	Custo            decimal.Decimal `json:"custo"`
	MargemLiquida    decimal.Decimal `json:"margem_liquida"`
	MargemPercentual decimal.Decimal `json:"margem_percentual"`
}

// GerarSimulacao produz um cenário por passo de preço, de PrecoMinimo a
// PrecoMaximo inclusive (min = max gera exatamente um cenário). Cada
// preço é arredondado ao centavo antes de calcular imposto e margem;
// para custo e carga fixos a margem é não decrescente com o preço.
func GerarSimulacao(cfg ConfigSimulacao) ([]Cenario, error) {
	if !cfg.Incremento.IsPositive() {
		return nil, fmt.Errorf("%w: incremento deve ser maior que zero", domain.ErrConfigInvalida)
	}
	if cfg.PrecoMinimo.GreaterThan(cfg.PrecoMaximo) {
		return nil, fmt.Errorf("%w: preço mínimo deve ser menor ou igual ao máximo", domain.ErrConfigInvalida)
	}

	var cenarios []Cenario
	for preco := cfg.PrecoMinimo; preco.LessThanOrEqual(cfg.PrecoMaximo); preco = preco.Add(cfg.Incremento) {
		arredondado := preco.Round(2)
		imposto := arredondado.Mul(cfg.CargaTributaria).Div(cem)
		receitaLiquida := arredondado.Sub(imposto)
		margemLiquida := receitaLiquida.Sub(cfg.CustoTotal)

		margemPercentual := decimal.Zero
		if arredondado.IsPositive() {
			margemPercentual = margemLiquida.Div(arredondado).Mul(cem)
		}

		cenarios = append(cenarios, Cenario{
			PrecoVenda:       arredondado,
			Imposto:          imposto.Round(2),
			ReceitaLiquida:   receitaLiquida.Round(2),
			Custo:            cfg.CustoTotal,
			MargemLiquida:    margemLiquida.Round(2),
			MargemPercentual: margemPercentual.Round(2),
		})
	}
	return cenarios, nil
}

// EncontrarPontoEquilibrio devolve o cenário com a menor margem líquida
// em módulo, a melhor aproximação discreta da margem zero; a raiz exata
// em geral fica entre dois passos de preço. Nil para lista vazia.
func EncontrarPontoEquilibrio(cenarios []Cenario) *Cenario {
	var equilibrio *Cenario
	var menor decimal.Decimal
	for i := range cenarios {
		diferenca := cenarios[i].MargemLiquida.Abs()
		if equilibrio == nil || diferenca.LessThan(menor) {
			equilibrio = &cenarios[i]
			menor = diferenca
		}
	}
	return equilibrio
}
