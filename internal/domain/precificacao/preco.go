package precificacao

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
)

var (
	cem = decimal.NewFromInt(100)
	um  = decimal.NewFromInt(1)
)

// CalcularPrecoVenda inverte a fórmula de margem para obter o preço de
// venda sugerido: Preço = Custo / (1 − (carga% + margem%)/100).
//
// Carga + margem ≥ 100% torna o divisor nulo ou negativo e a
// precificação impossível; custo ≤ 0 também não tem solução. Nos dois
// casos devolve domain.ErrFormulaPreco. Sempre que carga + margem > 0 o
// preço resultante é estritamente maior que o custo.
func CalcularPrecoVenda(custoTotal, cargaTributaria, margemDesejada decimal.Decimal) (decimal.Decimal, error) {
	soma := cargaTributaria.Add(margemDesejada)
	if soma.GreaterThanOrEqual(cem) {
		return decimal.Zero, fmt.Errorf(
			"%w: margem (%s%%) + carga tributária (%s%%) = %s%%, a soma não pode atingir 100%%",
			domain.ErrFormulaPreco, margemDesejada, cargaTributaria, soma)
	}
	if !custoTotal.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: custo total deve ser maior que zero", domain.ErrFormulaPreco)
	}

	divisor := um.Sub(soma.Div(cem))
	return custoTotal.Div(divisor), nil
}
