// Package analise orquestra a análise de rentabilidade de uma NF-e item
// a item: classifica o ICMS de cada item, calcula a carga tributária via
// Simples Nacional, o preço sugerido e os KPIs, e consolida o resumo do
// documento com recomendações.
package analise

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

var (
	cem          = decimal.NewFromInt(100)
	margemMaxima = decimal.NewFromInt(99)
)

// Config parâmetros da empresa que parametrizam a análise.
type Config struct {
	RBT12          decimal.Decimal `json:"rbt12"`           // receita bruta dos últimos 12 meses
	Anexo          string          `json:"anexo"`           // anexo_i..anexo_v
	MargemDesejada decimal.Decimal `json:"margem_desejada"` // % (0..99)
}

// Validate rejeita valores fora dos limites antes de qualquer cálculo.
func (c Config) Validate() error {
	if c.RBT12.IsNegative() {
		return fmt.Errorf("%w: receita bruta deve ser maior ou igual a zero", domain.ErrConfigInvalida)
	}
	if c.RBT12.GreaterThan(tributario.TetoSimplesNacional) {
		return fmt.Errorf("%w: limite do Simples Nacional é R$ %s",
			domain.ErrConfigInvalida, tributario.TetoSimplesNacional.StringFixed(2))
	}
	if _, ok := tributario.Anexos[c.Anexo]; !ok {
		return fmt.Errorf("%w: anexo %q desconhecido", domain.ErrConfigInvalida, c.Anexo)
	}
	if c.MargemDesejada.IsNegative() {
		return fmt.Errorf("%w: margem deve ser positiva", domain.ErrConfigInvalida)
	}
	if c.MargemDesejada.GreaterThan(margemMaxima) {
		return fmt.Errorf("%w: margem não pode ser 100%% ou mais", domain.ErrConfigInvalida)
	}
	return nil
}
