package tributario

import "github.com/shopspring/decimal"

// EntradaICMSST parâmetros do cálculo de substituição tributária.
type EntradaICMSST struct {
	BaseCalculo  decimal.Decimal // R$
	MVA          decimal.Decimal // % margem de valor agregado
	AliquotaICMS decimal.Decimal // %
	ICMSProprio  decimal.Decimal // R$ já recolhido na operação própria
}

// CalcularBaseICMSST base de cálculo do ICMS-ST: base × (1 + MVA%).
func CalcularBaseICMSST(baseCalculo, mva decimal.Decimal) decimal.Decimal {
	return baseCalculo.Mul(decimal.NewFromInt(1).Add(mva.Div(cem)))
}

// CalcularICMSST calcula o ICMS-ST.
// Fórmula: (Base × (1 + MVA%) × Alíquota ICMS) − ICMS próprio.
// Resultado negativo significa que o ICMS próprio já cobre o imposto
// devido na substituição; o valor é travado em zero.
func CalcularICMSST(in EntradaICMSST) decimal.Decimal {
	base := CalcularBaseICMSST(in.BaseCalculo, in.MVA)
	st := base.Mul(in.AliquotaICMS).Div(cem).Sub(in.ICMSProprio)
	if st.IsNegative() {
		return decimal.Zero
	}
	return st
}
