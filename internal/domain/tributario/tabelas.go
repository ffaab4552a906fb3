// Package tributario contém o motor de cálculo do Simples Nacional
// (LC 123/2006): tabelas dos anexos, alíquota efetiva e ICMS-ST.
package tributario

import "github.com/shopspring/decimal"

// TetoSimplesNacional é o limite de receita bruta anual do regime (R$).
var TetoSimplesNacional = decimal.NewFromInt(4_800_000)

// DistribuicaoTributos percentuais de repartição da alíquota por tributo.
// A soma das parcelas é ~100% dentro de cada faixa.
type DistribuicaoTributos struct {
	IRPJ   decimal.Decimal
	CSLL   decimal.Decimal
	COFINS decimal.Decimal
	PIS    decimal.Decimal
	CPP    decimal.Decimal
	ICMS   decimal.Decimal
}

// Faixa é uma banda de RBT12 dentro de um anexo, com alíquota nominal e
// parcela a deduzir próprias. As faixas particionam [0, teto] sem
// sobreposição: o RBT12Min da faixa n é o RBT12Max da n-1 + R$ 0,01.
type Faixa struct {
	Numero          int // 1..6
	RBT12Min        decimal.Decimal
	RBT12Max        decimal.Decimal
	AliquotaNominal decimal.Decimal // %
	ParcelaDeduzir  decimal.Decimal // R$
	Distribuicao    DistribuicaoTributos
}

// Anexo é uma das cinco tabelas fixas do Simples Nacional, com exatamente
// seis faixas ordenadas.
type Anexo struct {
	Chave     string
	Nome      string
	Descricao string
	Faixas    [6]Faixa
}

// Chaves dos anexos aceitas na configuração.
const (
	ChaveAnexoI   = "anexo_i"
	ChaveAnexoII  = "anexo_ii"
	ChaveAnexoIII = "anexo_iii"
	ChaveAnexoIV  = "anexo_iv"
	ChaveAnexoV   = "anexo_v"
)

// d é um atalho para literais decimais das tabelas.
func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func faixa(n int, min, max, nominal, deduzir string, dist DistribuicaoTributos) Faixa {
	return Faixa{
		Numero:          n,
		RBT12Min:        d(min),
		RBT12Max:        d(max),
		AliquotaNominal: d(nominal),
		ParcelaDeduzir:  d(deduzir),
		Distribuicao:    dist,
	}
}

func dist(irpj, csll, cofins, pis, cpp, icms string) DistribuicaoTributos {
	return DistribuicaoTributos{
		IRPJ: d(irpj), CSLL: d(csll), COFINS: d(cofins),
		PIS: d(pis), CPP: d(cpp), ICMS: d(icms),
	}
}

// =============================================================================
// Anexo I - Comércio
// =============================================================================

var AnexoI = Anexo{
	Chave:     ChaveAnexoI,
	Nome:      "Anexo I",
	Descricao: "Comércio",
	Faixas: [6]Faixa{
		faixa(1, "0", "180000", "4.00", "0", dist("5.50", "3.50", "12.74", "2.76", "41.50", "34.00")),
		faixa(2, "180000.01", "360000", "7.30", "5940", dist("5.50", "3.50", "12.74", "2.76", "41.50", "34.00")),
		faixa(3, "360000.01", "720000", "9.50", "13860", dist("5.50", "3.50", "12.74", "2.76", "41.50", "33.50")),
		faixa(4, "720000.01", "1800000", "10.70", "22500", dist("5.50", "3.50", "12.74", "2.76", "41.50", "33.50")),
		faixa(5, "1800000.01", "3600000", "14.30", "87300", dist("5.50", "3.50", "12.74", "2.76", "41.50", "33.50")),
		faixa(6, "3600000.01", "4800000", "19.00", "378000", dist("13.50", "10.00", "28.27", "6.13", "42.10", "0")),
	},
}

// =============================================================================
// Anexo II - Indústria
// =============================================================================

var AnexoII = Anexo{
	Chave:     ChaveAnexoII,
	Nome:      "Anexo II",
	Descricao: "Indústria",
	Faixas: [6]Faixa{
		faixa(1, "0", "180000", "4.50", "0", dist("5.50", "3.50", "12.74", "2.76", "41.50", "34.00")),
		faixa(2, "180000.01", "360000", "7.80", "5940", dist("5.50", "3.50", "12.74", "2.76", "41.50", "34.00")),
		faixa(3, "360000.01", "720000", "10.00", "13860", dist("5.50", "3.50", "12.74", "2.76", "41.50", "33.50")),
		faixa(4, "720000.01", "1800000", "11.20", "22500", dist("5.50", "3.50", "12.74", "2.76", "41.50", "33.50")),
		faixa(5, "1800000.01", "3600000", "14.70", "85500", dist("5.50", "3.50", "12.74", "2.76", "41.50", "33.50")),
		faixa(6, "3600000.01", "4800000", "30.00", "720000", dist("13.50", "10.00", "28.27", "6.13", "42.10", "0")),
	},
}

// =============================================================================
// Anexo III - Serviços (locação de bens móveis, agências de viagem,
// escritórios de contabilidade, etc.)
// =============================================================================

var AnexoIII = Anexo{
	Chave:     ChaveAnexoIII,
	Nome:      "Anexo III",
	Descricao: "Serviços (locação de bens móveis, agências de viagem, contabilidade, etc.)",
	Faixas: [6]Faixa{
		faixa(1, "0", "180000", "6.00", "0", dist("4.00", "3.50", "12.82", "2.78", "43.40", "33.50")),
		faixa(2, "180000.01", "360000", "11.20", "9360", dist("4.00", "3.50", "14.05", "3.05", "43.40", "32.00")),
		faixa(3, "360000.01", "720000", "13.50", "17640", dist("4.00", "3.50", "13.64", "2.96", "43.40", "32.50")),
		faixa(4, "720000.01", "1800000", "16.00", "35640", dist("4.00", "3.50", "13.64", "2.96", "43.40", "32.50")),
		faixa(5, "1800000.01", "3600000", "21.00", "125640", dist("4.00", "3.50", "12.82", "2.78", "43.40", "33.50")),
		faixa(6, "3600000.01", "4800000", "33.00", "648000", dist("35.00", "15.00", "16.03", "3.47", "30.50", "0")),
	},
}

// =============================================================================
// Anexo IV - Serviços (construção civil, vigilância, limpeza, obras, etc.)
// =============================================================================

var AnexoIV = Anexo{
	Chave:     ChaveAnexoIV,
	Nome:      "Anexo IV",
	Descricao: "Serviços (construção civil, vigilância, limpeza, obras, etc.)",
	Faixas: [6]Faixa{
		faixa(1, "0", "180000", "4.50", "0", dist("18.80", "15.20", "17.67", "3.83", "44.50", "0")),
		faixa(2, "180000.01", "360000", "9.00", "8100", dist("19.80", "15.20", "20.55", "4.45", "40.00", "0")),
		faixa(3, "360000.01", "720000", "10.20", "12420", dist("20.80", "15.20", "19.73", "4.27", "40.00", "0")),
		faixa(4, "720000.01", "1800000", "14.00", "39780", dist("17.80", "19.20", "18.90", "4.10", "40.00", "0")),
		faixa(5, "1800000.01", "3600000", "22.00", "183780", dist("18.80", "19.20", "18.08", "3.92", "40.00", "0")),
		faixa(6, "3600000.01", "4800000", "33.00", "828000", dist("53.50", "21.50", "20.55", "4.45", "0", "0")),
	},
}

// =============================================================================
// Anexo V - Serviços (auditoria, tecnologia, publicidade, engenharia, etc.)
// =============================================================================

var AnexoV = Anexo{
	Chave:     ChaveAnexoV,
	Nome:      "Anexo V",
	Descricao: "Serviços (auditoria, tecnologia, publicidade, engenharia, etc.)",
	Faixas: [6]Faixa{
		faixa(1, "0", "180000", "15.50", "0", dist("14.00", "12.00", "28.85", "6.25", "38.90", "0")),
		faixa(2, "180000.01", "360000", "18.00", "4500", dist("14.00", "12.00", "27.85", "6.05", "40.10", "0")),
		faixa(3, "360000.01", "720000", "19.50", "9900", dist("14.00", "12.00", "23.85", "5.15", "45.00", "0")),
		faixa(4, "720000.01", "1800000", "20.50", "17100", dist("14.00", "12.00", "23.85", "5.15", "45.00", "0")),
		faixa(5, "1800000.01", "3600000", "23.00", "62100", dist("14.00", "12.00", "23.85", "5.15", "45.00", "0")),
		faixa(6, "3600000.01", "4800000", "30.50", "540000", dist("16.00", "12.00", "35.00", "7.00", "30.00", "0")),
	},
}

// Anexos indexa as cinco tabelas pela chave usada na configuração.
// Catálogo imutável carregado no init do processo; nunca é alterado
// depois, então é seguro compartilhar entre chamadores concorrentes.
var Anexos = map[string]*Anexo{
	ChaveAnexoI:   &AnexoI,
	ChaveAnexoII:  &AnexoII,
	ChaveAnexoIII: &AnexoIII,
	ChaveAnexoIV:  &AnexoIV,
	ChaveAnexoV:   &AnexoV,
}
