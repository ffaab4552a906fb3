package analise_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gouveiaesilva/projeto-manuela/internal/application/analise"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/nfe"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func configPadrao() analise.Config {
	return analise.Config{
		RBT12:          dec("250000"),
		Anexo:          tributario.ChaveAnexoI,
		MargemDesejada: dec("20"),
	}
}

func itemNormal(descricao, valorTotal string) nfe.Item {
	return nfe.Item{
		Produto: nfe.Produto{Descricao: descricao, ValorTotal: dec(valorTotal)},
		Impostos: nfe.Impostos{
			ICMSCST:      "00",
			ICMSAliquota: dec("18"),
			ICMSValor:    dec(valorTotal).Mul(dec("0.18")),
		},
	}
}

func itemComST(descricao, valorTotal string) nfe.Item {
	return nfe.Item{
		Produto: nfe.Produto{Descricao: descricao, ValorTotal: dec(valorTotal)},
		Impostos: nfe.Impostos{
			ICMSCST:      "10",
			ICMSAliquota: dec("18"),
			ICMSSTMVA:    dec("40"),
			ICMSSTValor:  dec("9.50"),
		},
	}
}

func notaDeTeste() *nfe.NFe {
	return &nfe.NFe{
		Numero: 100,
		Itens: []nfe.Item{
			itemNormal("CAMISETA BASICA ALGODAO", "450.00"),
			itemComST("REFRIGERANTE COLA 2L", "132.00"),
			itemNormal("CANETA ESFEROGRAFICA AZUL", "90.00"),
		},
		Totais: nfe.Totais{ValorNF: dec("704.00")},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Validação da configuração
// ──────────────────────────────────────────────────────────────────────────────

func TestConfigValidate(t *testing.T) {
	require.NoError(t, configPadrao().Validate())

	casos := []struct {
		nome string
		muda func(*analise.Config)
	}{
		{"rbt12 negativo", func(c *analise.Config) { c.RBT12 = dec("-1") }},
		{"rbt12 acima do teto", func(c *analise.Config) { c.RBT12 = dec("4800000.01") }},
		{"anexo desconhecido", func(c *analise.Config) { c.Anexo = "anexo_vi" }},
		{"anexo vazio", func(c *analise.Config) { c.Anexo = "" }},
		{"margem negativa", func(c *analise.Config) { c.MargemDesejada = dec("-5") }},
		{"margem 100", func(c *analise.Config) { c.MargemDesejada = dec("100") }},
	}
	for _, caso := range casos {
		cfg := configPadrao()
		caso.muda(&cfg)
		err := cfg.Validate()
		require.Error(t, err, caso.nome)
		assert.ErrorIs(t, err, domain.ErrConfigInvalida, caso.nome)
	}
}

func TestConfigValidate_BordasInclusivas(t *testing.T) {
	cfg := configPadrao()
	cfg.RBT12 = decimal.Zero
	assert.NoError(t, cfg.Validate())

	cfg.RBT12 = dec("4800000")
	assert.NoError(t, cfg.Validate())

	cfg = configPadrao()
	cfg.MargemDesejada = dec("99")
	assert.NoError(t, cfg.Validate())
}

// ──────────────────────────────────────────────────────────────────────────────
// AnalisarProduto
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalisarProduto_ICMSNormal(t *testing.T) {
	p := analise.AnalisarProduto(itemNormal("CAMISETA", "450.00"), configPadrao())

	// Carga = alíquota efetiva da faixa 2 do Anexo I (~4.924%)
	assert.True(t, p.CargaTributariaPercentual.Sub(dec("4.924")).Abs().LessThan(dec("0.001")),
		"carga %s", p.CargaTributariaPercentual)
	assert.False(t, p.ICMSSTForaDAS)
	assert.True(t, p.PrecoSugerido.GreaterThan(dec("450")), "preço sugerido deve superar o custo")
	assert.Equal(t, analise.LucratividadeAlta, p.Classificacao,
		"margem desejada de 20%% produz margem ≥ 20%%")
	assert.Contains(t, p.Insight, "CAMISETA")
}

func TestAnalisarProduto_SubstituicaoTributaria(t *testing.T) {
	p := analise.AnalisarProduto(itemComST("REFRIGERANTE", "132.00"), configPadrao())

	assert.True(t, p.ICMSSTForaDAS)
	assert.True(t, p.ICMSSTValor.IsPositive(), "ICMS-ST calculado pelo motor, não o da nota")
	assert.True(t, p.CargaTributariaPercentual.GreaterThan(dec("4.924")),
		"com ST fora do DAS a carga sobe em relação à efetiva")
}

// RBT12 acima do teto: o motor do Simples falha e a análise degrada para
// a carga registrada na própria nota, sem propagar o erro.
func TestAnalisarProduto_FallbackCargaDireta(t *testing.T) {
	cfg := configPadrao()
	cfg.RBT12 = dec("5000000") // inválido para o regime, válido para o fallback

	item := itemNormal("CAMISETA", "450.00") // ICMS registrado = 81 → 18%
	p := analise.AnalisarProduto(item, cfg)

	assert.True(t, p.CargaTributariaPercentual.Equal(dec("18")),
		"carga direta = 81/450 × 100, obtido %s", p.CargaTributariaPercentual)
	assert.True(t, p.AliquotaEfetiva.Equal(p.CargaTributariaPercentual))
	assert.False(t, p.ICMSSTForaDAS)
}

func TestAnalisarProduto_FallbackItemSemValor(t *testing.T) {
	cfg := configPadrao()
	cfg.RBT12 = dec("5000000")

	p := analise.AnalisarProduto(nfe.Item{}, cfg)
	assert.True(t, p.CargaTributariaPercentual.IsZero(), "item sem valor não divide")
}

// Margem desejada que torna a fórmula impossível produz preço sugerido
// zero, não erro.
func TestAnalisarProduto_PrecoImpossivelViraZero(t *testing.T) {
	cfg := configPadrao()
	cfg.MargemDesejada = dec("96") // 96 + ~4,9 ≥ 100

	p := analise.AnalisarProduto(itemNormal("CAMISETA", "450.00"), cfg)
	assert.True(t, p.PrecoSugerido.IsZero())
	// KPIs calculados sobre o custo: margem negativa (só imposto) → deficitário
	assert.Equal(t, analise.LucratividadeNegativa, p.Classificacao)
}

// ──────────────────────────────────────────────────────────────────────────────
// AnalisarNFe e resumo
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalisarNFe_TresItens(t *testing.T) {
	resultado, err := analise.AnalisarNFe(notaDeTeste(), configPadrao())
	require.NoError(t, err)

	assert.NotEmpty(t, resultado.ID)
	assert.False(t, resultado.DataAnalise.IsZero())
	require.Len(t, resultado.Produtos, 3)

	r := resultado.Resumo
	assert.Equal(t, 3, r.TotalProdutos)
	assert.Equal(t, 3, r.ProdutosLucrativos+r.ProdutosDeficitarios,
		"todo item é lucrativo ou deficitário")
	assert.True(t, r.ValorTotalNF.Equal(dec("704.00")))
	assert.True(t, r.CargaMediaPercentual.IsPositive())
	require.NotNil(t, r.MaiorMargem)
	require.NotNil(t, r.MenorMargem)
	assert.True(t, r.MaiorMargem.Margem.GreaterThanOrEqual(r.MenorMargem.Margem))
	assert.NotEmpty(t, r.Recomendacoes)
}

func TestAnalisarNFe_RecomendacaoDeST(t *testing.T) {
	resultado, err := analise.AnalisarNFe(notaDeTeste(), configPadrao())
	require.NoError(t, err)

	temAvisoST := false
	for _, rec := range resultado.Resumo.Recomendacoes {
		if strings.Contains(rec, "ICMS-ST") {
			temAvisoST = true
		}
	}
	assert.True(t, temAvisoST, "nota com item de ST deve gerar aviso de precificação")
}

func TestAnalisarNFe_RecomendacaoUrgenteComDeficit(t *testing.T) {
	cfg := configPadrao()
	cfg.MargemDesejada = dec("96") // inviabiliza a precificação de todos os itens

	resultado, err := analise.AnalisarNFe(notaDeTeste(), cfg)
	require.NoError(t, err)

	r := resultado.Resumo
	assert.Equal(t, 3, r.ProdutosDeficitarios)
	require.NotEmpty(t, r.Recomendacoes)
	assert.Contains(t, r.Recomendacoes[0], "urgente",
		"déficit presente gera recomendação urgente em primeiro lugar")
}

func TestAnalisarNFe_TodosSaudaveisMensagemPadrao(t *testing.T) {
	nota := &nfe.NFe{
		Itens:  []nfe.Item{itemNormal("CAMISETA", "450.00")},
		Totais: nfe.Totais{ValorNF: dec("450.00")},
	}
	resultado, err := analise.AnalisarNFe(nota, configPadrao())
	require.NoError(t, err)

	require.Len(t, resultado.Resumo.Recomendacoes, 1)
	assert.Contains(t, resultado.Resumo.Recomendacoes[0], "saudáveis")
}

func TestAnalisarNFe_ConfigInvalida(t *testing.T) {
	cfg := configPadrao()
	cfg.Anexo = "anexo_x"
	_, err := analise.AnalisarNFe(notaDeTeste(), cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalida)
}

func TestAnalisarNFe_NotaSemItens(t *testing.T) {
	nota := &nfe.NFe{Totais: nfe.Totais{ValorNF: decimal.Zero}}
	resultado, err := analise.AnalisarNFe(nota, configPadrao())
	require.NoError(t, err)

	r := resultado.Resumo
	assert.Zero(t, r.TotalProdutos)
	assert.True(t, r.CargaMediaPercentual.IsZero())
	assert.Nil(t, r.MaiorMargem)
	assert.Nil(t, r.MenorMargem)
	assert.NotEmpty(t, r.Recomendacoes, "lista de recomendações nunca vem vazia")
}
