package precificacao_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/precificacao"
)

func configPadrao() precificacao.ConfigSimulacao {
	return precificacao.ConfigSimulacao{
		PrecoMinimo:     dec("10"),
		PrecoMaximo:     dec("20"),
		Incremento:      dec("2.50"),
		CustoTotal:      dec("8"),
		CargaTributaria: dec("10"),
	}
}

func TestGerarSimulacao_QuantidadeEExtremos(t *testing.T) {
	cenarios, err := precificacao.GerarSimulacao(configPadrao())
	require.NoError(t, err)

	// floor((20−10)/2,50) + 1 = 5 cenários, inclusivo nas duas pontas
	require.Len(t, cenarios, 5)
	assert.True(t, cenarios[0].PrecoVenda.Equal(dec("10")), "primeiro preço = mínimo")
	assert.True(t, cenarios[4].PrecoVenda.Equal(dec("20")), "último preço = máximo")
}

func TestGerarSimulacao_ValoresDoCenario(t *testing.T) {
	cenarios, err := precificacao.GerarSimulacao(configPadrao())
	require.NoError(t, err)

	// Preço 10: imposto 1,00; receita 9,00; margem 1,00; margem % 10,00
	c := cenarios[0]
	assert.True(t, c.Imposto.Equal(dec("1.00")), "imposto %s", c.Imposto)
	assert.True(t, c.ReceitaLiquida.Equal(dec("9.00")))
	assert.True(t, c.MargemLiquida.Equal(dec("1.00")))
	assert.True(t, c.MargemPercentual.Equal(dec("10.00")))
	assert.True(t, c.Custo.Equal(dec("8")))
}

// Para custo e carga fixos, a margem cresce monotonicamente com o preço.
func TestGerarSimulacao_MargemMonotonica(t *testing.T) {
	cenarios, err := precificacao.GerarSimulacao(configPadrao())
	require.NoError(t, err)
	for i := 1; i < len(cenarios); i++ {
		assert.True(t, cenarios[i].MargemLiquida.GreaterThan(cenarios[i-1].MargemLiquida),
			"margem do cenário %d deve superar a do %d", i, i-1)
	}
}

func TestGerarSimulacao_MinIgualMax(t *testing.T) {
	cfg := configPadrao()
	cfg.PrecoMinimo = dec("15")
	cfg.PrecoMaximo = dec("15")
	cenarios, err := precificacao.GerarSimulacao(cfg)
	require.NoError(t, err)
	require.Len(t, cenarios, 1, "min = max gera exatamente um cenário")
	assert.True(t, cenarios[0].PrecoVenda.Equal(dec("15")))
}

func TestGerarSimulacao_IncrementoInvalido(t *testing.T) {
	cfg := configPadrao()
	cfg.Incremento = dec("0")
	_, err := precificacao.GerarSimulacao(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalida)

	cfg.Incremento = dec("-1")
	_, err = precificacao.GerarSimulacao(cfg)
	assert.ErrorIs(t, err, domain.ErrConfigInvalida)
}

func TestGerarSimulacao_MinMaiorQueMax(t *testing.T) {
	cfg := configPadrao()
	cfg.PrecoMinimo = dec("30")
	_, err := precificacao.GerarSimulacao(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConfigInvalida)
}

func TestEncontrarPontoEquilibrio_MenorMargemAbsoluta(t *testing.T) {
	// Custo 8, carga 10%: margem zera em preço = 8 / 0,90 ≈ 8,89.
	cenarios, err := precificacao.GerarSimulacao(precificacao.ConfigSimulacao{
		PrecoMinimo:     dec("5"),
		PrecoMaximo:     dec("15"),
		Incremento:      dec("1"),
		CustoTotal:      dec("8"),
		CargaTributaria: dec("10"),
	})
	require.NoError(t, err)

	eq := precificacao.EncontrarPontoEquilibrio(cenarios)
	require.NotNil(t, eq)
	// Preço 9: margem = 9 − 0,90 − 8 = 0,10, o passo discreto mais
	// próximo da raiz (a raiz exata fica entre 8 e 9).
	assert.True(t, eq.PrecoVenda.Equal(dec("9")), "obtido %s", eq.PrecoVenda)
}

func TestEncontrarPontoEquilibrio_ListaVazia(t *testing.T) {
	assert.Nil(t, precificacao.EncontrarPontoEquilibrio(nil))
}
