package precificacao_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/precificacao"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func aproxima(t *testing.T, esperado string, obtido decimal.Decimal) {
	t.Helper()
	diff := obtido.Sub(dec(esperado)).Abs()
	assert.True(t, diff.LessThan(dec("0.01")), "esperado ~%s, obtido %s", esperado, obtido)
}

func TestCalcularPrecoVenda_VetorPadrao(t *testing.T) {
	// Custo R$ 25, carga 10%, margem 20%: 25 / 0,70 = 35,7142...
	preco, err := precificacao.CalcularPrecoVenda(dec("25"), dec("10"), dec("20"))
	require.NoError(t, err)
	aproxima(t, "35.71", preco)
}

func TestCalcularPrecoVenda_OutrosVetores(t *testing.T) {
	casos := []struct {
		custo, carga, margem, esperado string
	}{
		{"100", "4", "30", "151.52"},  // 100 / 0,66
		{"100", "10", "0", "111.11"},  // margem zero
		{"100", "0", "30", "142.86"},  // carga zero
	}
	for _, c := range casos {
		preco, err := precificacao.CalcularPrecoVenda(dec(c.custo), dec(c.carga), dec(c.margem))
		require.NoError(t, err, "custo=%s carga=%s margem=%s", c.custo, c.carga, c.margem)
		aproxima(t, c.esperado, preco)
	}
}

func TestCalcularPrecoVenda_SomaCemPorCento(t *testing.T) {
	_, err := precificacao.CalcularPrecoVenda(dec("100"), dec("50"), dec("50"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFormulaPreco)
}

func TestCalcularPrecoVenda_SomaAcimaDeCem(t *testing.T) {
	_, err := precificacao.CalcularPrecoVenda(dec("100"), dec("60"), dec("50"))
	assert.ErrorIs(t, err, domain.ErrFormulaPreco)
}

func TestCalcularPrecoVenda_CustoZeroOuNegativo(t *testing.T) {
	_, err := precificacao.CalcularPrecoVenda(decimal.Zero, dec("10"), dec("20"))
	assert.ErrorIs(t, err, domain.ErrFormulaPreco)

	_, err = precificacao.CalcularPrecoVenda(dec("-100"), dec("10"), dec("20"))
	assert.ErrorIs(t, err, domain.ErrFormulaPreco)
}

// O preço é sempre estritamente maior que o custo quando carga+margem > 0.
func TestCalcularPrecoVenda_SempreMaiorQueCusto(t *testing.T) {
	custo := dec("50")
	preco, err := precificacao.CalcularPrecoVenda(custo, dec("5"), dec("15"))
	require.NoError(t, err)
	assert.True(t, preco.GreaterThan(custo), "preço %s deve superar o custo %s", preco, custo)
}

func TestCustoComposicao_CustoTotal(t *testing.T) {
	c := precificacao.CustoComposicao{
		Compra:      dec("100.50"),
		Embalagem:   dec("5.25"),
		MaoDeObra:   dec("12"),
		Operacional: dec("8.10"),
		Frete:       dec("15"),
		Outros:      dec("2.15"),
	}
	assert.True(t, c.CustoTotal().Equal(dec("143.00")), "obtido %s", c.CustoTotal())
}

func TestCustoComposicao_Vazia(t *testing.T) {
	var c precificacao.CustoComposicao
	assert.True(t, c.CustoTotal().IsZero())
}
