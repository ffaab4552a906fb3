package analise_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gouveiaesilva/projeto-manuela/internal/application/analise"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/nfe"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

func itemComCST(cst string) nfe.Item {
	return nfe.Item{Impostos: nfe.Impostos{ICMSCST: cst}}
}

func itemComCSOSN(csosn string) nfe.Item {
	return nfe.Item{Impostos: nfe.Impostos{CSOSN: csosn}}
}

func TestClassificarICMS_SubstituicaoPorCST(t *testing.T) {
	for _, cst := range []string{"10", "30", "70"} {
		assert.Equal(t, tributario.ICMSSubstituicao, analise.ClassificarICMS(itemComCST(cst)),
			"CST %s indica substituição tributária", cst)
	}
}

func TestClassificarICMS_SubstituicaoPorCSOSN(t *testing.T) {
	for _, csosn := range []string{"201", "202"} {
		assert.Equal(t, tributario.ICMSSubstituicao, analise.ClassificarICMS(itemComCSOSN(csosn)),
			"CSOSN %s indica substituição tributária", csosn)
	}
}

func TestClassificarICMS_Isento(t *testing.T) {
	// ST cobrado anteriormente
	assert.Equal(t, tributario.ICMSIsento, analise.ClassificarICMS(itemComCST("60")))
	assert.Equal(t, tributario.ICMSIsento, analise.ClassificarICMS(itemComCSOSN("500")))
	// Isenta / não tributada
	assert.Equal(t, tributario.ICMSIsento, analise.ClassificarICMS(itemComCST("40")))
	assert.Equal(t, tributario.ICMSIsento, analise.ClassificarICMS(itemComCST("41")))
}

func TestClassificarICMS_NormalPorPadrao(t *testing.T) {
	assert.Equal(t, tributario.ICMSNormal, analise.ClassificarICMS(itemComCST("00")))
	assert.Equal(t, tributario.ICMSNormal, analise.ClassificarICMS(itemComCSOSN("102")))
	assert.Equal(t, tributario.ICMSNormal, analise.ClassificarICMS(itemComCST("99")),
		"código desconhecido cai em normal")
	assert.Equal(t, tributario.ICMSNormal, analise.ClassificarICMS(nfe.Item{}),
		"item sem código cai em normal")
}
