package analise

import (
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/nfe"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

// Mapeamento CST/CSOSN → tratamento do ICMS. Data-driven: incluir um
// código novo é uma mudança de dados, não de código.
//
// Substituição tributária: CST 10 (tributada com ST), 30 (isenta com
// ST), 70 (redução de base com ST) e CSOSN 201/202 (SN com ST).
// Isento: CST 60 / CSOSN 500 (ST cobrado anteriormente, sem carga
// adicional) e CST 40/41 (isenta / não tributada).
var (
	tipoPorCST = map[string]tributario.TipoICMS{
		"10": tributario.ICMSSubstituicao,
		"30": tributario.ICMSSubstituicao,
		"70": tributario.ICMSSubstituicao,
		"60": tributario.ICMSIsento,
		"40": tributario.ICMSIsento,
		"41": tributario.ICMSIsento,
	}
	tipoPorCSOSN = map[string]tributario.TipoICMS{
		"201": tributario.ICMSSubstituicao,
		"202": tributario.ICMSSubstituicao,
		"500": tributario.ICMSIsento,
	}
)

// ClassificarICMS mapeia os códigos de situação tributária de um item
// para o tratamento simplificado. Código desconhecido cai em normal.
func ClassificarICMS(item nfe.Item) tributario.TipoICMS {
	if tipo, ok := tipoPorCST[item.Impostos.ICMSCST]; ok {
		return tipo
	}
	if tipo, ok := tipoPorCSOSN[item.Impostos.CSOSN]; ok {
		return tipo
	}
	return tributario.ICMSNormal
}
