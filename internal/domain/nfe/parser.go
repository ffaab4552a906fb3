package nfe

import (
	"fmt"

	"github.com/beevik/etree"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
)

// Parse lê um payload XML de NF-e e devolve o modelo canônico.
//
// Aceita o documento processado (<nfeProc><NFe>...) ou a nota solta
// (<NFe>...). Apenas <NFe> e <infNFe> são estruturalmente obrigatórios;
// a ausência de qualquer um é domain.ErrXMLInvalido. Todo o resto é
// extraído defensivamente: número ausente vira zero, texto opcional
// ausente vira vazio.
func Parse(payload []byte) (*NFe, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrXMLInvalido, err)
	}

	raiz := doc.Root()
	if raiz == nil {
		return nil, fmt.Errorf("%w: documento vazio", domain.ErrXMLInvalido)
	}

	var nota *etree.Element
	switch raiz.Tag {
	case "NFe":
		nota = raiz
	default:
		// nfeProc (ou outro wrapper) com <NFe> como filho
		nota = raiz.SelectElement("NFe")
	}
	if nota == nil {
		return nil, fmt.Errorf("%w: elemento <NFe> não encontrado", domain.ErrXMLInvalido)
	}

	inf := nota.SelectElement("infNFe")
	if inf == nil {
		return nil, fmt.Errorf("%w: elemento <infNFe> não encontrado", domain.ErrXMLInvalido)
	}

	return extrairNFe(inf), nil
}
