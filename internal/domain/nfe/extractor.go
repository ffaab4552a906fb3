package nfe

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
)

// ── Helpers defensivos de leitura ─────────────────────────────────────────────
// Campo ausente ou malformado nunca derruba a extração: número vira zero,
// texto vira vazio. Só a estrutura de topo é obrigatória (ver Parse).

func filho(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	return el.SelectElement(tag)
}

func texto(el *etree.Element, tag string) string {
	f := filho(el, tag)
	if f == nil {
		return ""
	}
	return strings.TrimSpace(f.Text())
}

func valor(el *etree.Element, tag string) decimal.Decimal {
	s := texto(el, tag)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func inteiro(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// codigo normaliza CST/CSOSN para a largura fixa do layout, preservando
// zeros à esquerda ("0" lido como número viraria "0" e quebraria a
// comparação com "00").
func codigo(el *etree.Element, tag string, digitos int) string {
	s := texto(el, tag)
	if s == "" {
		return ""
	}
	for len(s) < digitos {
		s = "0" + s
	}
	return s
}

// ── Extração ──────────────────────────────────────────────────────────────────

func extrairNFe(inf *etree.Element) *NFe {
	ide := filho(inf, "ide")

	dataEmissao := texto(ide, "dhEmi")
	if dataEmissao == "" {
		dataEmissao = texto(ide, "dEmi") // layout antigo (2.0)
	}

	nota := &NFe{
		ChaveAcesso:  strings.TrimPrefix(inf.SelectAttrValue("Id", ""), "NFe"),
		Numero:       inteiro(texto(ide, "nNF")),
		Serie:        inteiro(texto(ide, "serie")),
		DataEmissao:  dataEmissao,
		Emitente:     extrairEmitente(filho(inf, "emit")),
		Destinatario: extrairDestinatario(filho(inf, "dest")),
		Totais:       extrairTotais(filho(filho(inf, "total"), "ICMSTot")),
	}

	for _, det := range inf.SelectElements("det") {
		nota.Itens = append(nota.Itens, extrairItem(det))
	}
	return nota
}

func extrairEmitente(emit *etree.Element) Emitente {
	ender := filho(emit, "enderEmit")
	return Emitente{
		CNPJ:              texto(emit, "CNPJ"),
		RazaoSocial:       texto(emit, "xNome"),
		NomeFantasia:      texto(emit, "xFant"),
		InscricaoEstadual: texto(emit, "IE"),
		UF:                texto(ender, "UF"),
		Municipio:         texto(ender, "xMun"),
		CRT:               inteiro(texto(emit, "CRT")),
	}
}

func extrairDestinatario(dest *etree.Element) Destinatario {
	ender := filho(dest, "enderDest")
	return Destinatario{
		CNPJ:        texto(dest, "CNPJ"),
		CPF:         texto(dest, "CPF"),
		RazaoSocial: texto(dest, "xNome"),
		UF:          texto(ender, "UF"),
		Municipio:   texto(ender, "xMun"),
	}
}

func extrairItem(det *etree.Element) Item {
	prod := filho(det, "prod")
	imposto := filho(det, "imposto")

	return Item{
		Produto: Produto{
			Numero:        inteiro(det.SelectAttrValue("nItem", "")),
			Codigo:        texto(prod, "cProd"),
			EAN:           texto(prod, "cEAN"),
			Descricao:     texto(prod, "xProd"),
			NCM:           texto(prod, "NCM"),
			CFOP:          texto(prod, "CFOP"),
			Unidade:       texto(prod, "uCom"),
			Quantidade:    valor(prod, "qCom"),
			ValorUnitario: valor(prod, "vUnCom"),
			ValorTotal:    valor(prod, "vProd"),
			ValorDesconto: valor(prod, "vDesc"),
			ValorFrete:    valor(prod, "vFrete"),
			ValorSeguro:   valor(prod, "vSeg"),
			ValorOutros:   valor(prod, "vOutro"),
		},
		Impostos: extrairImpostos(imposto),
	}
}

func extrairImpostos(imposto *etree.Element) Impostos {
	imp := Impostos{}
	extrairICMS(filho(imposto, "ICMS"), &imp)
	extrairIPI(filho(imposto, "IPI"), &imp)
	extrairPIS(filho(imposto, "PIS"), &imp)
	extrairCOFINS(filho(imposto, "COFINS"), &imp)
	return imp
}

// extrairICMS resolve o sub-grupo de situação tributária. O grupo <ICMS>
// contém exatamente uma sub-tag da família ICMS* (ICMS00, ICMS10, ICMS20,
// ICMS30, ICMS60, ICMS70, ICMSSN101, ICMSSN102, ICMSSN201, ...); o nome
// da sub-tag identifica a variante e os campos internos têm o mesmo
// vocabulário, então basta localizar a primeira sub-tag ICMS* e ler dela.
func extrairICMS(grupo *etree.Element, imp *Impostos) {
	if grupo == nil {
		return
	}
	var icms *etree.Element
	for _, sub := range grupo.ChildElements() {
		if strings.HasPrefix(sub.Tag, "ICMS") {
			icms = sub
			break
		}
	}
	if icms == nil {
		return
	}

	imp.ICMSCST = codigo(icms, "CST", 2)
	imp.ICMSOrigem = texto(icms, "orig")
	imp.ICMSBase = valor(icms, "vBC")
	imp.ICMSAliquota = valor(icms, "pICMS")
	imp.ICMSValor = valor(icms, "vICMS")

	imp.ICMSSTBase = valor(icms, "vBCST")
	imp.ICMSSTMVA = valor(icms, "pMVAST")
	imp.ICMSSTAliquota = valor(icms, "pICMSST")
	imp.ICMSSTValor = valor(icms, "vICMSST")

	imp.CSOSN = codigo(icms, "CSOSN", 3)
	imp.ICMSSNCredito = valor(icms, "pCredSN")
	imp.ICMSSNCreditoValor = valor(icms, "vCredICMSSN")
}

// IPI vem em <IPITrib> (tributado) ou <IPINT> (não tributado).
func extrairIPI(grupo *etree.Element, imp *Impostos) {
	if grupo == nil {
		return
	}
	trib := filho(grupo, "IPITrib")
	imp.IPICST = codigo(trib, "CST", 2)
	if imp.IPICST == "" {
		imp.IPICST = codigo(filho(grupo, "IPINT"), "CST", 2)
	}
	imp.IPIBase = valor(trib, "vBC")
	imp.IPIAliquota = valor(trib, "pIPI")
	imp.IPIValor = valor(trib, "vIPI")
}

// PIS vem em <PISAliq>, <PISOutr> ou <PISNT>.
func extrairPIS(grupo *etree.Element, imp *Impostos) {
	if grupo == nil {
		return
	}
	aliq := filho(grupo, "PISAliq")
	if aliq == nil {
		aliq = filho(grupo, "PISOutr")
	}
	imp.PISCST = codigo(aliq, "CST", 2)
	if imp.PISCST == "" {
		imp.PISCST = codigo(filho(grupo, "PISNT"), "CST", 2)
	}
	imp.PISBase = valor(aliq, "vBC")
	imp.PISAliquota = valor(aliq, "pPIS")
	imp.PISValor = valor(aliq, "vPIS")
}

// COFINS vem em <COFINSAliq>, <COFINSOutr> ou <COFINSNT>.
func extrairCOFINS(grupo *etree.Element, imp *Impostos) {
	if grupo == nil {
		return
	}
	aliq := filho(grupo, "COFINSAliq")
	if aliq == nil {
		aliq = filho(grupo, "COFINSOutr")
	}
	imp.COFINSCST = codigo(aliq, "CST", 2)
	if imp.COFINSCST == "" {
		imp.COFINSCST = codigo(filho(grupo, "COFINSNT"), "CST", 2)
	}
	imp.COFINSBase = valor(aliq, "vBC")
	imp.COFINSAliquota = valor(aliq, "pCOFINS")
	imp.COFINSValor = valor(aliq, "vCOFINS")
}

func extrairTotais(tot *etree.Element) Totais {
	return Totais{
		ValorProdutos: valor(tot, "vProd"),
		ValorNF:       valor(tot, "vNF"),
		ValorDesconto: valor(tot, "vDesc"),
		ValorFrete:    valor(tot, "vFrete"),
		ValorSeguro:   valor(tot, "vSeg"),
		ValorOutros:   valor(tot, "vOutro"),
		ICMSBase:      valor(tot, "vBC"),
		ICMSValor:     valor(tot, "vICMS"),
		ICMSSTBase:    valor(tot, "vBCST"),
		ICMSSTValor:   valor(tot, "vST"),
		IPIValor:      valor(tot, "vIPI"),
		PISValor:      valor(tot, "vPIS"),
		COFINSValor:   valor(tot, "vCOFINS"),
	}
}
