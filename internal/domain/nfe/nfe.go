// Package nfe faz o parse de documentos fiscais eletrônicos (NF-e,
// layout nacional) para um modelo canônico: cabeçalho, emitente,
// destinatário, itens com seus tributos e totais.
package nfe

import "github.com/shopspring/decimal"

// Emitente dados do emissor da nota.
type Emitente struct {
	CNPJ              string `json:"cnpj"`
	RazaoSocial       string `json:"razao_social"`
	NomeFantasia      string `json:"nome_fantasia,omitempty"`
	InscricaoEstadual string `json:"inscricao_estadual,omitempty"`
	UF                string `json:"uf"`
	Municipio         string `json:"municipio"`
	CRT               int    `json:"crt"` // 1=Simples Nacional, 2=SN sublimite, 3=Lucro Real/Presumido
}

// Destinatario dados do destinatário da nota.
type Destinatario struct {
	CNPJ        string `json:"cnpj,omitempty"`
	CPF         string `json:"cpf,omitempty"`
	RazaoSocial string `json:"razao_social"`
	UF          string `json:"uf"`
	Municipio   string `json:"municipio"`
}

// Produto atributos comerciais de um item da nota.
type Produto struct {
	Numero        int             `json:"numero"` // nItem
	Codigo        string          `json:"codigo"`
	EAN           string          `json:"ean,omitempty"`
	Descricao     string          `json:"descricao"`
	NCM           string          `json:"ncm"`
	CFOP          string          `json:"cfop"`
	Unidade       string          `json:"unidade"`
	Quantidade    decimal.Decimal `json:"quantidade"`
	ValorUnitario decimal.Decimal `json:"valor_unitario"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	ValorDesconto decimal.Decimal `json:"valor_desconto"`
	ValorFrete    decimal.Decimal `json:"valor_frete"`
	ValorSeguro   decimal.Decimal `json:"valor_seguro"`
	ValorOutros   decimal.Decimal `json:"valor_outros"`
}

// Impostos conjunto canônico de tributos de um item. O layout da NF-e
// traz o ICMS em sub-grupos mutuamente exclusivos (ICMS00, ICMS10, ...,
// ICMSSN101, ...); aqui tudo já está achatado em um único shape e o
// sub-grupo de origem não é carregado adiante.
//
// CST tem 2 dígitos e CSOSN 3, com zeros à esquerda preservados: são
// códigos comparados como texto, não números.
type Impostos struct {
	ICMSCST      string          `json:"icms_cst,omitempty"`
	ICMSOrigem   string          `json:"icms_origem,omitempty"`
	ICMSBase     decimal.Decimal `json:"icms_base"`
	ICMSAliquota decimal.Decimal `json:"icms_aliquota"`
	ICMSValor    decimal.Decimal `json:"icms_valor"`

	ICMSSTBase     decimal.Decimal `json:"icms_st_base"`
	ICMSSTMVA      decimal.Decimal `json:"icms_st_mva"`
	ICMSSTAliquota decimal.Decimal `json:"icms_st_aliquota"`
	ICMSSTValor    decimal.Decimal `json:"icms_st_valor"`

	CSOSN              string          `json:"csosn,omitempty"`
	ICMSSNCredito      decimal.Decimal `json:"icms_sn_credito"`
	ICMSSNCreditoValor decimal.Decimal `json:"icms_sn_credito_valor"`

	IPICST      string          `json:"ipi_cst,omitempty"`
	IPIBase     decimal.Decimal `json:"ipi_base"`
	IPIAliquota decimal.Decimal `json:"ipi_aliquota"`
	IPIValor    decimal.Decimal `json:"ipi_valor"`

	PISCST      string          `json:"pis_cst,omitempty"`
	PISBase     decimal.Decimal `json:"pis_base"`
	PISAliquota decimal.Decimal `json:"pis_aliquota"`
	PISValor    decimal.Decimal `json:"pis_valor"`

	COFINSCST      string          `json:"cofins_cst,omitempty"`
	COFINSBase     decimal.Decimal `json:"cofins_base"`
	COFINSAliquota decimal.Decimal `json:"cofins_aliquota"`
	COFINSValor    decimal.Decimal `json:"cofins_valor"`
}

// Item um <det> da nota: produto + tributos.
type Item struct {
	Produto  Produto  `json:"produto"`
	Impostos Impostos `json:"impostos"`
}

// Totais totalizadores do documento (<total>/<ICMSTot>).
type Totais struct {
	ValorProdutos decimal.Decimal `json:"valor_produtos"`
	ValorNF       decimal.Decimal `json:"valor_nf"`
	ValorDesconto decimal.Decimal `json:"valor_desconto"`
	ValorFrete    decimal.Decimal `json:"valor_frete"`
	ValorSeguro   decimal.Decimal `json:"valor_seguro"`
	ValorOutros   decimal.Decimal `json:"valor_outros"`
	ICMSBase      decimal.Decimal `json:"icms_base"`
	ICMSValor     decimal.Decimal `json:"icms_valor"`
	ICMSSTBase    decimal.Decimal `json:"icms_st_base"`
	ICMSSTValor   decimal.Decimal `json:"icms_st_valor"`
	IPIValor      decimal.Decimal `json:"ipi_valor"`
	PISValor      decimal.Decimal `json:"pis_valor"`
	COFINSValor   decimal.Decimal `json:"cofins_valor"`
}

// NFe modelo canônico de uma nota fiscal eletrônica.
type NFe struct {
	ChaveAcesso  string       `json:"chave_acesso"`
	Numero       int          `json:"numero"`
	Serie        int          `json:"serie"`
	DataEmissao  string       `json:"data_emissao"`
	Emitente     Emitente     `json:"emitente"`
	Destinatario Destinatario `json:"destinatario"`
	Itens        []Item       `json:"itens"`
	Totais       Totais       `json:"totais"`
}
