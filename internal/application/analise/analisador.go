package analise

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/nfe"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/precificacao"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

// ptBR formata os números dos insights no padrão brasileiro (vírgula).
var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// Alíquota de ICMS assumida para o ICMS-ST quando a nota não destaca
// pICMS (alíquota modal interestadual/interna mais comum).
var aliquotaICMSPadrao = decimal.NewFromInt(18)

// Classificacao banda de lucratividade de um item, pela margem %.
type Classificacao string

const (
	LucratividadeAlta     Classificacao = "alta"     // margem ≥ 20%
	LucratividadeMedia    Classificacao = "media"    // margem ≥ 10%
	LucratividadeBaixa    Classificacao = "baixa"    // margem ≥ 0%
	LucratividadeNegativa Classificacao = "negativa" // margem < 0%
)

// ProdutoAnalisado resultado da análise de um item da nota.
type ProdutoAnalisado struct {
	Item nfe.Item `json:"item"`

	CargaTributariaPercentual decimal.Decimal `json:"carga_tributaria_percentual"`
	AliquotaEfetiva           decimal.Decimal `json:"aliquota_efetiva"`
	ICMSSTForaDAS             bool            `json:"icms_st_fora_das"`
	ICMSSTValor               decimal.Decimal `json:"icms_st_valor"`

	PrecoSugerido    decimal.Decimal `json:"preco_sugerido"`
	MargemPercentual decimal.Decimal `json:"margem_percentual"`
	MargemLiquida    decimal.Decimal `json:"margem_liquida"`
	Markup           decimal.Decimal `json:"markup"`

	Classificacao Classificacao `json:"classificacao"`
	Insight       string        `json:"insight"`
}

// MargemDestaque item de maior ou menor margem no resumo.
type MargemDestaque struct {
	Descricao string          `json:"descricao"`
	Margem    decimal.Decimal `json:"margem"`
}

// Resumo agregados do documento inteiro.
type Resumo struct {
	TotalProdutos        int             `json:"total_produtos"`
	ValorTotalNF         decimal.Decimal `json:"valor_total_nf"`
	CargaMediaPercentual decimal.Decimal `json:"carga_media_percentual"`
	MargemMedia          decimal.Decimal `json:"margem_media"`
	ProdutosLucrativos   int             `json:"produtos_lucrativos"`
	ProdutosDeficitarios int             `json:"produtos_deficitarios"`
	MaiorMargem          *MargemDestaque `json:"maior_margem,omitempty"`
	MenorMargem          *MargemDestaque `json:"menor_margem,omitempty"`
	Recomendacoes        []string        `json:"recomendacoes"`
}

// Analise resultado completo: nota, configuração usada, itens e resumo.
type Analise struct {
	ID          string             `json:"id"`
	NFe         *nfe.NFe           `json:"nfe"`
	Config      Config             `json:"config"`
	Produtos    []ProdutoAnalisado `json:"produtos"`
	Resumo      Resumo             `json:"resumo"`
	DataAnalise time.Time          `json:"data_analise"`
}

// AnalisarNFe analisa todos os itens de uma nota e consolida o resumo.
func AnalisarNFe(nota *nfe.NFe, cfg Config) (*Analise, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	produtos := make([]ProdutoAnalisado, 0, len(nota.Itens))
	for _, item := range nota.Itens {
		produtos = append(produtos, AnalisarProduto(item, cfg))
	}

	return &Analise{
		ID:          uuid.NewString(),
		NFe:         nota,
		Config:      cfg,
		Produtos:    produtos,
		Resumo:      gerarResumo(nota, produtos),
		DataAnalise: time.Now(),
	}, nil
}

// AnalisarProduto analisa um item individual. Nunca retorna erro: se o
// motor do Simples falha (RBT12 fora do regime, por exemplo), a carga é
// derivada dos tributos registrados no próprio XML; preço impossível
// (carga + margem ≥ 100%) vira preço sugerido zero.
func AnalisarProduto(item nfe.Item, cfg Config) ProdutoAnalisado {
	custoCompra := item.Produto.ValorTotal

	aliquotaICMS := item.Impostos.ICMSAliquota
	if aliquotaICMS.IsZero() {
		aliquotaICMS = aliquotaICMSPadrao
	}

	resultado, err := tributario.CalcularCargaSimples(tributario.EntradaSimples{
		RBT12:        cfg.RBT12,
		Anexo:        cfg.Anexo,
		TipoICMS:     ClassificarICMS(item),
		AliquotaICMS: aliquotaICMS,
		MVA:          item.Impostos.ICMSSTMVA,
		CustoCompra:  custoCompra,
	})

	var carga, aliquotaEfetiva, icmsSTValor decimal.Decimal
	var icmsSTForaDAS bool
	if err != nil {
		// Degrada para "o que a nota diz": soma dos tributos / valor do item.
		carga = cargaDireta(item)
		aliquotaEfetiva = carga
		icmsSTValor = item.Impostos.ICMSSTValor
	} else {
		carga = resultado.CargaTotalPercentual
		aliquotaEfetiva = resultado.AliquotaEfetiva
		icmsSTForaDAS = resultado.ICMSSTForaDAS
		icmsSTValor = resultado.ICMSSTValor
	}

	precoSugerido, err := precificacao.CalcularPrecoVenda(custoCompra, carga, cfg.MargemDesejada)
	if err != nil {
		precoSugerido = decimal.Zero
	}

	precoKPI := precoSugerido
	if !precoKPI.IsPositive() {
		precoKPI = custoCompra
	}
	kpis := precificacao.CalcularKPIs(precificacao.EntradaKPI{
		PrecoVenda:   precoKPI,
		CustoTotal:   custoCompra,
		ImpostoTotal: custoCompra.Mul(carga).Div(cem),
	})

	classificacao := classificarLucratividade(kpis.MargemPercentual)

	return ProdutoAnalisado{
		Item:                      item,
		CargaTributariaPercentual: carga,
		AliquotaEfetiva:           aliquotaEfetiva,
		ICMSSTForaDAS:             icmsSTForaDAS,
		ICMSSTValor:               icmsSTValor,
		PrecoSugerido:             precoSugerido,
		MargemPercentual:          kpis.MargemPercentual,
		MargemLiquida:             kpis.MargemLiquida,
		Markup:                    kpis.Markup,
		Classificacao:             classificacao,
		Insight:                   gerarInsight(item, kpis.MargemPercentual, carga, classificacao),
	}
}

// cargaDireta carga tributária registrada na própria nota, como % do
// valor do item. Valor ≤ 0 devolve zero.
func cargaDireta(item nfe.Item) decimal.Decimal {
	valorTotal := item.Produto.ValorTotal
	if !valorTotal.IsPositive() {
		return decimal.Zero
	}
	imp := item.Impostos
	total := imp.ICMSValor.
		Add(imp.ICMSSTValor).
		Add(imp.IPIValor).
		Add(imp.PISValor).
		Add(imp.COFINSValor)
	return total.Div(valorTotal).Mul(cem)
}

func classificarLucratividade(margemPercentual decimal.Decimal) Classificacao {
	switch {
	case margemPercentual.GreaterThanOrEqual(decimal.NewFromInt(20)):
		return LucratividadeAlta
	case margemPercentual.GreaterThanOrEqual(decimal.NewFromInt(10)):
		return LucratividadeMedia
	case !margemPercentual.IsNegative():
		return LucratividadeBaixa
	default:
		return LucratividadeNegativa
	}
}

func gerarInsight(item nfe.Item, margem, carga decimal.Decimal, c Classificacao) string {
	nome := item.Produto.Descricao
	m := margem.InexactFloat64()
	cg := carga.InexactFloat64()
	switch c {
	case LucratividadeAlta:
		return ptBR.Sprintf("%s: margem saudável de %.1f%%. Carga tributária de %.1f%%.", nome, m, cg)
	case LucratividadeMedia:
		return ptBR.Sprintf("%s: margem aceitável de %.1f%%. Considere otimizar custos para aumentar a rentabilidade.", nome, m)
	case LucratividadeBaixa:
		return ptBR.Sprintf("%s: margem baixa de %.1f%%. Revise o preço de venda ou negocie melhores condições com fornecedores.", nome, m)
	default:
		return ptBR.Sprintf("%s: ATENÇÃO - margem negativa de %.1f%%. Este produto está gerando prejuízo. Ação imediata necessária.", nome, m)
	}
}

func gerarResumo(nota *nfe.NFe, produtos []ProdutoAnalisado) Resumo {
	resumo := Resumo{
		TotalProdutos: len(produtos),
		ValorTotalNF:  nota.Totais.ValorNF,
	}

	var somaCarga, somaMargem decimal.Decimal
	var baixas, comST int
	var maior, menor *ProdutoAnalisado
	for i := range produtos {
		p := &produtos[i]
		somaCarga = somaCarga.Add(p.CargaTributariaPercentual)
		somaMargem = somaMargem.Add(p.MargemPercentual)

		if p.MargemPercentual.IsPositive() {
			resumo.ProdutosLucrativos++
		} else {
			resumo.ProdutosDeficitarios++
		}
		if p.Classificacao == LucratividadeBaixa {
			baixas++
		}
		if p.ICMSSTForaDAS {
			comST++
		}
		if maior == nil || p.MargemPercentual.GreaterThan(maior.MargemPercentual) {
			maior = p
		}
		if menor == nil || p.MargemPercentual.LessThan(menor.MargemPercentual) {
			menor = p
		}
	}

	if n := len(produtos); n > 0 {
		quantidade := decimal.NewFromInt(int64(n))
		resumo.CargaMediaPercentual = somaCarga.Div(quantidade)
		resumo.MargemMedia = somaMargem.Div(quantidade)
		resumo.MaiorMargem = &MargemDestaque{Descricao: maior.Item.Produto.Descricao, Margem: maior.MargemPercentual}
		resumo.MenorMargem = &MargemDestaque{Descricao: menor.Item.Produto.Descricao, Margem: menor.MargemPercentual}
	}

	// Recomendações em ordem fixa de severidade.
	if resumo.ProdutosDeficitarios > 0 {
		resumo.Recomendacoes = append(resumo.Recomendacoes, ptBR.Sprintf(
			"%d produto(s) com margem negativa precisam de revisão de preço urgente.", resumo.ProdutosDeficitarios))
	}
	if baixas > 0 {
		resumo.Recomendacoes = append(resumo.Recomendacoes, ptBR.Sprintf(
			"%d produto(s) com margem baixa (<10%%). Considere renegociar custos.", baixas))
	}
	if comST > 0 {
		resumo.Recomendacoes = append(resumo.Recomendacoes, ptBR.Sprintf(
			"%d produto(s) com ICMS-ST fora do DAS. Certifique-se de incluir esse custo na precificação.", comST))
	}
	if len(resumo.Recomendacoes) == 0 {
		resumo.Recomendacoes = append(resumo.Recomendacoes,
			"Todos os produtos apresentam margens saudáveis. Continue monitorando periodicamente.")
	}

	return resumo
}
