package tributario

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
)

// TipoICMS tratamento simplificado do ICMS de um item, derivado do
// CST/CSOSN da nota.
type TipoICMS string

const (
	ICMSNormal       TipoICMS = "normal"
	ICMSSubstituicao TipoICMS = "substituicao_tributaria"
	ICMSIsento       TipoICMS = "isento"
)

var cem = decimal.NewFromInt(100)

// EncontrarFaixa localiza a faixa do anexo cujo intervalo [min, max]
// contém o RBT12 (limites inclusivos: o valor de borda pertence à faixa
// de menor índice). RBT12 acima do teto do regime é irrecuperável.
func EncontrarFaixa(rbt12 decimal.Decimal, anexo *Anexo) (*Faixa, error) {
	for i := range anexo.Faixas {
		f := &anexo.Faixas[i]
		if rbt12.GreaterThanOrEqual(f.RBT12Min) && rbt12.LessThanOrEqual(f.RBT12Max) {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: RBT12 R$ %s no %s", domain.ErrFaixaNaoEncontrada, rbt12.StringFixed(2), anexo.Nome)
}

// AliquotaEfetiva resultado do cálculo da alíquota efetiva de uma faixa.
type AliquotaEfetiva struct {
	Faixa             *Faixa
	Efetiva           decimal.Decimal // %
	ICMSDentroSimples decimal.Decimal // parcela de ICMS embutida na efetiva (%)
	SemICMS           decimal.Decimal // efetiva - parcela de ICMS (%)
}

// CalcularAliquotaEfetiva deriva a alíquota efetiva do Simples Nacional.
// Fórmula: (RBT12 × alíquota nominal − parcela a deduzir) / RBT12.
// Na faixa 1 a parcela a deduzir é zero e a efetiva é a própria nominal,
// o que também evita a divisão 0/0 quando RBT12 = 0.
func CalcularAliquotaEfetiva(rbt12 decimal.Decimal, anexo *Anexo) (AliquotaEfetiva, error) {
	f, err := EncontrarFaixa(rbt12, anexo)
	if err != nil {
		return AliquotaEfetiva{}, err
	}

	efetiva := f.AliquotaNominal
	if !f.ParcelaDeduzir.IsZero() {
		bruto := rbt12.Mul(f.AliquotaNominal).Div(cem).Sub(f.ParcelaDeduzir)
		efetiva = bruto.Div(rbt12).Mul(cem)
	}

	icmsDentro := efetiva.Mul(f.Distribuicao.ICMS).Div(cem)

	return AliquotaEfetiva{
		Faixa:             f,
		Efetiva:           efetiva,
		ICMSDentroSimples: icmsDentro,
		SemICMS:           efetiva.Sub(icmsDentro),
	}, nil
}

// EntradaSimples parâmetros para o cálculo da carga tributária de um item.
type EntradaSimples struct {
	RBT12        decimal.Decimal
	Anexo        string // chave: anexo_i..anexo_v
	TipoICMS     TipoICMS
	AliquotaICMS decimal.Decimal // % aplicável ao ICMS-ST
	MVA          decimal.Decimal // % margem de valor agregado
	CustoCompra  decimal.Decimal // base do ICMS-ST (R$)
}

// ResultadoSimples carga tributária de um item sob o Simples Nacional.
type ResultadoSimples struct {
	Faixa                int // número da faixa aplicada (1..6)
	CargaTotalPercentual decimal.Decimal
	ICMSSTForaDAS        bool
	ICMSSTValor          decimal.Decimal
	AliquotaEfetiva      decimal.Decimal
	ICMSDentroSimples    decimal.Decimal
	AliquotaSemICMS      decimal.Decimal
	Detalhamento         DistribuicaoTributos // parcelas em pontos percentuais da efetiva
}

// CalcularCargaSimples calcula a carga tributária total de um item.
//
// Quando o item está sujeito a substituição tributária, o ICMS sai do DAS:
// a parcela de ICMS é removida da alíquota efetiva e o ICMS-ST é calculado
// à parte sobre o custo de compra, entrando na carga como percentual do
// custo. O ICMS próprio usado no abatimento é a parcela de ICMS embutida
// na efetiva aplicada ao custo (empresa do Simples não se credita do
// vICMS destacado na nota).
func CalcularCargaSimples(in EntradaSimples) (ResultadoSimples, error) {
	anexo, ok := Anexos[in.Anexo]
	if !ok {
		return ResultadoSimples{}, fmt.Errorf("%w: %q", domain.ErrAnexoNaoEncontrado, in.Anexo)
	}

	aliq, err := CalcularAliquotaEfetiva(in.RBT12, anexo)
	if err != nil {
		return ResultadoSimples{}, err
	}

	res := ResultadoSimples{
		Faixa:             aliq.Faixa.Numero,
		AliquotaEfetiva:   aliq.Efetiva,
		ICMSDentroSimples: aliq.ICMSDentroSimples,
		AliquotaSemICMS:   aliq.SemICMS,
		ICMSSTForaDAS:     in.TipoICMS == ICMSSubstituicao,
	}

	if res.ICMSSTForaDAS {
		icmsProprio := in.CustoCompra.Mul(aliq.ICMSDentroSimples).Div(cem)
		res.ICMSSTValor = CalcularICMSST(EntradaICMSST{
			BaseCalculo:  in.CustoCompra,
			MVA:          in.MVA,
			AliquotaICMS: in.AliquotaICMS,
			ICMSProprio:  icmsProprio,
		})

		stPercentual := decimal.Zero
		if in.CustoCompra.IsPositive() {
			stPercentual = res.ICMSSTValor.Div(in.CustoCompra).Mul(cem)
		}
		res.CargaTotalPercentual = aliq.SemICMS.Add(stPercentual)
	} else {
		res.CargaTotalPercentual = aliq.Efetiva
	}

	rep := aliq.Faixa.Distribuicao
	res.Detalhamento = DistribuicaoTributos{
		IRPJ:   aliq.Efetiva.Mul(rep.IRPJ).Div(cem),
		CSLL:   aliq.Efetiva.Mul(rep.CSLL).Div(cem),
		COFINS: aliq.Efetiva.Mul(rep.COFINS).Div(cem),
		PIS:    aliq.Efetiva.Mul(rep.PIS).Div(cem),
		CPP:    aliq.Efetiva.Mul(rep.CPP).Div(cem),
		ICMS:   aliq.ICMSDentroSimples,
	}
	if res.ICMSSTForaDAS {
		res.Detalhamento.ICMS = decimal.Zero
	}

	return res, nil
}
