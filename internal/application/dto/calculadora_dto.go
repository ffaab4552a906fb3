package dto

import (
	"github.com/shopspring/decimal"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/precificacao"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

// ── Carga tributária (Simples Nacional) ───────────────────────────────────────

// CargaSimplesRequest corpo de POST /api/calculadora/simples.
type CargaSimplesRequest struct {
	RBT12        decimal.Decimal `json:"rbt12"`
	Anexo        string          `json:"anexo"`         // anexo_i..anexo_v
	TipoICMS     string          `json:"tipo_icms"`     // normal | substituicao_tributaria | isento
	AliquotaICMS decimal.Decimal `json:"aliquota_icms"` // %
	MVA          decimal.Decimal `json:"mva"`           // %
	CustoCompra  decimal.Decimal `json:"custo_compra"`  // R$
}

// DetalhamentoDTO parcelas da alíquota efetiva por tributo (pontos %).
type DetalhamentoDTO struct {
	IRPJ   decimal.Decimal `json:"irpj"`
	CSLL   decimal.Decimal `json:"csll"`
	COFINS decimal.Decimal `json:"cofins"`
	PIS    decimal.Decimal `json:"pis"`
	CPP    decimal.Decimal `json:"cpp"`
	ICMS   decimal.Decimal `json:"icms"`
}

// CargaSimplesResponse resultado do cálculo de carga tributária.
type CargaSimplesResponse struct {
	CargaTotalPercentual decimal.Decimal `json:"carga_total_percentual"`
	ICMSSTForaDAS        bool            `json:"icms_st_fora_das"`
	ICMSSTValor          decimal.Decimal `json:"icms_st_valor"`
	AliquotaEfetiva      decimal.Decimal `json:"aliquota_efetiva"`
	ICMSDentroSimples    decimal.Decimal `json:"icms_dentro_simples"`
	AliquotaSemICMS      decimal.Decimal `json:"aliquota_sem_icms"`
	Faixa                int             `json:"faixa"`
	Detalhamento         DetalhamentoDTO `json:"detalhamento"`
}

// NewCargaSimplesResponse monta a resposta a partir do resultado do motor.
func NewCargaSimplesResponse(r tributario.ResultadoSimples) CargaSimplesResponse {
	return CargaSimplesResponse{
		CargaTotalPercentual: r.CargaTotalPercentual,
		ICMSSTForaDAS:        r.ICMSSTForaDAS,
		ICMSSTValor:          r.ICMSSTValor,
		AliquotaEfetiva:      r.AliquotaEfetiva,
		ICMSDentroSimples:    r.ICMSDentroSimples,
		AliquotaSemICMS:      r.AliquotaSemICMS,
		Faixa:                r.Faixa,
		Detalhamento: DetalhamentoDTO{
			IRPJ:   r.Detalhamento.IRPJ,
			CSLL:   r.Detalhamento.CSLL,
			COFINS: r.Detalhamento.COFINS,
			PIS:    r.Detalhamento.PIS,
			CPP:    r.Detalhamento.CPP,
			ICMS:   r.Detalhamento.ICMS,
		},
	}
}

// ── Preço de venda + KPIs ─────────────────────────────────────────────────────

// PrecoRequest corpo de POST /api/calculadora/preco.
type PrecoRequest struct {
	Custos             precificacao.CustoComposicao `json:"custos"`
	CargaTributaria    decimal.Decimal              `json:"carga_tributaria"` // %
	MargemDesejada     decimal.Decimal              `json:"margem_desejada"`  // %
	CustosFixosMensais *decimal.Decimal             `json:"custos_fixos_mensais,omitempty"`
}

// PrecoResponse preço sugerido e indicadores derivados.
type PrecoResponse struct {
	CustoTotal         decimal.Decimal `json:"custo_total"`
	PrecoVenda         decimal.Decimal `json:"preco_venda"`
	ImpostoValor       decimal.Decimal `json:"imposto_valor"`
	MargemLiquida      decimal.Decimal `json:"margem_liquida"`
	MargemPercentual   decimal.Decimal `json:"margem_percentual"`
	Markup             decimal.Decimal `json:"markup"`
	MargemContribuicao decimal.Decimal `json:"margem_contribuicao"`
	PontoEquilibrio    *int64          `json:"ponto_equilibrio,omitempty"`
}

// ── Simulação de cenários ─────────────────────────────────────────────────────

// SimulacaoRequest corpo de POST /api/calculadora/simulacao.
type SimulacaoRequest struct {
	PrecoMinimo     decimal.Decimal `json:"preco_minimo"`
	PrecoMaximo     decimal.Decimal `json:"preco_maximo"`
	Incremento      decimal.Decimal `json:"incremento"`
	CustoTotal      decimal.Decimal `json:"custo_total"`
	CargaTributaria decimal.Decimal `json:"carga_tributaria"` // %
}

// SimulacaoResponse cenários gerados e o mais próximo do equilíbrio.
type SimulacaoResponse struct {
	Cenarios        []precificacao.Cenario `json:"cenarios"`
	PontoEquilibrio *precificacao.Cenario  `json:"ponto_equilibrio,omitempty"`
}

// ── Catálogo de anexos ────────────────────────────────────────────────────────

// FaixaDTO faixa de um anexo para exibição.
type FaixaDTO struct {
	Numero          int             `json:"numero"`
	RBT12Min        decimal.Decimal `json:"rbt12_min"`
	RBT12Max        decimal.Decimal `json:"rbt12_max"`
	AliquotaNominal decimal.Decimal `json:"aliquota_nominal"`
	ParcelaDeduzir  decimal.Decimal `json:"parcela_deduzir"`
}

// AnexoDTO tabela de um anexo para exibição.
type AnexoDTO struct {
	Chave     string     `json:"chave"`
	Nome      string     `json:"nome"`
	Descricao string     `json:"descricao"`
	Faixas    []FaixaDTO `json:"faixas"`
}

// NewAnexoDTO converte a tabela do catálogo.
func NewAnexoDTO(a *tributario.Anexo) AnexoDTO {
	out := AnexoDTO{Chave: a.Chave, Nome: a.Nome, Descricao: a.Descricao}
	for _, f := range a.Faixas {
		out.Faixas = append(out.Faixas, FaixaDTO{
			Numero:          f.Numero,
			RBT12Min:        f.RBT12Min,
			RBT12Max:        f.RBT12Max,
			AliquotaNominal: f.AliquotaNominal,
			ParcelaDeduzir:  f.ParcelaDeduzir,
		})
	}
	return out
}
