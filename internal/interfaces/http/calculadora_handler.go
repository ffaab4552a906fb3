package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Gouveiaesilva/projeto-manuela/internal/application/dto"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/precificacao"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

var decimalCem = decimal.NewFromInt(100)

// CalculadoraHandler trata as requisições HTTP da calculadora tributária.
type CalculadoraHandler struct{}

// NewCalculadoraHandler constrói o handler.
func NewCalculadoraHandler() *CalculadoraHandler {
	return &CalculadoraHandler{}
}

// CargaSimples calcula a carga tributária de um item sob o Simples Nacional.
// POST /api/calculadora/simples
func (h *CalculadoraHandler) CargaSimples(c *fiber.Ctx) error {
	var in dto.CargaSimplesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	tipo, err := tipoICMS(in.TipoICMS)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	res, err := tributario.CalcularCargaSimples(tributario.EntradaSimples{
		RBT12:        in.RBT12,
		Anexo:        in.Anexo,
		TipoICMS:     tipo,
		AliquotaICMS: in.AliquotaICMS,
		MVA:          in.MVA,
		CustoCompra:  in.CustoCompra,
	})
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.NewCargaSimplesResponse(res))
}

// Preco calcula o preço de venda sugerido e os KPIs derivados.
// POST /api/calculadora/preco
func (h *CalculadoraHandler) Preco(c *fiber.Ctx) error {
	var in dto.PrecoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	custoTotal := in.Custos.CustoTotal()
	preco, err := precificacao.CalcularPrecoVenda(custoTotal, in.CargaTributaria, in.MargemDesejada)
	if err != nil {
		return responderErro(c, err)
	}
	imposto := preco.Mul(in.CargaTributaria).Div(decimalCem)
	kpis := precificacao.CalcularKPIs(precificacao.EntradaKPI{
		PrecoVenda:         preco,
		CustoTotal:         custoTotal,
		ImpostoTotal:       imposto,
		CustosFixosMensais: in.CustosFixosMensais,
	})
	return c.JSON(dto.PrecoResponse{
		CustoTotal:         custoTotal,
		PrecoVenda:         preco,
		ImpostoValor:       kpis.ImpostoValor,
		MargemLiquida:      kpis.MargemLiquida,
		MargemPercentual:   kpis.MargemPercentual,
		Markup:             kpis.Markup,
		MargemContribuicao: kpis.MargemContribuicao,
		PontoEquilibrio:    kpis.PontoEquilibrio,
	})
}

// Simulacao gera cenários de preço entre um mínimo e um máximo.
// POST /api/calculadora/simulacao
func (h *CalculadoraHandler) Simulacao(c *fiber.Ctx) error {
	var in dto.SimulacaoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	cenarios, err := precificacao.GerarSimulacao(precificacao.ConfigSimulacao{
		PrecoMinimo:     in.PrecoMinimo,
		PrecoMaximo:     in.PrecoMaximo,
		Incremento:      in.Incremento,
		CustoTotal:      in.CustoTotal,
		CargaTributaria: in.CargaTributaria,
	})
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.SimulacaoResponse{
		Cenarios:        cenarios,
		PontoEquilibrio: precificacao.EncontrarPontoEquilibrio(cenarios),
	})
}

func tipoICMS(s string) (tributario.TipoICMS, error) {
	switch tributario.TipoICMS(s) {
	case tributario.ICMSNormal, tributario.ICMSSubstituicao, tributario.ICMSIsento:
		return tributario.TipoICMS(s), nil
	case "":
		return tributario.ICMSNormal, nil
	default:
		return "", fmt.Errorf("tipo_icms %q desconhecido", s)
	}
}
