package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/Gouveiaesilva/projeto-manuela/internal/application/analise"
	"github.com/Gouveiaesilva/projeto-manuela/internal/application/dto"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/nfe"
)

// AnaliseHandler trata as requisições HTTP de análise de NF-e.
type AnaliseHandler struct{}

// NewAnaliseHandler constrói o handler.
func NewAnaliseHandler() *AnaliseHandler {
	return &AnaliseHandler{}
}

// AnalisarXML analisa a rentabilidade item a item de uma NF-e.
//
// O corpo é o XML bruto da nota; os parâmetros da empresa vêm na query
// string: rbt12, anexo e margem_desejada.
// POST /api/analises/xml?rbt12=250000&anexo=anexo_i&margem_desejada=20
func (h *AnaliseHandler) AnalisarXML(c *fiber.Ctx) error {
	payload := c.Body()
	if len(payload) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo vazio: envie o XML da NF-e"})
	}

	cfg, err := configDaQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}

	nota, err := nfe.Parse(payload)
	if err != nil {
		return responderErro(c, err)
	}

	resultado, err := analise.AnalisarNFe(nota, cfg)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(resultado)
}

// configDaQuery lê os parâmetros da empresa da query string.
func configDaQuery(c *fiber.Ctx) (analise.Config, error) {
	var cfg analise.Config

	rbt12, err := decimal.NewFromString(c.Query("rbt12"))
	if err != nil {
		return cfg, fmt.Errorf("rbt12 inválido: %q", c.Query("rbt12"))
	}
	margem, err := decimal.NewFromString(c.Query("margem_desejada"))
	if err != nil {
		return cfg, fmt.Errorf("margem_desejada inválida: %q", c.Query("margem_desejada"))
	}

	cfg.RBT12 = rbt12
	cfg.Anexo = c.Query("anexo")
	cfg.MargemDesejada = margem
	return cfg, nil
}
