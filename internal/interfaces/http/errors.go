package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/Gouveiaesilva/projeto-manuela/internal/application/dto"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain"
)

// responderErro traduz erros do domínio para respostas HTTP.
func responderErro(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrConfigInvalida):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrAnexoNaoEncontrado):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "ANEXO_DESCONHECIDO", Message: err.Error()})
	case errors.Is(err, domain.ErrFaixaNaoEncontrada):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "FAIXA_NAO_ENCONTRADA", Message: err.Error()})
	case errors.Is(err, domain.ErrFormulaPreco):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "FORMULA_SEM_SOLUCAO", Message: err.Error()})
	case errors.Is(err, domain.ErrXMLInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "XML_INVALIDO", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
