package http

import (
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/Gouveiaesilva/projeto-manuela/internal/application/dto"
	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

// TabelasHandler expõe as tabelas regulamentares do Simples Nacional.
type TabelasHandler struct {
	anexos map[string]*tributario.Anexo
}

// NewTabelasHandler constrói o handler.
func NewTabelasHandler(anexos map[string]*tributario.Anexo) *TabelasHandler {
	return &TabelasHandler{anexos: anexos}
}

// ListarAnexos lista os anexos com suas faixas, em ordem de chave.
// GET /api/tabelas/anexos
func (h *TabelasHandler) ListarAnexos(c *fiber.Ctx) error {
	chaves := make([]string, 0, len(h.anexos))
	for chave := range h.anexos {
		chaves = append(chaves, chave)
	}
	sort.Strings(chaves)

	out := make([]dto.AnexoDTO, 0, len(chaves))
	for _, chave := range chaves {
		out = append(out, dto.NewAnexoDTO(h.anexos[chave]))
	}
	return c.JSON(out)
}
