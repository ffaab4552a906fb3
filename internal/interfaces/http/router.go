package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Gouveiaesilva/projeto-manuela/internal/domain/tributario"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	Anexos map[string]*tributario.Anexo
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Calculadora (simples, preço, simulação)
	calc := api.Group("/calculadora")
	calcHandler := NewCalculadoraHandler()
	calc.Post("/simples", calcHandler.CargaSimples)
	calc.Post("/preco", calcHandler.Preco)
	calc.Post("/simulacao", calcHandler.Simulacao)

	// Análise de NF-e
	analises := api.Group("/analises")
	analiseHandler := NewAnaliseHandler()
	analises.Post("/xml", analiseHandler.AnalisarXML)

	// Catálogo de anexos
	tabelas := api.Group("/tabelas")
	tabelasHandler := NewTabelasHandler(deps.Anexos)
	tabelas.Get("/anexos", tabelasHandler.ListarAnexos)
}
