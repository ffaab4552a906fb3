package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	// ErrFaixaNaoEncontrada o RBT12 está acima do teto do Simples Nacional
	// para o anexo informado. Limite duro do regime, não recuperável.
	ErrFaixaNaoEncontrada = errors.New("faixa não encontrada para o RBT12 informado")

	// ErrAnexoNaoEncontrado chave de anexo desconhecida.
	ErrAnexoNaoEncontrado = errors.New("anexo não encontrado")

	// ErrFormulaPreco a fórmula de precificação não tem solução:
	// carga + margem >= 100% ou custo <= 0.
	ErrFormulaPreco = errors.New("fórmula de preço sem solução")

	// ErrConfigInvalida parâmetros de entrada fora dos limites permitidos.
	ErrConfigInvalida = errors.New("configuração inválida")

	// ErrXMLInvalido o XML não contém a estrutura mínima de uma NF-e.
	ErrXMLInvalido = errors.New("XML de NF-e inválido")
)
