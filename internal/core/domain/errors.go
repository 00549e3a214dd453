package domain

import "errors"

// Sentinel errors shared across services, repositories and the HTTP error
// handler. User-facing messages are in Portuguese; the central error handler
// maps each sentinel to its HTTP status code.
var (
	ErrClienteNotFound   = errors.New("Cliente não encontrado")
	ErrAdminNotFound     = errors.New("Administrador não encontrado")
	ErrProdutoNotFound   = errors.New("Produto não encontrado")
	ErrCategoriaNotFound = errors.New("Categoria não encontrada")
	ErrPropostaNotFound  = errors.New("Proposta não encontrada")

	ErrEmailTaken         = errors.New("E-mail já cadastrado")
	ErrInvalidCredentials = errors.New("Login ou senha incorretos")
	ErrAdminExists        = errors.New("Já existe um administrador cadastrado no sistema")
	ErrNivelInvalido      = errors.New("Nível de permissão deve estar entre 1 e 5")
	ErrForbidden          = errors.New("Acesso negado")

	ErrTokenExpired = errors.New("Token expirado")
	ErrTokenInvalid = errors.New("Token inválido")

	ErrTransicaoInvalida = errors.New("Transição de status inválida")
)
