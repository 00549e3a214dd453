package handler

// erroResponse is the standard error envelope returned on all 4xx/5xx
// responses. The field name is part of the public contract.
type erroResponse struct {
	Erro any `json:"erro"`
}

// paginacaoResponse describes the page of a list response.
type paginacaoResponse struct {
	Total        int64 `json:"total"`
	Pagina       int   `json:"pagina"`
	Limite       int   `json:"limite"`
	TotalPaginas int   `json:"total_paginas"`
}

func paginacao(total int64, page, limit int) paginacaoResponse {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}
	return paginacaoResponse{Total: total, Pagina: page, Limite: limit, TotalPaginas: pages}
}
