package handler

import (
	"github.com/deppfellow/cards-api/internal/server"
	"github.com/deppfellow/cards-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives one value.
type Handlers struct {
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
	Card    *CardHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:  NewHealthHandler(s),
		OpenAPI: NewOpenAPIHandler(s),
		Card:    NewCardHandler(s, services.Card),
	}
}
