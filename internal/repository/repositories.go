package repository

import (
	"github.com/deppfellow/cards-api/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Card *CardRepository
}

// NewRepositories builds every repository on the server's connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Card: NewCardRepository(s.DB.Pool),
	}
}
