package service

import (
	"context"

	"github.com/deppfellow/cards-api/internal/middleware"
	"github.com/deppfellow/cards-api/internal/model/card"
	"github.com/deppfellow/cards-api/internal/sqlerr"
	"github.com/labstack/echo/v4"
)

// CardStore is the persistence the card service needs. *repository.CardRepository
// implements it.
type CardStore interface {
	List(ctx context.Context) ([]card.Card, error)
	GetByID(ctx context.Context, id int64) (*card.Card, error)
	Create(ctx context.Context, f card.Fields) (int64, error)
	Update(ctx context.Context, id int64, f card.Fields) error
	Delete(ctx context.Context, id int64) error
}

type CardService struct {
	cards CardStore
}

func NewCardService(cards CardStore) *CardService {
	return &CardService{cards: cards}
}

func (s *CardService) ListCards(ctx echo.Context) ([]card.Card, error) {
	cards, err := s.cards.List(ctx.Request().Context())
	if err != nil {
		middleware.GetLogger(ctx).Error().Err(err).Msg("failed to list cards")
		return nil, sqlerr.HandleError(err)
	}

	if cards == nil {
		cards = []card.Card{}
	}
	return cards, nil
}

func (s *CardService) GetCard(ctx echo.Context, id int64) (*card.Card, error) {
	c, err := s.cards.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return c, nil
}

// CreateCard stores a new card with an empty status defaulted to ACTIVE and
// an empty description stored as null.
func (s *CardService) CreateCard(ctx echo.Context, payload *card.CreateCardPayload) (int64, error) {
	logger := middleware.GetLogger(ctx)

	id, err := s.cards.Create(ctx.Request().Context(), payload.Fields().WithDefaults())
	if err != nil {
		logger.Error().Err(err).Msg("failed to create card")
		return 0, sqlerr.HandleError(err)
	}

	logger.Info().
		Int64("card_id", id).
		Str("module_code", payload.ModuleCode).
		Msg("card created")

	return id, nil
}

// UpdateCard replaces all editable fields; the create defaults apply here too.
func (s *CardService) UpdateCard(ctx echo.Context, payload *card.UpdateCardPayload) error {
	logger := middleware.GetLogger(ctx).With().Int64("card_id", payload.ID).Logger()

	if err := s.cards.Update(ctx.Request().Context(), payload.ID, payload.Fields().WithDefaults()); err != nil {
		logger.Warn().Err(err).Msg("failed to update card")
		return sqlerr.HandleError(err)
	}

	logger.Info().Msg("card updated")
	return nil
}

func (s *CardService) DeleteCard(ctx echo.Context, id int64) error {
	logger := middleware.GetLogger(ctx).With().Int64("card_id", id).Logger()

	if err := s.cards.Delete(ctx.Request().Context(), id); err != nil {
		logger.Warn().Err(err).Msg("failed to delete card")
		return sqlerr.HandleError(err)
	}

	logger.Info().Msg("card deleted")
	return nil
}
