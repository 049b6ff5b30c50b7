package handler

import (
	"github.com/deppfellow/cards-api/internal/model"
	"github.com/deppfellow/cards-api/internal/model/card"
	"github.com/deppfellow/cards-api/internal/server"
	"github.com/labstack/echo/v4"
)

// CardService is implemented by *service.CardService.
type CardService interface {
	ListCards(ctx echo.Context) ([]card.Card, error)
	GetCard(ctx echo.Context, id int64) (*card.Card, error)
	CreateCard(ctx echo.Context, payload *card.CreateCardPayload) (int64, error)
	UpdateCard(ctx echo.Context, payload *card.UpdateCardPayload) error
	DeleteCard(ctx echo.Context, id int64) error
}

type CardHandler struct {
	Handler
	cards CardService
}

func NewCardHandler(s *server.Server, cards CardService) *CardHandler {
	return &CardHandler{
		Handler: NewHandler(s),
		cards:   cards,
	}
}

func (h *CardHandler) ListCards(c echo.Context, _ *card.ListCardsPayload) ([]card.Card, error) {
	return h.cards.ListCards(c)
}

func (h *CardHandler) GetCard(c echo.Context, payload *card.GetCardPayload) (*card.Card, error) {
	return h.cards.GetCard(c, payload.ID)
}

func (h *CardHandler) CreateCard(c echo.Context, payload *card.CreateCardPayload) (*model.CreatedResponse, error) {
	id, err := h.cards.CreateCard(c, payload)
	if err != nil {
		return nil, err
	}

	return &model.CreatedResponse{
		Message: "Card created successfully",
		ID:      id,
	}, nil
}

func (h *CardHandler) UpdateCard(c echo.Context, payload *card.UpdateCardPayload) (*model.MessageResponse, error) {
	if err := h.cards.UpdateCard(c, payload); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "Card updated successfully"}, nil
}

func (h *CardHandler) DeleteCard(c echo.Context, payload *card.DeleteCardPayload) (*model.MessageResponse, error) {
	if err := h.cards.DeleteCard(c, payload.ID); err != nil {
		return nil, err
	}

	return &model.MessageResponse{Message: "Card deleted successfully"}, nil
}
