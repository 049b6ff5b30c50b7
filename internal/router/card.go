package router

import (
	"net/http"

	"github.com/deppfellow/cards-api/internal/handler"
	"github.com/deppfellow/cards-api/internal/model/card"
	"github.com/labstack/echo/v4"
)

func registerCardRoutes(r *echo.Echo, h *handler.Handlers) {
	cards := h.Card

	r.GET("/allcards", handler.Handle(
		cards.Handler,
		cards.ListCards,
		http.StatusOK,
		&card.ListCardsPayload{},
	))

	r.GET("/cards/:id", handler.Handle(
		cards.Handler,
		cards.GetCard,
		http.StatusOK,
		&card.GetCardPayload{},
	))

	r.POST("/cards", handler.Handle(
		cards.Handler,
		cards.CreateCard,
		http.StatusCreated,
		&card.CreateCardPayload{},
	))

	r.PUT("/cards/:id", handler.Handle(
		cards.Handler,
		cards.UpdateCard,
		http.StatusOK,
		&card.UpdateCardPayload{},
	))

	r.DELETE("/cards/:id", handler.Handle(
		cards.Handler,
		cards.DeleteCard,
		http.StatusOK,
		&card.DeleteCardPayload{},
	))
}
