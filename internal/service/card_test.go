package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/cards-api/internal/errs"
	"github.com/deppfellow/cards-api/internal/model/card"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	cards   []card.Card
	created []card.Fields
	updated map[int64]card.Fields
	err     error
}

func (f *fakeStore) List(context.Context) ([]card.Card, error) {
	return f.cards, f.err
}

func (f *fakeStore) GetByID(_ context.Context, id int64) (*card.Card, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.cards {
		if f.cards[i].ID == id {
			return &f.cards[i], nil
		}
	}
	return nil, pkgerrors.Wrapf(pgx.ErrNoRows, "table:cards: get card %d", id)
}

func (f *fakeStore) Create(_ context.Context, fields card.Fields) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.created = append(f.created, fields)
	return int64(len(f.created)), nil
}

func (f *fakeStore) Update(_ context.Context, id int64, fields card.Fields) error {
	if f.err != nil {
		return f.err
	}
	if f.updated == nil {
		f.updated = map[int64]card.Fields{}
	}
	f.updated[id] = fields
	return nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	return pkgerrors.Wrapf(pgx.ErrNoRows, "table:cards: delete card %d", id)
}

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func httpStatus(t *testing.T, err error) int {
	t.Helper()
	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T", err)
	return httpErr.Status
}

func TestListCardsNeverNil(t *testing.T) {
	svc := NewCardService(&fakeStore{})

	cards, err := svc.ListCards(newEchoContext())
	require.NoError(t, err)
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestListCardsStorageError(t *testing.T) {
	svc := NewCardService(&fakeStore{err: errors.New("connection reset")})

	_, err := svc.ListCards(newEchoContext())
	assert.Equal(t, http.StatusInternalServerError, httpStatus(t, err))
}

func TestGetCardNotFound(t *testing.T) {
	svc := NewCardService(&fakeStore{})

	_, err := svc.GetCard(newEchoContext(), 3)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Card not found", httpErr.Message)
}

func TestCreateCardAppliesDefaults(t *testing.T) {
	store := &fakeStore{}
	svc := NewCardService(store)
	empty := ""

	id, err := svc.CreateCard(newEchoContext(), &card.CreateCardPayload{
		Title:       "Graphs",
		ModuleName:  "Algorithms",
		ModuleCode:  "CS201",
		Description: &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.Len(t, store.created, 1)
	assert.Equal(t, card.DefaultStatus, store.created[0].Status)
	assert.Nil(t, store.created[0].Description)
}

func TestUpdateCardAppliesDefaults(t *testing.T) {
	store := &fakeStore{}
	svc := NewCardService(store)

	err := svc.UpdateCard(newEchoContext(), &card.UpdateCardPayload{
		ID:         9,
		Title:      "Graphs",
		ModuleName: "Algorithms",
		ModuleCode: "CS201",
	})
	require.NoError(t, err)
	assert.Equal(t, card.DefaultStatus, store.updated[9].Status)
}

func TestDeleteCardNotFound(t *testing.T) {
	svc := NewCardService(&fakeStore{})

	err := svc.DeleteCard(newEchoContext(), 11)
	assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
}
