package repository

import (
	"context"

	"github.com/deppfellow/cards-api/internal/model/card"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

const cardColumns = `id, title, module_name, module_code, description, status, created_at`

type CardRepository struct {
	db DBTX
}

func NewCardRepository(db DBTX) *CardRepository {
	return &CardRepository{db: db}
}

func scanCard(row pgx.Row) (card.Card, error) {
	var c card.Card
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.ModuleName,
		&c.ModuleCode,
		&c.Description,
		&c.Status,
		&c.CreatedAt,
	)
	return c, err
}

// List returns every card, newest first.
func (r *CardRepository) List(ctx context.Context) ([]card.Card, error) {
	stmt := `
		SELECT ` + cardColumns + `
		FROM cards
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, stmt)
	if err != nil {
		return nil, errors.Wrap(err, "table:cards: list cards")
	}

	cards, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (card.Card, error) {
		return scanCard(row)
	})
	if err != nil {
		return nil, errors.Wrap(err, "table:cards: collect cards")
	}

	return cards, nil
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (*card.Card, error) {
	stmt := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE id = $1
	`

	c, err := scanCard(r.db.QueryRow(ctx, stmt, id))
	if err != nil {
		return nil, errors.Wrapf(err, "table:cards: get card %d", id)
	}

	return &c, nil
}

// Create inserts a card and returns the generated id.
func (r *CardRepository) Create(ctx context.Context, f card.Fields) (int64, error) {
	stmt := `
		INSERT INTO cards (title, module_name, module_code, description, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRow(ctx, stmt,
		f.Title,
		f.ModuleName,
		f.ModuleCode,
		f.Description,
		f.Status,
	).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, "table:cards: create card")
	}

	return id, nil
}

// Update replaces every editable column of the card. An id that matches no
// row is reported as pgx.ErrNoRows.
func (r *CardRepository) Update(ctx context.Context, id int64, f card.Fields) error {
	stmt := `
		UPDATE cards
		SET title = $1, module_name = $2, module_code = $3, description = $4, status = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, stmt,
		f.Title,
		f.ModuleName,
		f.ModuleCode,
		f.Description,
		f.Status,
		id,
	)
	if err != nil {
		return errors.Wrapf(err, "table:cards: update card %d", id)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "table:cards: update card %d", id)
	}

	return nil
}

func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	stmt := `DELETE FROM cards WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, id)
	if err != nil {
		return errors.Wrapf(err, "table:cards: delete card %d", id)
	}
	if tag.RowsAffected() == 0 {
		return errors.Wrapf(pgx.ErrNoRows, "table:cards: delete card %d", id)
	}

	return nil
}
