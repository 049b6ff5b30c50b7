package card

import "github.com/deppfellow/cards-api/internal/validation"

// ------------------------------------------------------------

// ListCardsPayload takes no input; listing is unfiltered and unpaginated.
type ListCardsPayload struct{}

func (p *ListCardsPayload) Validate() error {
	return nil
}

// ------------------------------------------------------------

type GetCardPayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *GetCardPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type DeleteCardPayload struct {
	ID int64 `param:"id" json:"-"`
}

func (p *DeleteCardPayload) Validate() error {
	return validation.Struct(p)
}

// ------------------------------------------------------------

type CreateCardPayload struct {
	Title       string  `json:"title" validate:"required"`
	ModuleName  string  `json:"module_name" validate:"required"`
	ModuleCode  string  `json:"module_code" validate:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

func (p *CreateCardPayload) Validate() error {
	return validation.Struct(p)
}

func (p *CreateCardPayload) Fields() Fields {
	return Fields{
		Title:       p.Title,
		ModuleName:  p.ModuleName,
		ModuleCode:  p.ModuleCode,
		Description: p.Description,
		Status:      p.Status,
	}
}

// ------------------------------------------------------------

type UpdateCardPayload struct {
	ID          int64   `param:"id" json:"-"`
	Title       string  `json:"title" validate:"required"`
	ModuleName  string  `json:"module_name" validate:"required"`
	ModuleCode  string  `json:"module_code" validate:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

func (p *UpdateCardPayload) Validate() error {
	return validation.Struct(p)
}

func (p *UpdateCardPayload) Fields() Fields {
	return Fields{
		Title:       p.Title,
		ModuleName:  p.ModuleName,
		ModuleCode:  p.ModuleCode,
		Description: p.Description,
		Status:      p.Status,
	}
}
