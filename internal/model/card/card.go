package card

import "time"

// DefaultStatus is stored when a card is written without a status.
const DefaultStatus = "ACTIVE"

// Card is a row of the cards table.
type Card struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	ModuleName  string    `json:"module_name" db:"module_name"`
	ModuleCode  string    `json:"module_code" db:"module_code"`
	Description *string   `json:"description" db:"description"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// Fields are the editable columns written by create and update.
type Fields struct {
	Title       string
	ModuleName  string
	ModuleCode  string
	Description *string
	Status      string
}

// WithDefaults returns a copy with an empty status set to DefaultStatus and
// an empty description cleared to nil.
func (f Fields) WithDefaults() Fields {
	if f.Status == "" {
		f.Status = DefaultStatus
	}
	if f.Description != nil && *f.Description == "" {
		f.Description = nil
	}
	return f
}
