package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/deppfellow/cards-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TablePrefix tags wrapped no-rows errors with the table they came from,
// e.g. "table:cards: get card 7: no rows in result set".
const TablePrefix = "table:"

// ErrCode reports the mapped Code for a given error, or Other.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}

	return Other
}

// ConvertPgError converts a pgconn.PgError into a sqlerr.Error.
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// getEntityName derives a display name from a table name:
// "cards" -> "Card". Falls back to "Resource".
func getEntityName(tableName string) string {
	if tableName == "" {
		return "Resource"
	}

	entity := tableName
	if strings.HasSuffix(entity, "s") && len(entity) > 1 {
		entity = entity[:len(entity)-1]
	}
	return humanizeText(entity)
}

// humanizeText converts snake_case into Title Case: "module_card" -> "Module Card".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// tableFromMessage extracts the table tag added by the repository.
func tableFromMessage(msg string) string {
	_, rest, found := strings.Cut(msg, TablePrefix)
	if !found {
		return ""
	}
	table, _, _ := strings.Cut(rest, ":")
	return strings.TrimSpace(table)
}

// HandleError converts a low-level database error into an application error.
//
// Output:
//   - *errs.HTTPError: returned unchanged
//   - pgx.ErrNoRows / sql.ErrNoRows: 404 "<Entity> not found"
//   - *pgconn.PgError: storage error wrapping a *sqlerr.Error
//   - anything else: storage error wrapping the original
//
// Constraint violations are not told apart for the client; they are all
// storage errors and only the logs carry the SQLSTATE.
func HandleError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		if table := tableFromMessage(err.Error()); table != "" {
			return errs.NewNotFoundError(fmt.Sprintf("%s not found", getEntityName(table)), true, nil)
		}
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return errs.NewStorageError(fmt.Errorf("%w: %w", ConvertPgError(pgErr), err))
	}

	return errs.NewStorageError(err)
}
