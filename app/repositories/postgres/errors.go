package postgres

import (
	"errors"
	"fmt"
	"strings"

	"estatehub/app/errs"
	"estatehub/app/repositories"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SQLSTATE codes handled by translate.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	notNullViolation    = "23502"
	checkViolation      = "23514"
)

// translate maps driver errors onto the repository sentinels, or onto a
// client-facing 400 for constraint violations the caller can fix.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return repositories.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", repositories.ErrAlreadyExists, pgErr.ConstraintName)
	case foreignKeyViolation:
		entity := entityName(foreignKeyColumn(pgErr.TableName, pgErr.ConstraintName), pgErr.TableName)
		code := errs.MakeUpperCaseWithUnderscores(entity) + "_NOT_FOUND"
		return errs.NewBadRequestError(fmt.Sprintf("The referenced %s does not exist", entity), &code, nil)
	case notNullViolation:
		field := humanize(pgErr.ColumnName)
		if field == "" {
			field = "field"
		}
		return errs.NewBadRequestError(fmt.Sprintf("The %s is required", field), nil, []errs.FieldError{
			{Field: strings.ToLower(pgErr.ColumnName), Error: "is required"},
		})
	case checkViolation:
		return errs.NewBadRequestError("One or more values do not meet required conditions", nil, nil)
	default:
		return fmt.Errorf("postgres %s: %w", pgErr.Code, err)
	}
}

// foreignKeyColumn extracts "user_id" from "posts_user_id_fkey" on table
// "posts".
func foreignKeyColumn(table, constraint string) string {
	column := strings.TrimSuffix(constraint, "_fkey")
	if table != "" {
		column = strings.TrimPrefix(column, table+"_")
	}
	if column == constraint {
		return ""
	}
	return column
}

// entityName prefers the referencing column ("user_id" gives "User") and
// falls back to the singular table name.
func entityName(column, table string) string {
	if strings.HasSuffix(column, "_id") {
		return humanize(strings.TrimSuffix(column, "_id"))
	}
	if table != "" {
		return humanize(strings.TrimSuffix(table, "s"))
	}
	return "Record"
}

// humanize turns "post_detail" into "Post Detail".
func humanize(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}
