package postgres

import (
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type constraintKind int

const (
	noConstraint constraintKind = iota
	uniqueConstraint
	foreignKeyConstraint
	checkConstraint
)

// classifyConstraint reports which kind of constraint rejected a write.
// SQLite errors arrive already translated by gorm; PostgreSQL ones are
// matched on SQLSTATE as go-lib opens its pool without TranslateError.
func classifyConstraint(err error) constraintKind {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return uniqueConstraint
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return foreignKeyConstraint
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return checkConstraint
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return noConstraint
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return uniqueConstraint
	case pgerrcode.ForeignKeyViolation:
		return foreignKeyConstraint
	case pgerrcode.CheckViolation, pgerrcode.StringDataRightTruncationDataException:
		return checkConstraint
	default:
		return noConstraint
	}
}
