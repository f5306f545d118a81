package postgres

import (
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyConstraint(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constraintKind
	}{
		{name: "translated unique", err: errors.Wrap(gorm.ErrDuplicatedKey, "insert"), want: uniqueConstraint},
		{name: "translated foreign key", err: gorm.ErrForeignKeyViolated, want: foreignKeyConstraint},
		{name: "postgres unique", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: uniqueConstraint},
		{name: "postgres foreign key", err: errors.WithStack(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}), want: foreignKeyConstraint},
		{name: "postgres truncation", err: &pgconn.PgError{Code: pgerrcode.StringDataRightTruncationDataException}, want: checkConstraint},
		{name: "other postgres error", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: noConstraint},
		{name: "plain error", err: errors.New("connection reset"), want: noConstraint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyConstraint(tt.err))
		})
	}
}
