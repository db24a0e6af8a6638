package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"not a pg error", errors.New("boom"), NonRetryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), UniqueViolation},
		{"wrapped unique violation", fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), UniqueViolation},
		{"connection failure", pgError(pgerrcode.ConnectionFailure), Retryable},
		{"deadlock", pgError(pgerrcode.DeadlockDetected), Retryable},
		{"serialization failure", pgError(pgerrcode.SerializationFailure), Retryable},
		{"syntax error", pgError(pgerrcode.SyntaxError), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"not a sqlite error", errors.New("boom"), NonRetryable},
		{"primary key violation", sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintPrimaryKey), UniqueViolation},
		{"unique violation", sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintUnique), UniqueViolation},
		{"busy", sqliteError(sqlite3.ErrBusy, 0), Retryable},
		{"locked", sqliteError(sqlite3.ErrLocked, 0), Retryable},
		{"other constraint", sqliteError(sqlite3.ErrConstraint, sqlite3.ErrConstraintNotNull), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
