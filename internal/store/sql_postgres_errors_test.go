package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestClassify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil error", err: nil, want: NonRetryable},
		{name: "not a pg error", err: errors.New("broken pipe"), want: NonRetryable},

		{name: "connection exception", err: pgError(pgerrcode.ConnectionException), want: Retryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "deadlock detected", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},

		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: NonRetryable},
		{name: "foreign key violation", err: pgError(pgerrcode.ForeignKeyViolation), want: NonRetryable},
		{name: "syntax error", err: pgError(pgerrcode.SyntaxError), want: NonRetryable},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
		{name: "unrecognised code", err: pgError("P0001"), want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.Classify(tt.err); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestClassify_UnwrapsNestedPgError(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	wrapped := fmt.Errorf("executing statement: %w", pgError(pgerrcode.DeadlockDetected))
	if got := classifier.Classify(wrapped); got != Retryable {
		t.Errorf("expected wrapped deadlock to classify as Retryable, got %v", got)
	}
}
