package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/go-delta-sync/internal/logger"
	"github.com/MKhiriev/go-delta-sync/models"
)

func newTestTopicRepo(t *testing.T) (LocalStore[models.Topic], sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	l := logger.Nop()
	repo := NewCollectionRepository[models.Topic](&DB{DB: db, logger: l}, TableTopics, l)

	return repo, mock, db
}

func testTopic(id, title string) models.Topic {
	return models.Topic{
		ID:        id,
		Title:     title,
		UpdatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()

	payload, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal test payload: %v", err)
	}
	return string(payload)
}

func TestUpsertAll_Success(t *testing.T) {
	repo, mock, db := newTestTopicRepo(t)
	defer db.Close()

	first := testTopic("t1", "Go")
	second := testTopic("t2", "SQL")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT OR REPLACE INTO topics").
		WithArgs(first.ID, mustMarshal(t, first)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT OR REPLACE INTO topics").
		WithArgs(second.ID, mustMarshal(t, second)).
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	if err := repo.UpsertAll(context.Background(), []models.Topic{first, second}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUpsertAll_EmptyBatchTouchesNothing(t *testing.T) {
	repo, mock, db := newTestTopicRepo(t)
	defer db.Close()

	if err := repo.UpsertAll(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("empty batch must not hit the database: %v", err)
	}
}

func TestUpsertAll_ExecErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestTopicRepo(t)
	defer db.Close()

	topic := testTopic("t1", "Go")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT OR REPLACE INTO topics").
		WithArgs(topic.ID, sqlmock.AnyArg()).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := repo.UpsertAll(context.Background(), []models.Topic{topic})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteAll_SingleStatement(t *testing.T) {
	repo, mock, db := newTestTopicRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM topics").
		WithArgs("t1", "t2", "t3").
		WillReturnResult(sqlmock.NewResult(0, 2))

	if err := repo.DeleteAll(context.Background(), []string{"t1", "t2", "t3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteAll_EmptyBatchTouchesNothing(t *testing.T) {
	repo, mock, db := newTestTopicRepo(t)
	defer db.Close()

	if err := repo.DeleteAll(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("empty batch must not hit the database: %v", err)
	}
}

func TestSnapshot_RoundTripPreservesOrder(t *testing.T) {
	repo, mock, db := newTestTopicRepo(t)
	defer db.Close()

	first := testTopic("t1", "Go")
	second := testTopic("t2", "SQL")

	rows := sqlmock.NewRows([]string{"payload"}).
		AddRow(mustMarshal(t, first)).
		AddRow(mustMarshal(t, second))

	mock.ExpectQuery("SELECT payload FROM topics ORDER BY rowid").
		WillReturnRows(rows)

	entities, err := repo.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(entities))
	}
	// stored payloads decode back into the exact entities that were written
	if entities[0] != first || entities[1] != second {
		t.Errorf("round trip mismatch: got %+v and %+v", entities[0], entities[1])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSnapshot_BrokenPayload(t *testing.T) {
	repo, mock, db := newTestTopicRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"payload"}).AddRow("{not json")

	mock.ExpectQuery("SELECT payload FROM topics").WillReturnRows(rows)

	_, err := repo.Snapshot(context.Background())
	if !errors.Is(err, ErrDecodingPayload) {
		t.Errorf("expected ErrDecodingPayload, got %v", err)
	}
}
