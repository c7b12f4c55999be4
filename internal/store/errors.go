package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEntityNotFound is returned when an operation targets an entity
	// (identified by collection and entity id) that has no live row in the
	// catalog.
	ErrEntityNotFound = errors.New("entity was not found")

	// ErrUnknownCollection is returned when a repository call names a
	// collection that has no table or registry entry behind it.
	ErrUnknownCollection = errors.New("unknown collection")

	// ErrCursorNotPersisted is returned when writing a version cursor
	// completes without error but the number of affected rows is zero,
	// indicating that the cursor value was not actually stored.
	ErrCursorNotPersisted = errors.New("version cursor was not persisted")

	// ErrRetryableStorage tags database failures that the error
	// classificator recognises as transient (connection loss, deadlock,
	// serialization rollback). It always wraps one of the low-level
	// operation errors below; callers match it with [errors.Is] to decide
	// between retrying and giving up.
	ErrRetryableStorage = errors.New("retryable storage failure")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingPayload is returned when an entity cannot be serialized to
	// its JSON payload form before being written to the local replica.
	ErrEncodingPayload = errors.New("failed to encode entity payload")

	// ErrDecodingPayload is returned when a stored JSON payload cannot be
	// deserialized back into its entity type.
	ErrDecodingPayload = errors.New("failed to decode entity payload")
)
