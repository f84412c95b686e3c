package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValue.Get] when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCorruptedData is returned when a stored value cannot be decoded.
	ErrCorruptedData = errors.New("stored data is corrupted")

	// ErrDuplicateKey is returned when a write violates a uniqueness
	// constraint, e.g. two accounts sharing one email.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrStorageUnavailable is returned for transient backend failures
	// such as a dropped connection.
	ErrStorageUnavailable = errors.New("storage is unavailable")

	// ErrUnknownDriver is returned by [NewRepository] for an unsupported driver.
	ErrUnknownDriver = errors.New("unknown storage driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRows is returned when scanning column values during
	// row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
