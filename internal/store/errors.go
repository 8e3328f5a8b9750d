package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrProfileNotFound is returned when no style profile exists for the
	// requested (user, platform) pair.
	ErrProfileNotFound = errors.New("style profile was not found")

	// ErrCorruptedRecord is returned when a stored column cannot be decoded
	// (invalid hex or base64).
	ErrCorruptedRecord = errors.New("stored style profile is corrupted")

	// ErrInvalidIncrement is returned when the comment counter increment is
	// not positive.
	ErrInvalidIncrement = errors.New("comment count increment must be positive")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. The driver error stays in the chain for IsRetryable.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan style profile row")
)
