package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when a user with the same username
	// is already registered.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when the session does not exist or was
	// already destroyed.
	ErrSessionNotFound = errors.New("session not found")

	// ErrIncomeNotFound is returned when the income does not exist or is
	// owned by another user.
	ErrIncomeNotFound = errors.New("income not found")

	// ErrIncomeAlreadyLocked is returned when a locked income is mutated or
	// locked again.
	ErrIncomeAlreadyLocked = errors.New("income is already locked")

	// ErrExpenseNotFound is returned when the expense does not exist or is
	// owned by another user.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrCategoryNotFound is returned when the category does not exist or is
	// owned by another user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryAlreadyExists is returned when the user already has a
	// category with the same name.
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// Infrastructure errors. They wrap the underlying driver error.
var (
	// ErrStoreTimeout is returned when a query exceeds the configured
	// per-query timeout.
	ErrStoreTimeout = errors.New("store timeout")

	// ErrStoreUnavailable is returned when the database cannot be reached or
	// reports a transient failure.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDriver is returned by [NewConnect] for an unknown driver.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
