package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrFormNotFound is returned when no form matches the requested id or
	// no active form is bound to the requested page.
	ErrFormNotFound = errors.New("form was not found")

	// ErrSubmissionNotFound is returned when no submission matches the
	// requested id.
	ErrSubmissionNotFound = errors.New("submission was not found")

	// ErrEmailTemplateNotFound is returned when no email template matches the
	// requested id.
	ErrEmailTemplateNotFound = errors.New("email template was not found")

	// ErrActivePageConflict is returned when saving a form would leave two
	// active forms bound to the same page.
	ErrActivePageConflict = errors.New("another active form is already bound to this page")
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

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingDocument is returned when a JSONB column cannot be encoded
	// or decoded.
	ErrEncodingDocument = errors.New("failed to encode json document")
)
