// Package errors provides error handling conventions for the quicksave CLI.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors and
// defines an ExitError type that carries a process exit code and an optional
// suggestion for the user.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown game, missing directory, bad flags)
//   - ExitSystem (2): System-related error (I/O, permissions, archive failures)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports error unwrapping via [errors.Unwrap] and [errors.As]:
//
//	err := qserrors.NewUserError(registry.ErrNotFound, "Run: quicksave list")
//	var exitErr *qserrors.ExitError
//	if errors.As(err, &exitErr) {
//	    os.Exit(exitErr.Code)
//	}
package errors
