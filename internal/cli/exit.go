package cli

import (
	stderrors "errors"

	"github.com/idilsaglam/packlist/internal/errors"
)

// usageError marks bad arguments or flags.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// ExitCode maps an error to the process exit code:
// 0 ok, 1 runtime failure, 2 usage or rejected input.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ue usageError
	if stderrors.As(err, &ue) || errors.IsValidation(err) || errors.IsNotFound(err) {
		return 2
	}
	return 1
}
