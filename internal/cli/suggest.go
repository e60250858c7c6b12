package cli

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/idilsaglam/packlist/internal/errors"
)

// suggest returns the known name closest to name, if it is close enough
// to be a likely typo.
func suggest(name string, known []string) (string, bool) {
	best, bestDist := "", -1
	for _, k := range known {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(k))
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	limit := len(name) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return "", false
	}
	return best, true
}

// withSuggestion adds "did you mean" to NOT_FOUND errors.
func withSuggestion(err error, name string, known []string) error {
	if !errors.IsErrorCode(err, errors.ErrNotFound) {
		return err
	}
	if s, ok := suggest(name, known); ok {
		return fmt.Errorf("%w (did you mean %q?)", err, s)
	}
	return err
}
