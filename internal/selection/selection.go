package selection

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kos368437/networks-2-lab3/internal/types"
)

// ErrNoCandidates is returned by Choose when there is nothing to choose from
var ErrNoCandidates = errors.New("no candidates to choose from")

// InputError reports an index the operator typed that cannot be used
type InputError struct {
	Input  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid selection %q: %s", e.Input, e.Reason)
}

// Present writes one "<index>: <summary>" line per candidate, in order
func Present(w io.Writer, candidates []types.LocationCandidate) {
	for i, candidate := range candidates {
		fmt.Fprintf(w, "%d: %s\n", i, candidate.Summary())
	}
}

// Choose parses input as a zero-based index into candidates.
// Out-of-range and non-integer input is rejected, never clamped.
func Choose(candidates []types.LocationCandidate, input string) (types.LocationCandidate, error) {
	if len(candidates) == 0 {
		return types.LocationCandidate{}, ErrNoCandidates
	}

	trimmed := strings.TrimSpace(input)
	index, err := strconv.Atoi(trimmed)
	if err != nil {
		return types.LocationCandidate{}, &InputError{Input: trimmed, Reason: "not an integer"}
	}

	if index < 0 || index >= len(candidates) {
		return types.LocationCandidate{}, &InputError{
			Input:  trimmed,
			Reason: fmt.Sprintf("must be between 0 and %d", len(candidates)-1),
		}
	}

	return candidates[index], nil
}
