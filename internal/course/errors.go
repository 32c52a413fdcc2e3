package course

import (
	"errors"
	"fmt"
	"strings"
)

// Lookup failures. A missing hole or an empty tier is never silently
// substituted — fairness depends on both sides failing loudly.
var (
	ErrUnknownHole = errors.New("unknown hole id")
	ErrEmptyTier   = errors.New("no holes in tier")
)

// LoadError aggregates everything wrong with a course pack. Loading never
// fails fast on the first problem: operators fix a broken pack in one pass.
type LoadError struct {
	// Validation holds schema violations, one message per field problem.
	Validation []string
	// Consistency holds manifest/file disagreements: holeId or tier
	// mismatches, missing referenced files, final count off.
	Consistency []string
}

func (e *LoadError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "course load failed: %d validation error(s), %d consistency error(s)",
		len(e.Validation), len(e.Consistency))
	for _, msg := range e.Validation {
		sb.WriteString("\n  validation: ")
		sb.WriteString(msg)
	}
	for _, msg := range e.Consistency {
		sb.WriteString("\n  consistency: ")
		sb.WriteString(msg)
	}
	return sb.String()
}

func (e *LoadError) empty() bool {
	return len(e.Validation) == 0 && len(e.Consistency) == 0
}
