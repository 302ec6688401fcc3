package domain

import "fmt"

// Revision selects which historical annotation behaviour to reproduce.
type Revision int

const (
	// RevisionLegacy stamps every line with the nil identifier and keeps blank lines.
	RevisionLegacy Revision = 1

	// RevisionFreshID generates a fresh identifier per line and keeps blank lines.
	RevisionFreshID Revision = 2

	// RevisionCurrent generates a fresh identifier per line and skips blank lines.
	RevisionCurrent Revision = 3
)

// DefaultRevision is the revision used when none is configured.
const DefaultRevision = RevisionCurrent

// Validate returns ErrInvalidConfig if r is not a known revision.
func (r Revision) Validate() error {
	if r < RevisionLegacy || r > RevisionCurrent {
		return fmt.Errorf("%w: unknown revision %d", ErrInvalidConfig, int(r))
	}
	return nil
}

// SkipsBlank reports whether blank lines are dropped under r.
func (r Revision) SkipsBlank() bool {
	return r >= RevisionCurrent
}

// FreshIDs reports whether r generates a new identifier per line.
func (r Revision) FreshIDs() bool {
	return r >= RevisionFreshID
}

// Qualifies reports whether line produces a record under r.
func (r Revision) Qualifies(line string) bool {
	return !r.SkipsBlank() || !IsBlank(line)
}

// String returns a short name for r.
func (r Revision) String() string {
	switch r {
	case RevisionLegacy:
		return "legacy"
	case RevisionFreshID:
		return "fresh-id"
	case RevisionCurrent:
		return "current"
	default:
		return fmt.Sprintf("revision(%d)", int(r))
	}
}
