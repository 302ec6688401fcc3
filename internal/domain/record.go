package domain

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Record is a single annotated input line.
type Record struct {
	id           uuid.UUID
	text         string
	capitalCount int
}

// NewRecord builds a Record for line, counting its uppercase letters.
func NewRecord(id uuid.UUID, line string) Record {
	return Record{
		id:           id,
		text:         line,
		capitalCount: CountCapitals(line),
	}
}

// ID returns the record identifier.
func (r Record) ID() uuid.UUID { return r.id }

// Text returns the original line text.
func (r Record) Text() string { return r.text }

// CapitalCount returns the number of uppercase letters in the line.
func (r Record) CapitalCount() int { return r.capitalCount }

// String renders the record as "{id} - {text}[{count}]".
func (r Record) String() string {
	return fmt.Sprintf("%s - %s[%d]", r.id, r.text, r.capitalCount)
}

// CountCapitals returns the number of runes in s classified as uppercase.
func CountCapitals(s string) int {
	n := 0
	for _, c := range s {
		if unicode.IsUpper(c) {
			n++
		}
	}
	return n
}

// IsBlank reports whether line is empty or consists only of whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
