package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevision_String(t *testing.T) {
	assert.Equal(t, "legacy", RevisionLegacy.String())
	assert.Equal(t, "fresh-id", RevisionFreshID.String())
	assert.Equal(t, "current", RevisionCurrent.String())
	assert.Equal(t, "revision(7)", Revision(7).String())
	assert.Equal(t, RevisionCurrent, DefaultRevision)
}
