package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestField(t *testing.T) {
	known := Known(42)
	assert.True(t, known.Known)
	assert.Equal(t, 42, known.Value)
	assert.Equal(t, 42, known.Or(7))

	unknown := Unknown[int]()
	assert.False(t, unknown.Known)
	assert.Equal(t, 7, unknown.Or(7))
}

func TestCanonicalFields_Merge(t *testing.T) {
	base := CanonicalFields{
		FullName: Known("Hassan"),
		Nights:   Known(2),
	}
	later := CanonicalFields{
		Nights:  Known(3),
		Arrival: Known("15/03/2026"),
	}

	merged := base.Merge(later)

	// Unknown attributes never overwrite known ones.
	assert.Equal(t, "Hassan", merged.FullName.Value)
	// Known attributes from the later set win.
	assert.Equal(t, 3, merged.Nights.Value)
	assert.Equal(t, "15/03/2026", merged.Arrival.Value)
}

func TestCanonicalFields_IsEmpty(t *testing.T) {
	assert.True(t, CanonicalFields{}.IsEmpty())
	assert.False(t, CanonicalFields{Persons: Known(1)}.IsEmpty())
	assert.False(t, CanonicalFields{Total: Known(decimal.NewFromInt(1))}.IsEmpty())
}
