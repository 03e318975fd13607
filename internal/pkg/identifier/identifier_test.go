package identifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Numeric(t *testing.T) {
	ref := Parse("42")
	assert.True(t, ref.ByID())
	assert.Equal(t, int64(42), ref.ID)
	assert.Empty(t, ref.Slug)
}

func TestParse_Slug(t *testing.T) {
	ref := Parse("faculty-of-engineering")
	assert.False(t, ref.ByID())
	assert.Equal(t, "faculty-of-engineering", ref.Slug)
}

func TestParse_SlugStartingWithDigits(t *testing.T) {
	// Mixed content is a slug even when it starts with digits.
	ref := Parse("42-things-about-campus")
	assert.False(t, ref.ByID())
	assert.Equal(t, "42-things-about-campus", ref.Slug)
}

func TestParse_OverflowFallsBackToSlug(t *testing.T) {
	ref := Parse("99999999999999999999999999")
	assert.False(t, ref.ByID())
	assert.Equal(t, "99999999999999999999999999", ref.Slug)
}

func TestParse_Empty(t *testing.T) {
	ref := Parse("")
	assert.False(t, ref.ByID())
	assert.Empty(t, ref.Slug)
}
