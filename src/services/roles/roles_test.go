package roles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, "AI ML Specialist", Lookup(0))
	assert.Equal(t, "Software Developer", Lookup(13))
	assert.Equal(t, "Technical Writer", Lookup(15))
	assert.Equal(t, Unknown, Lookup(16))
	assert.Equal(t, Unknown, Lookup(-1))
}

func TestAll_SixteenOrderedEntries(t *testing.T) {
	all := All()
	assert.Len(t, all, 16)
	for i, r := range all {
		assert.Equal(t, i, r.ID)
		assert.NotEqual(t, Unknown, r.Name)
		assert.True(t, Known(r.ID))
	}
}

func TestFeatured_ReturnsCopy(t *testing.T) {
	f := Featured()
	assert.Len(t, f, 9)
	f[0] = "changed"
	assert.Equal(t, "AI/ML Specialist", Featured()[0])
}
