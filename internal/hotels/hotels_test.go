package hotels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	list := Catalog()
	require.Len(t, list, 3)

	// Returned slice is a copy.
	list[0].PriceNGN = 1
	fresh, ok := ByID("obudu-cattle-ranch")
	require.True(t, ok)
	assert.Equal(t, float64(207969), fresh.PriceNGN)
}

func TestByID(t *testing.T) {
	h, ok := ByID("shades-of-luxury")
	require.True(t, ok)
	assert.Equal(t, "Ilashe, Lagos", h.Location)

	_, ok = ByID("nope")
	assert.False(t, ok)
}

func TestFilterByPrice(t *testing.T) {
	all := Catalog()

	cheap := FilterByPrice(all, 0, 100000)
	require.Len(t, cheap, 1)
	assert.Equal(t, "obudu-mountain-resort", cheap[0].ID)

	mid := FilterByPrice(all, 100000, 250000)
	require.Len(t, mid, 1)
	assert.Equal(t, "obudu-cattle-ranch", mid[0].ID)

	// Zero max means unbounded.
	assert.Len(t, FilterByPrice(all, 0, 0), 3)
	assert.Len(t, FilterByPrice(all, 200000, 0), 2)
}

func TestOthers(t *testing.T) {
	rest := Others("obudu-cattle-ranch")
	require.Len(t, rest, 2)
	for _, h := range rest {
		assert.NotEqual(t, "obudu-cattle-ranch", h.ID)
	}

	assert.Len(t, Others("unknown"), 3)
}
