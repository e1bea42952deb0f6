package cache

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ibwangi/tripsearch/internal/models"
)

func TestGenerateKey_Stable(t *testing.T) {
	sc := models.SearchContext{Origin: "LOS", Destination: "ABV", DepartureDate: "2025-02-12", Adults: 1}
	assert.Equal(t, generateKey(sc), generateKey(sc))
	assert.True(t, strings.HasPrefix(generateKey(sc), "offers:"))
}

func TestGenerateKey_DistinguishesSearches(t *testing.T) {
	base := models.SearchContext{Origin: "LOS", Destination: "ABV", DepartureDate: "2025-02-12", Adults: 1}

	other := base
	other.Destination = "PHC"
	assert.NotEqual(t, generateKey(base), generateKey(other))

	ret := "2025-02-16"
	withReturn := base
	withReturn.ReturnDate = &ret
	assert.NotEqual(t, generateKey(base), generateKey(withReturn))

	moreAdults := base
	moreAdults.Adults = 2
	assert.NotEqual(t, generateKey(base), generateKey(moreAdults))
}

func TestGenerateKey_ReturnDatePointerIdentityIrrelevant(t *testing.T) {
	ret1 := "2025-02-16"
	ret2 := "2025-02-16"

	a := models.SearchContext{Origin: "LOS", Destination: "ABV", DepartureDate: "2025-02-12", ReturnDate: &ret1, Adults: 1}
	b := a
	b.ReturnDate = &ret2
	assert.Equal(t, generateKey(a), generateKey(b))
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	sc := models.SearchContext{Origin: "LOS", Destination: "ABV", DepartureDate: "2025-02-12", Adults: 1}

	offers, found := c.Get(ctx, sc)
	assert.False(t, found)
	assert.Nil(t, offers)

	assert.NoError(t, c.Set(ctx, sc, []models.Offer{{ID: "1"}}))
	assert.NoError(t, c.Close())
}
