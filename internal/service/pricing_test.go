package service

import (
	"testing"
	"time"

	"puntadas/internal/models"

	"github.com/stretchr/testify/assert"
)

func uintPtr(v uint) *uint { return &v }

func TestEffectivePriceStoreWide(t *testing.T) {
	promos := []models.Promotion{
		{DiscountPercentage: 20, GalleryItemID: nil, IsActive: true},
	}
	assert.Equal(t, int64(8000), EffectivePrice(10000, 1, promos, time.Now()))
}

func TestEffectivePriceNoMatch(t *testing.T) {
	assert.Equal(t, int64(10000), EffectivePrice(10000, 1, nil, time.Now()))

	inactive := []models.Promotion{{DiscountPercentage: 20, IsActive: false}}
	assert.Equal(t, int64(10000), EffectivePrice(10000, 1, inactive, time.Now()))

	otherItem := []models.Promotion{{DiscountPercentage: 20, GalleryItemID: uintPtr(99), IsActive: true}}
	assert.Equal(t, int64(10000), EffectivePrice(10000, 1, otherItem, time.Now()))
}

func TestEffectivePriceItemScopedWins(t *testing.T) {
	promos := []models.Promotion{
		{DiscountPercentage: 10, GalleryItemID: nil, IsActive: true},
		{DiscountPercentage: 50, GalleryItemID: uintPtr(7), IsActive: true},
	}
	// Item 7 gets the specific 50% even though the store-wide promo is
	// listed first.
	assert.Equal(t, int64(5000), EffectivePrice(10000, 7, promos, time.Now()))
	// Other items fall back to the store-wide 10%.
	assert.Equal(t, int64(9000), EffectivePrice(10000, 8, promos, time.Now()))
}

func TestEffectivePriceValidityWindow(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	expired := []models.Promotion{
		{DiscountPercentage: 20, IsActive: true, ValidUntil: &past},
	}
	assert.Equal(t, int64(10000), EffectivePrice(10000, 1, expired, now))

	future := now.Add(48 * time.Hour)
	notYet := []models.Promotion{
		{DiscountPercentage: 20, IsActive: true, ValidFrom: &future},
	}
	assert.Equal(t, int64(10000), EffectivePrice(10000, 1, notYet, now))

	open := []models.Promotion{
		{DiscountPercentage: 20, IsActive: true, ValidFrom: &past, ValidUntil: &future},
	}
	assert.Equal(t, int64(8000), EffectivePrice(10000, 1, open, now))
}

func TestEffectivePriceRounds(t *testing.T) {
	promos := []models.Promotion{{DiscountPercentage: 33.33, IsActive: true}}
	// 101 * 0.6667 = 67.3367 → 67
	assert.Equal(t, int64(67), EffectivePrice(101, 1, promos, time.Now()))
}
