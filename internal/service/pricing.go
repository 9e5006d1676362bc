package service

import (
	"math"
	"time"

	"puntadas/internal/models"
)

// ApplicablePromotion picks the promotion that applies to a gallery item.
// Item-scoped promotions win over store-wide ones; within a scope the first
// match in list order is taken. Inactive promotions and promotions outside
// their validity window never match.
func ApplicablePromotion(itemID uint, promos []models.Promotion, now time.Time) *models.Promotion {
	var storeWide *models.Promotion
	for i := range promos {
		p := &promos[i]
		if !p.IsActive || !withinWindow(p, now) {
			continue
		}
		if p.GalleryItemID != nil {
			if *p.GalleryItemID == itemID {
				return p
			}
			continue
		}
		if storeWide == nil {
			storeWide = p
		}
	}
	return storeWide
}

// EffectivePrice applies the matching promotion's percentage discount to a
// base price in minor currency units, rounding to the nearest unit.
func EffectivePrice(basePrice int64, itemID uint, promos []models.Promotion, now time.Time) int64 {
	p := ApplicablePromotion(itemID, promos, now)
	if p == nil {
		return basePrice
	}
	discounted := float64(basePrice) * (1 - p.DiscountPercentage/100)
	return int64(math.Round(discounted))
}

func withinWindow(p *models.Promotion, now time.Time) bool {
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return false
	}
	if p.ValidUntil != nil && now.After(*p.ValidUntil) {
		return false
	}
	return true
}
