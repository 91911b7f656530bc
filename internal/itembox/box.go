package itembox

import (
	"time"

	"github.com/google/uuid"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/domain"
)

// DefaultRedeemTTL is how long a redeemed item stays visible before it is swept
const DefaultRedeemTTL = 10 * time.Minute

// Box holds the reward items of one profile.
// Expiry is checked on read and by SweepExpired; there are no timers.
type Box struct {
	clock clock.Clock
	ttl   time.Duration
	newID func() string
	items []domain.BoxItem
}

// NewBox creates an empty box. ttl <= 0 uses DefaultRedeemTTL.
func NewBox(ttl time.Duration, clk clock.Clock) *Box {
	return Restore(nil, ttl, clk)
}

// Restore creates a box from persisted items
func Restore(items []domain.BoxItem, ttl time.Duration, clk clock.Clock) *Box {
	if ttl <= 0 {
		ttl = DefaultRedeemTTL
	}
	if clk == nil {
		clk = clock.NewRealClock()
	}
	restored := make([]domain.BoxItem, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		restored = append(restored, item)
	}
	return &Box{clock: clk, ttl: ttl, newID: uuid.NewString, items: restored}
}

// Add puts a new unredeemed item in the box
func (b *Box) Add(name, kind string) domain.BoxItem {
	item := domain.BoxItem{
		ID:      b.newID(),
		Name:    name,
		Kind:    kind,
		AddedAt: b.clock.Now(),
	}
	b.items = append(b.items, item)
	return item
}

// Redeem marks an item as used and starts its expiry countdown.
// Unknown, already redeemed or expired items are left alone and reported as false.
func (b *Box) Redeem(id string) (domain.BoxItem, bool) {
	now := b.clock.Now()
	for i := range b.items {
		item := &b.items[i]
		if item.ID != id {
			continue
		}
		if item.Redeemed() || item.Expired(now) {
			return *item, false
		}
		expires := now.Add(b.ttl)
		item.RedeemedAt = &now
		item.ExpiresAt = &expires
		return *item, true
	}
	return domain.BoxItem{}, false
}

// Items returns the items that have not expired yet
func (b *Box) Items() []domain.BoxItem {
	now := b.clock.Now()
	out := make([]domain.BoxItem, 0, len(b.items))
	for _, item := range b.items {
		if !item.Expired(now) {
			out = append(out, item)
		}
	}
	return out
}

// SweepExpired drops expired items and returns how many were removed
func (b *Box) SweepExpired() int {
	kept := b.Items()
	removed := len(b.items) - len(kept)
	b.items = kept
	return removed
}

// Snapshot returns every stored item, including expired ones not yet swept
func (b *Box) Snapshot() []domain.BoxItem {
	out := make([]domain.BoxItem, len(b.items))
	copy(out, b.items)
	return out
}
