package domain

import "time"

// BoxItem is a reward sitting in the user's item box (coupons, tickets).
// Once redeemed it stays visible until ExpiresAt, then it is swept.
type BoxItem struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Kind       string     `json:"kind,omitempty"`
	AddedAt    time.Time  `json:"added_at"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
}

// Redeemed reports whether the item has been used
func (b BoxItem) Redeemed() bool {
	return b.RedeemedAt != nil
}

// Expired reports whether the item should no longer be shown at now
func (b BoxItem) Expired(now time.Time) bool {
	return b.ExpiresAt != nil && !now.Before(*b.ExpiresAt)
}
