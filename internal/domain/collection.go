package domain

import "time"

// ItemMark is the favorite/blacklist state of a collected item.
// The two flags are mutually exclusive, so a single value carries both.
type ItemMark string

const (
	MarkNone        ItemMark = ""
	MarkFavorite    ItemMark = "favorite"
	MarkBlacklisted ItemMark = "blacklisted"
)

// IsValid reports whether m is a known mark
func (m ItemMark) IsValid() bool {
	switch m {
	case MarkNone, MarkFavorite, MarkBlacklisted:
		return true
	default:
		return false
	}
}

// CollectionEntry is the input of a collect operation.
// Title and County together identify a destination.
type CollectionEntry struct {
	Title       string `json:"title" validate:"required,notblank,max=200"`
	County      string `json:"county" validate:"required,notblank,max=50"`
	Category    string `json:"category" validate:"max=50"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	Duration    string `json:"duration,omitempty" validate:"max=50"`
}

// CollectionItem is a travel destination a user has collected at least once
type CollectionItem struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	County           string    `json:"county"`
	Category         string    `json:"category"`
	Description      string    `json:"description,omitempty"`
	Duration         string    `json:"duration,omitempty"`
	CheckInCount     int       `json:"check_in_count"`
	FirstCollectedAt time.Time `json:"first_collected_at"`
	LastCollectedAt  time.Time `json:"last_collected_at"`
	Mark             ItemMark  `json:"mark,omitempty"`
}

// IsFavorite reports whether the item is marked as favorite
func (i CollectionItem) IsFavorite() bool {
	return i.Mark == MarkFavorite
}

// IsBlacklisted reports whether the item is blacklisted
func (i CollectionItem) IsBlacklisted() bool {
	return i.Mark == MarkBlacklisted
}

// CollectResult reports what a single collect did
type CollectResult struct {
	Item    CollectionItem `json:"item"`
	Created bool           `json:"created"` // false means an existing item was checked in again
}

// CategoryData groups the items of one category inside a county
type CategoryData struct {
	Name  string           `json:"name"`
	Items []CollectionItem `json:"items"`
	Count int              `json:"count"`
}

// CountyData groups the collection by county for display
type CountyData struct {
	County         string         `json:"county"`
	ShortName      string         `json:"short_name"`
	Categories     []CategoryData `json:"categories"`
	TotalLocations int            `json:"total_locations"`
}

// CollectionTotals summarizes a collection
type CollectionTotals struct {
	Items       int `json:"items"`
	CheckIns    int `json:"check_ins"`
	Counties    int `json:"counties"`
	Favorites   int `json:"favorites"`
	Blacklisted int `json:"blacklisted"`
}
