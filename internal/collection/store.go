package collection

import (
	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/domain"
)

// Options configures a Store. Zero values fall back to defaults.
type Options struct {
	Clock      clock.Clock
	ShortNames map[string]string
	Language   language.Tag // collation language for category names
	NewID      func() string
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.NewRealClock()
	}
	if o.ShortNames == nil {
		o.ShortNames = DefaultShortNames
	}
	if o.Language == language.Und {
		o.Language = language.TraditionalChinese
	}
	if o.NewID == nil {
		o.NewID = uuid.NewString
	}
	return o
}

type itemKey struct {
	title  string
	county string
}

// Store holds the collected items of one profile in insertion order.
// Unknown ids are ignored by every operation. It is not safe for concurrent use.
type Store struct {
	opts  Options
	items []*domain.CollectionItem
	byID  map[string]*domain.CollectionItem
	byKey map[itemKey]*domain.CollectionItem
}

// NewStore creates an empty store
func NewStore(opts Options) *Store {
	return &Store{
		opts:  opts.withDefaults(),
		byID:  make(map[string]*domain.CollectionItem),
		byKey: make(map[itemKey]*domain.CollectionItem),
	}
}

// Restore rebuilds a store from persisted items.
// Duplicate (title, county) pairs keep the first record; broken fields are repaired.
func Restore(items []domain.CollectionItem, opts Options) *Store {
	s := NewStore(opts)
	for _, item := range items {
		key := itemKey{item.Title, item.County}
		if _, dup := s.byKey[key]; dup {
			continue
		}
		restored := item
		if restored.ID == "" || s.byID[restored.ID] != nil {
			restored.ID = s.opts.NewID()
		}
		if restored.CheckInCount < 1 {
			restored.CheckInCount = 1
		}
		if !restored.Mark.IsValid() {
			restored.Mark = domain.MarkNone
		}
		if restored.LastCollectedAt.Before(restored.FirstCollectedAt) {
			restored.LastCollectedAt = restored.FirstCollectedAt
		}
		s.insert(&restored)
	}
	return s
}

func (s *Store) insert(item *domain.CollectionItem) {
	s.items = append(s.items, item)
	s.byID[item.ID] = item
	s.byKey[itemKey{item.Title, item.County}] = item
}

// Collect records one visit to a destination.
// A known (title, county) pair is checked in again: its counter and LastCollectedAt move,
// every other field keeps its first value.
func (s *Store) Collect(entry domain.CollectionEntry) domain.CollectResult {
	now := s.opts.Clock.Now()

	if existing, ok := s.byKey[itemKey{entry.Title, entry.County}]; ok {
		existing.CheckInCount++
		existing.LastCollectedAt = now
		return domain.CollectResult{Item: *existing, Created: false}
	}

	item := &domain.CollectionItem{
		ID:               s.opts.NewID(),
		Title:            entry.Title,
		County:           entry.County,
		Category:         entry.Category,
		Description:      entry.Description,
		Duration:         entry.Duration,
		CheckInCount:     1,
		FirstCollectedAt: now,
		LastCollectedAt:  now,
		Mark:             domain.MarkNone,
	}
	s.insert(item)
	return domain.CollectResult{Item: *item, Created: true}
}

// CollectMany applies Collect to each entry in order
func (s *Store) CollectMany(entries []domain.CollectionEntry) []domain.CollectResult {
	results := make([]domain.CollectResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, s.Collect(entry))
	}
	return results
}

// ToggleFavorite flips the favorite mark of an item; marking it clears the blacklist.
// Returns the updated item and whether it exists.
func (s *Store) ToggleFavorite(id string) (domain.CollectionItem, bool) {
	return s.toggle(id, domain.MarkFavorite)
}

// ToggleBlacklist flips the blacklist mark of an item; marking it clears the favorite.
func (s *Store) ToggleBlacklist(id string) (domain.CollectionItem, bool) {
	return s.toggle(id, domain.MarkBlacklisted)
}

func (s *Store) toggle(id string, mark domain.ItemMark) (domain.CollectionItem, bool) {
	item, ok := s.byID[id]
	if !ok {
		return domain.CollectionItem{}, false
	}
	if item.Mark == mark {
		item.Mark = domain.MarkNone
	} else {
		item.Mark = mark
	}
	return *item, true
}

// Unmark removes an item from the favorites or blacklist view without deleting it
func (s *Store) Unmark(id string) (domain.CollectionItem, bool) {
	item, ok := s.byID[id]
	if !ok {
		return domain.CollectionItem{}, false
	}
	item.Mark = domain.MarkNone
	return *item, true
}

// Get returns a copy of the item with id
func (s *Store) Get(id string) (domain.CollectionItem, bool) {
	item, ok := s.byID[id]
	if !ok {
		return domain.CollectionItem{}, false
	}
	return *item, true
}

// Items returns copies of all items in insertion order
func (s *Store) Items() []domain.CollectionItem {
	return s.filter(func(domain.CollectionItem) bool { return true })
}

// Snapshot returns the items to persist; Restore(Snapshot(), opts) rebuilds the store
func (s *Store) Snapshot() []domain.CollectionItem {
	return s.Items()
}

// Favorites returns the favorite items in insertion order
func (s *Store) Favorites() []domain.CollectionItem {
	return s.filter(domain.CollectionItem.IsFavorite)
}

// Blacklisted returns the blacklisted items in insertion order
func (s *Store) Blacklisted() []domain.CollectionItem {
	return s.filter(domain.CollectionItem.IsBlacklisted)
}

func (s *Store) filter(keep func(domain.CollectionItem) bool) []domain.CollectionItem {
	out := make([]domain.CollectionItem, 0, len(s.items))
	for _, item := range s.items {
		if keep(*item) {
			out = append(out, *item)
		}
	}
	return out
}

// TotalCount returns the number of distinct items
func (s *Store) TotalCount() int {
	return len(s.items)
}

// TotalCheckIns returns the sum of check-in counters
func (s *Store) TotalCheckIns() int {
	total := 0
	for _, item := range s.items {
		total += item.CheckInCount
	}
	return total
}

// Totals summarizes the collection
func (s *Store) Totals() domain.CollectionTotals {
	counties := make(map[string]struct{})
	totals := domain.CollectionTotals{Items: len(s.items)}
	for _, item := range s.items {
		totals.CheckIns += item.CheckInCount
		counties[item.County] = struct{}{}
		switch item.Mark {
		case domain.MarkFavorite:
			totals.Favorites++
		case domain.MarkBlacklisted:
			totals.Blacklisted++
		}
	}
	totals.Counties = len(counties)
	return totals
}
