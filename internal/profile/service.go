// Package profile persists one player's level, collection and item box
// through a storage.KV and is the entry point used by the CLI.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"

	"github.com/osse101/GachaTrip_Go/internal/achievement"
	"github.com/osse101/GachaTrip_Go/internal/catalog"
	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/collection"
	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/event"
	"github.com/osse101/GachaTrip_Go/internal/gacha"
	"github.com/osse101/GachaTrip_Go/internal/itembox"
	"github.com/osse101/GachaTrip_Go/internal/level"
	"github.com/osse101/GachaTrip_Go/internal/logger"
	"github.com/osse101/GachaTrip_Go/internal/storage"
	"github.com/osse101/GachaTrip_Go/internal/validation"
)

// Service defines the profile operations
type Service interface {
	ID() string

	// Collection
	Collect(ctx context.Context, entry domain.CollectionEntry) (domain.CollectResult, domain.GrantResult, error)
	CollectMany(ctx context.Context, entries []domain.CollectionEntry) ([]domain.CollectResult, domain.GrantResult, error)
	Pull(ctx context.Context, n int) (*PullResult, error)
	ToggleFavorite(ctx context.Context, id string) (domain.CollectionItem, bool, error)
	ToggleBlacklist(ctx context.Context, id string) (domain.CollectionItem, bool, error)
	Unmark(ctx context.Context, id string) (domain.CollectionItem, bool, error)

	// Level
	GrantXP(ctx context.Context, amount int64, source string) (domain.GrantResult, error)
	ClaimDailyLogin(ctx context.Context) (domain.DailyLoginResult, error)

	// Item box
	AddBoxItem(ctx context.Context, name, kind string) (domain.BoxItem, error)
	RedeemBoxItem(ctx context.Context, id string) (domain.BoxItem, bool, error)
	SweepExpired(ctx context.Context) (int, error)

	// Queries
	Level() domain.LevelProgress
	Streak() int
	Items() []domain.CollectionItem
	Grouped() []domain.CountyData
	Favorites() []domain.CollectionItem
	Blacklisted() []domain.CollectionItem
	Search(query string, limit int) []domain.CollectionItem
	Totals() domain.CollectionTotals
	Achievements() []domain.Achievement
	BoxItems() []domain.BoxItem
	Odds() map[domain.Rarity]float64
}

// Options configures a profile service
type Options struct {
	ProfileID    string
	Catalog      *catalog.Catalog // nil uses catalog.Default()
	Clock        clock.Clock      // nil uses the real clock
	Language     language.Tag     // category collation; zero value uses Traditional Chinese
	ItemBoxTTL   time.Duration
	XPPerNewItem int64
	XPPerCheckIn int64
	Bus          event.Bus      // optional
	Random       func() float64 // gacha rolls; nil uses math/rand
}

// PullResult is the outcome of a gacha pull
type PullResult struct {
	Destinations []domain.Destination  `json:"destinations"`
	Results      []domain.CollectResult `json:"results"`
	Grant        domain.GrantResult     `json:"grant"`
}

// service implements the Service interface.
// All mutations hold mu and write the touched snapshot before returning.
type service struct {
	mu     sync.Mutex
	id     string
	kv     storage.KV
	opts   Options
	engine *level.Engine
	store  *collection.Store
	box    *itembox.Box
	puller *gacha.Puller
}

// Open loads the saved state of opts.ProfileID from kv.
// Missing or unreadable snapshots start from defaults; backend errors are returned.
func Open(ctx context.Context, kv storage.KV, opts Options) (Service, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(opts.ProfileID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgProfileIDRequired)
	}
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Clock == nil {
		opts.Clock = clock.NewRealClock()
	}

	puller, err := gacha.NewPuller(opts.Catalog.GachaPool, opts.Random)
	if err != nil {
		return nil, err
	}

	levelState, _, err := loadSnapshot[domain.LevelState](ctx, kv, storageKey(opts.ProfileID, KeySuffixLevel))
	if err != nil {
		return nil, err
	}
	items, _, err := loadSnapshot[[]domain.CollectionItem](ctx, kv, storageKey(opts.ProfileID, KeySuffixCollection))
	if err != nil {
		return nil, err
	}
	boxItems, _, err := loadSnapshot[[]domain.BoxItem](ctx, kv, storageKey(opts.ProfileID, KeySuffixItemBox))
	if err != nil {
		return nil, err
	}

	s := &service{
		id:     opts.ProfileID,
		kv:     kv,
		opts:   opts,
		engine: level.Restore(levelState, opts.Catalog.LevelRules(), opts.Clock),
		store: collection.Restore(items, collection.Options{
			Clock:      opts.Clock,
			ShortNames: opts.Catalog.CountyShortNames,
			Language:   opts.Language,
		}),
		box:    itembox.Restore(boxItems, opts.ItemBoxTTL, opts.Clock),
		puller: puller,
	}

	log.Info(LogMsgProfileOpened,
		"profile_id", s.id,
		"level", s.engine.Level(),
		"items", s.store.TotalCount(),
		"box_items", len(boxItems))
	return s, nil
}

func (s *service) ID() string {
	return s.id
}

// --- collection ---

func (s *service) Collect(ctx context.Context, entry domain.CollectionEntry) (domain.CollectResult, domain.GrantResult, error) {
	results, grant, err := s.CollectMany(ctx, []domain.CollectionEntry{entry})
	if err != nil {
		return domain.CollectResult{}, grant, err
	}
	return results[0], grant, nil
}

// CollectMany validates every entry first, then collects them in order
func (s *service) CollectMany(ctx context.Context, entries []domain.CollectionEntry) ([]domain.CollectResult, domain.GrantResult, error) {
	for i, entry := range entries {
		if err := validation.GetValidator().ValidateStruct(entry); err != nil {
			return nil, domain.GrantResult{}, fmt.Errorf("%w: %s #%d: %s",
				domain.ErrInvalidInput, ErrMsgInvalidEntry, i+1, validation.Summary(err))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	results, grant := s.collectLocked(ctx, entries)
	if err := s.saveCollectionAndLevel(ctx); err != nil {
		return results, grant, err
	}
	return results, grant, nil
}

func (s *service) collectLocked(ctx context.Context, entries []domain.CollectionEntry) ([]domain.CollectResult, domain.GrantResult) {
	log := logger.FromContext(ctx)

	results := s.store.CollectMany(entries)

	var newXP, checkInXP int64
	for _, r := range results {
		if r.Created {
			newXP += s.opts.XPPerNewItem
			log.Info(LogMsgItemCollected, "item_id", r.Item.ID, "title", r.Item.Title, "county", r.Item.County)
		} else {
			checkInXP += s.opts.XPPerCheckIn
			log.Info(LogMsgItemCheckedIn, "item_id", r.Item.ID, "title", r.Item.Title, "check_ins", r.Item.CheckInCount)
		}
		s.publish(ctx, event.ItemCollected, event.ItemCollectedPayloadV1{
			ItemID:       r.Item.ID,
			Title:        r.Item.Title,
			County:       r.Item.County,
			Category:     r.Item.Category,
			Created:      r.Created,
			CheckInCount: r.Item.CheckInCount,
			Timestamp:    r.Item.LastCollectedAt.Unix(),
		})
	}

	grant := s.engine.GrantXP(newXP + checkInXP)
	s.publishGrant(ctx, XPSourceNewItem, newXP, grant)
	s.publishGrant(ctx, XPSourceCheckIn, checkInXP, grant)
	s.publishLevelUp(ctx, grant)
	return results, grant
}

// Pull draws n destinations and collects them
func (s *service) Pull(ctx context.Context, n int) (*PullResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	drawn := s.puller.Pull(n)
	rarities := make(map[string]int)
	for _, d := range drawn {
		rarities[string(d.Rarity)]++
	}
	logger.FromContext(ctx).Info(LogMsgGachaPull, "count", len(drawn), "rarities", rarities)
	s.publish(ctx, event.GachaPullCompleted, event.GachaPullPayloadV1{Count: len(drawn), Rarities: rarities})

	results, grant := s.collectLocked(ctx, gacha.Entries(drawn))
	res := &PullResult{Destinations: drawn, Results: results, Grant: grant}
	if err := s.saveCollectionAndLevel(ctx); err != nil {
		return res, err
	}
	return res, nil
}

func (s *service) ToggleFavorite(ctx context.Context, id string) (domain.CollectionItem, bool, error) {
	return s.mark(ctx, id, s.store.ToggleFavorite)
}

func (s *service) ToggleBlacklist(ctx context.Context, id string) (domain.CollectionItem, bool, error) {
	return s.mark(ctx, id, s.store.ToggleBlacklist)
}

func (s *service) Unmark(ctx context.Context, id string) (domain.CollectionItem, bool, error) {
	return s.mark(ctx, id, s.store.Unmark)
}

// mark applies a mark transition. Unknown ids change nothing and write nothing.
func (s *service) mark(ctx context.Context, id string, apply func(string) (domain.CollectionItem, bool)) (domain.CollectionItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.store.Get(id)
	if !ok {
		return domain.CollectionItem{}, false, nil
	}
	item, _ := apply(id)
	if item.Mark == before.Mark {
		return item, true, nil
	}

	s.publish(ctx, event.ItemMarked, event.ItemMarkedPayloadV1{ItemID: item.ID, Mark: string(item.Mark)})
	return item, true, s.saveCollection(ctx)
}

// --- level ---

func (s *service) GrantXP(ctx context.Context, amount int64, source string) (domain.GrantResult, error) {
	if source == "" {
		source = XPSourceManual
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grant := s.engine.GrantXP(amount)
	if grant.XPGained == 0 {
		return grant, nil
	}
	s.publishGrant(ctx, source, grant.XPGained, grant)
	s.publishLevelUp(ctx, grant)
	return grant, s.saveLevel(ctx)
}

func (s *service) ClaimDailyLogin(ctx context.Context) (domain.DailyLoginResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.engine.ClaimDailyLogin()
	s.publish(ctx, event.DailyLoginClaimed, event.DailyLoginPayloadV1{
		Success:          result.Success,
		Streak:           result.Streak,
		XPGained:         result.XPGained,
		MilestoneReached: result.MilestoneReached,
	})

	if !result.Success {
		log.Info(LogMsgDailyLoginDuplicate, "streak", result.Streak)
		return result, nil
	}

	log.Info(LogMsgDailyLoginClaimed, "streak", result.Streak, "xp", result.XPGained, "milestone", result.MilestoneReached)
	if result.Grant != nil {
		s.publishGrant(ctx, XPSourceDailyLogin, result.XPGained, *result.Grant)
		s.publishLevelUp(ctx, *result.Grant)
	}
	return result, s.saveLevel(ctx)
}

// --- item box ---

func (s *service) AddBoxItem(ctx context.Context, name, kind string) (domain.BoxItem, error) {
	if strings.TrimSpace(name) == "" {
		return domain.BoxItem{}, fmt.Errorf("%w: box item name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.box.Add(name, kind)
	return item, s.saveBox(ctx)
}

func (s *service) RedeemBoxItem(ctx context.Context, id string) (domain.BoxItem, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.box.Redeem(id)
	if !ok {
		return domain.BoxItem{}, false, nil
	}

	logger.FromContext(ctx).Info(LogMsgBoxItemRedeemed, "item_id", item.ID, "name", item.Name, "expires_at", item.ExpiresAt)
	s.publish(ctx, event.BoxItemRedeemed, event.BoxPayloadV1{ItemID: item.ID, Name: item.Name, Count: 1})
	return item, true, s.saveBox(ctx)
}

func (s *service) SweepExpired(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.box.SweepExpired()
	if removed == 0 {
		return 0, nil
	}

	logger.FromContext(ctx).Info(LogMsgBoxSwept, "count", removed)
	s.publish(ctx, event.BoxItemsSwept, event.BoxPayloadV1{Count: removed})
	return removed, s.saveBox(ctx)
}

// --- queries ---

func (s *service) Level() domain.LevelProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.Progress()
}

func (s *service) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine.CurrentStreak()
}

func (s *service) Items() []domain.CollectionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Items()
}

func (s *service) Grouped() []domain.CountyData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.GroupedByCounty()
}

func (s *service) Favorites() []domain.CollectionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Favorites()
}

func (s *service) Blacklisted() []domain.CollectionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Blacklisted()
}

func (s *service) Search(query string, limit int) []domain.CollectionItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Search(query, limit)
}

func (s *service) Totals() domain.CollectionTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Totals()
}

func (s *service) Achievements() []domain.Achievement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return achievement.NewChecker(achievement.Stats{
		Level:  s.engine.Level(),
		Streak: s.engine.CurrentStreak(),
		Totals: s.store.Totals(),
	}).GetAchievements()
}

func (s *service) BoxItems() []domain.BoxItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.box.Items()
}

func (s *service) Odds() map[domain.Rarity]float64 {
	return s.puller.Odds()
}

// --- persistence and events ---

func (s *service) saveLevel(ctx context.Context) error {
	return saveSnapshot(ctx, s.kv, storageKey(s.id, KeySuffixLevel), s.engine.State())
}

func (s *service) saveCollection(ctx context.Context) error {
	return saveSnapshot(ctx, s.kv, storageKey(s.id, KeySuffixCollection), s.store.Snapshot())
}

func (s *service) saveBox(ctx context.Context) error {
	return saveSnapshot(ctx, s.kv, storageKey(s.id, KeySuffixItemBox), s.box.Snapshot())
}

// saveCollectionAndLevel writes both snapshots even if the first write fails
func (s *service) saveCollectionAndLevel(ctx context.Context) error {
	return errors.Join(s.saveCollection(ctx), s.saveLevel(ctx))
}

func (s *service) publish(ctx context.Context, eventType event.Type, payload interface{}) {
	if s.opts.Bus == nil {
		return
	}
	if err := s.opts.Bus.Publish(ctx, event.New(eventType, payload, EventSource)); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "type", eventType, "error", err)
	}
}

func (s *service) publishGrant(ctx context.Context, source string, amount int64, grant domain.GrantResult) {
	if amount <= 0 {
		return
	}
	s.publish(ctx, event.XPGranted, event.XPGrantedPayloadV1{Amount: amount, TotalXP: grant.TotalXP, Source: source})
}

func (s *service) publishLevelUp(ctx context.Context, grant domain.GrantResult) {
	if !grant.LeveledUp {
		return
	}
	logger.FromContext(ctx).Info(LogMsgLevelUp,
		"old_level", grant.OldLevel,
		"new_level", grant.NewLevel,
		"tier", grant.NewTier)
	s.publish(ctx, event.LevelUp, event.LevelUpPayloadV1{
		OldLevel:    grant.OldLevel,
		NewLevel:    grant.NewLevel,
		NewTier:     grant.NewTier,
		TierChanged: grant.TierChanged,
	})
}
