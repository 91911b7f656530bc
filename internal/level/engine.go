package level

import (
	"math"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/utils"
)

// Rules is the static configuration injected into an Engine
type Rules struct {
	Tiers      []domain.LevelTier
	DailyLogin domain.DailyLoginRules
}

// DefaultRules returns the built-in tier table and daily login bonuses
func DefaultRules() Rules {
	milestones := make([]int, len(DefaultMilestones))
	copy(milestones, DefaultMilestones)
	tiers := make([]domain.LevelTier, len(DefaultTiers))
	copy(tiers, DefaultTiers)

	return Rules{
		Tiers: tiers,
		DailyLogin: domain.DailyLoginRules{
			BaseBonus:      DefaultLoginBonus,
			MilestoneBonus: DefaultMilestoneBonus,
			Milestones:     milestones,
		},
	}
}

// Engine holds the experience state of one profile.
// It is not safe for concurrent use.
type Engine struct {
	rules Rules
	clock clock.Clock
	state domain.LevelState
}

// NewEngine creates an engine starting at initialXP
func NewEngine(initialXP int64, rules Rules, clk clock.Clock) *Engine {
	return Restore(domain.LevelState{TotalXP: initialXP}, rules, clk)
}

// Restore creates an engine from a persisted state
func Restore(state domain.LevelState, rules Rules, clk clock.Clock) *Engine {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	if state.TotalXP < 0 {
		state.TotalXP = 0
	}
	if state.StreakCount < 0 {
		state.StreakCount = 0
	}
	return &Engine{rules: rules, clock: clk, state: state}
}

// State returns a copy of the persisted state
func (e *Engine) State() domain.LevelState {
	return e.state
}

// TotalXP returns the lifetime XP
func (e *Engine) TotalXP() int64 {
	return e.state.TotalXP
}

// Level returns the current level
func (e *Engine) Level() int {
	return LevelFromXP(e.state.TotalXP)
}

// Tier returns the tier of the current level
func (e *Engine) Tier() domain.LevelTier {
	return TierFor(e.Level(), e.rules.Tiers)
}

// Progress returns the display figures for the current XP
func (e *Engine) Progress() domain.LevelProgress {
	return ProgressFor(e.state.TotalXP, e.rules.Tiers)
}

// GrantXP adds amount to the lifetime XP. Non-positive amounts change nothing,
// and the total saturates at math.MaxInt64 instead of wrapping.
func (e *Engine) GrantXP(amount int64) domain.GrantResult {
	oldLevel := e.Level()
	oldTier := TierFor(oldLevel, e.rules.Tiers)

	if amount < 0 {
		amount = 0
	}
	if headroom := math.MaxInt64 - e.state.TotalXP; amount > headroom {
		amount = headroom
	}
	e.state.TotalXP += amount

	newLevel := e.Level()
	newTier := TierFor(newLevel, e.rules.Tiers)

	return domain.GrantResult{
		XPGained:    amount,
		TotalXP:     e.state.TotalXP,
		OldLevel:    oldLevel,
		NewLevel:    newLevel,
		LeveledUp:   newLevel > oldLevel,
		OldTier:     oldTier.Name,
		NewTier:     newTier.Name,
		TierChanged: oldTier.Name != newTier.Name,
	}
}

// ProgressFor computes level, tier and progress-to-next-level for totalXP
func ProgressFor(totalXP int64, tiers []domain.LevelTier) domain.LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level, floor := levelAndFloor(totalXP)

	progress := domain.LevelProgress{
		TotalXP:     totalXP,
		Level:       level,
		Tier:        TierFor(level, tiers),
		XPIntoLevel: totalXP - floor,
	}

	if level >= MaxLevel {
		progress.MaxedOut = true
		progress.ProgressPercent = 100
		return progress
	}

	progress.XPForNextLevel = XPCost(level + 1)
	progress.ProgressPercent = utils.Clamp(100*float64(progress.XPIntoLevel)/float64(progress.XPForNextLevel), 0, 100)
	return progress
}
