package level

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaTrip_Go/internal/clock"
	"github.com/osse101/GachaTrip_Go/internal/domain"
)

func newTestEngine(xp int64) *Engine {
	return NewEngine(xp, DefaultRules(), clock.NewSimulatedClock(time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)))
}

func TestEngine_GrantZeroStaysAtLevelOne(t *testing.T) {
	e := newTestEngine(0)

	res := e.GrantXP(0)

	assert.Equal(t, 1, e.Level())
	assert.Equal(t, int64(0), res.XPGained)
	assert.False(t, res.LeveledUp)
}

func TestEngine_GrantExactThreshold(t *testing.T) {
	e := newTestEngine(0)

	res := e.GrantXP(CumulativeXP(10))

	assert.Equal(t, 10, e.Level())
	assert.Equal(t, 1, res.OldLevel)
	assert.Equal(t, 10, res.NewLevel)
	assert.True(t, res.LeveledUp)
	assert.True(t, res.TierChanged)
	assert.Equal(t, "Day Tripper", res.OldTier)
	assert.Equal(t, "Wanderer", res.NewTier)
}

func TestEngine_GrantIsAdditive(t *testing.T) {
	e := newTestEngine(100)

	e.GrantXP(10)
	res := e.GrantXP(5)

	assert.Equal(t, int64(115), e.TotalXP())
	assert.Equal(t, int64(115), res.TotalXP)
	assert.Equal(t, 2, res.NewLevel)
	assert.True(t, res.LeveledUp)
	assert.False(t, res.TierChanged)
}

func TestEngine_NegativeGrantIsIgnored(t *testing.T) {
	e := newTestEngine(500)

	res := e.GrantXP(-200)

	assert.Equal(t, int64(500), e.TotalXP())
	assert.Equal(t, int64(0), res.XPGained)
	assert.Equal(t, res.OldLevel, res.NewLevel)
}

func TestEngine_RestoreSanitizes(t *testing.T) {
	e := Restore(domain.LevelState{TotalXP: -10, StreakCount: -3}, DefaultRules(), nil)

	assert.Equal(t, int64(0), e.TotalXP())
	assert.Equal(t, 0, e.State().StreakCount)
	assert.Equal(t, 1, e.Level())
}

func TestEngine_MaxedOut(t *testing.T) {
	e := newTestEngine(CumulativeXP(MaxLevel) + 12345)

	p := e.Progress()

	assert.Equal(t, MaxLevel, p.Level)
	assert.True(t, p.MaxedOut)
	assert.Equal(t, int64(0), p.XPForNextLevel)
	assert.Equal(t, float64(100), p.ProgressPercent)
	assert.Equal(t, int64(12345), p.XPIntoLevel)
	assert.Equal(t, "Mythic Nomad", e.Tier().Name)

	res := e.GrantXP(1_000_000)
	assert.False(t, res.LeveledUp, "XP past the cap has no effect on level")
}

func TestEngine_GrantSaturatesAtMaxTotal(t *testing.T) {
	e := newTestEngine(CumulativeXP(MaxLevel))

	res := e.GrantXP(math.MaxInt64)

	assert.Equal(t, MaxLevel, e.Level())
	assert.Equal(t, int64(math.MaxInt64), e.TotalXP())
	assert.Equal(t, int64(math.MaxInt64)-CumulativeXP(MaxLevel), res.XPGained)
	assert.Equal(t, MaxLevel, res.NewLevel)
	assert.False(t, res.LeveledUp)

	res = e.GrantXP(1)
	assert.Equal(t, int64(0), res.XPGained)
	assert.Equal(t, int64(math.MaxInt64), e.TotalXP())
	assert.Equal(t, MaxLevel, e.Level())
}

func TestProgressFor(t *testing.T) {
	t.Run("start of curve", func(t *testing.T) {
		p := ProgressFor(0, DefaultTiers)
		assert.Equal(t, 1, p.Level)
		assert.Equal(t, int64(0), p.XPIntoLevel)
		assert.Equal(t, int64(115), p.XPForNextLevel)
		assert.Equal(t, float64(0), p.ProgressPercent)
		assert.False(t, p.MaxedOut)
	})

	t.Run("midway through level 2", func(t *testing.T) {
		p := ProgressFor(115+98, DefaultTiers)
		assert.Equal(t, 2, p.Level)
		assert.Equal(t, int64(98), p.XPIntoLevel)
		assert.Equal(t, int64(196), p.XPForNextLevel)
		assert.InDelta(t, 50.0, p.ProgressPercent, 0.001)
	})

	t.Run("negative XP reads as zero", func(t *testing.T) {
		p := ProgressFor(-1, DefaultTiers)
		assert.Equal(t, int64(0), p.TotalXP)
		assert.Equal(t, 1, p.Level)
	})

	t.Run("percent stays within bounds", func(t *testing.T) {
		for xp := int64(0); xp < 20000; xp += 37 {
			p := ProgressFor(xp, DefaultTiers)
			require.GreaterOrEqual(t, p.ProgressPercent, 0.0)
			require.Less(t, p.ProgressPercent, 100.0)
			require.Equal(t, xp-CumulativeXP(p.Level), p.XPIntoLevel)
		}
	})
}

func TestDefaultRules_ReturnsCopies(t *testing.T) {
	r := DefaultRules()
	r.Tiers[0].Name = "changed"
	r.DailyLogin.Milestones[0] = 1

	assert.Equal(t, "Day Tripper", DefaultTiers[0].Name)
	assert.Equal(t, 7, DefaultMilestones[0])
}
