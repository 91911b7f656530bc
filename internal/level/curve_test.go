package level

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXPCost(t *testing.T) {
	tests := []struct {
		level    int
		expected int64
	}{
		{-5, 0},
		{0, 0},
		{1, 0},
		{2, 115},
		{3, 196},
		{4, 288},
		{5, 390},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, XPCost(tt.level), "level %d", tt.level)
	}
}

func TestXPCost_MatchesFormula(t *testing.T) {
	for lvl := 2; lvl <= MaxLevel; lvl++ {
		expected := int64(math.Floor(40*math.Pow(float64(lvl), 1.4) + 10))
		assert.Equal(t, expected, XPCost(lvl), "level %d", lvl)
	}
}

func TestCumulativeXP(t *testing.T) {
	assert.Equal(t, int64(0), CumulativeXP(0))
	assert.Equal(t, int64(0), CumulativeXP(1))
	assert.Equal(t, int64(115), CumulativeXP(2))
	assert.Equal(t, int64(115+196), CumulativeXP(3))
	assert.Equal(t, int64(4744), CumulativeXP(10))

	// Iterative definition holds for every level
	running := int64(0)
	for lvl := 2; lvl <= MaxLevel; lvl++ {
		running += XPCost(lvl)
		assert.Equal(t, running, CumulativeXP(lvl), "level %d", lvl)
	}
}

func TestLevelFromXP(t *testing.T) {
	tests := []struct {
		name     string
		xp       int64
		expected int
	}{
		{"zero XP", 0, 1},
		{"negative XP", -100, 1},
		{"just below level 2", 114, 1},
		{"exactly level 2", 115, 2},
		{"between 2 and 3", 200, 2},
		{"exactly level 3", 311, 3},
		{"exactly level 10", 4744, 10},
		{"just below level 10", 4743, 9},
		{"far beyond the cap", math.MaxInt64 / 2, MaxLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LevelFromXP(tt.xp))
		})
	}
}

func TestLevelFromXP_BoundaryExactness(t *testing.T) {
	for lvl := MinLevel; lvl <= MaxLevel; lvl++ {
		threshold := CumulativeXP(lvl)
		assert.Equal(t, lvl, LevelFromXP(threshold), "at threshold of level %d", lvl)
		if lvl > MinLevel {
			assert.Equal(t, lvl-1, LevelFromXP(threshold-1), "one below threshold of level %d", lvl)
		}
	}
}

func TestLevelFromXP_Monotonic(t *testing.T) {
	prev := LevelFromXP(0)
	for xp := int64(0); xp <= CumulativeXP(MaxLevel)+1000; xp += 97 {
		lvl := LevelFromXP(xp)
		assert.GreaterOrEqual(t, lvl, prev, "level decreased at xp %d", xp)
		assert.LessOrEqual(t, lvl, MaxLevel)
		prev = lvl
	}
}

func TestLevelFromXP_CapsAtMax(t *testing.T) {
	maxXP := CumulativeXP(MaxLevel)
	assert.Equal(t, MaxLevel, LevelFromXP(maxXP))
	assert.Equal(t, MaxLevel, LevelFromXP(maxXP+XPCost(MaxLevel+1)*10))
}
