package level

import (
	"math"
)

// XPCost returns the XP needed to advance from level-1 to level.
// Levels at or below MinLevel cost nothing.
func XPCost(level int) int64 {
	if level <= MinLevel {
		return 0
	}
	return int64(math.Floor(CostCoefficient*math.Pow(float64(level), CostExponent) + CostOffset))
}

// CumulativeXP returns the total XP required to reach level from level 1
func CumulativeXP(level int) int64 {
	cumulative := int64(0)
	for i := MinLevel + 1; i <= level; i++ {
		cumulative += XPCost(i)
	}
	return cumulative
}

// LevelFromXP returns the highest level whose cumulative XP does not exceed totalXP,
// capped at MaxLevel
func LevelFromXP(totalXP int64) int {
	level, _ := levelAndFloor(totalXP)
	return level
}

// levelAndFloor walks the curve once and returns the level together with the
// cumulative XP at which that level starts
func levelAndFloor(totalXP int64) (int, int64) {
	level := MinLevel
	cumulative := int64(0)

	for level < MaxLevel {
		next := XPCost(level + 1)
		if cumulative+next > totalXP {
			break
		}
		cumulative += next
		level++
	}
	return level, cumulative
}
