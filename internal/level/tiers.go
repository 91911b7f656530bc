package level

import (
	"fmt"
	"sort"

	"github.com/osse101/GachaTrip_Go/internal/domain"
)

// DefaultTiers is the built-in tier table covering levels 1-99
var DefaultTiers = []domain.LevelTier{
	{MinLevel: 1, MaxLevel: 9, Name: "Day Tripper", Style: "slate"},
	{MinLevel: 10, MaxLevel: 19, Name: "Wanderer", Style: "green"},
	{MinLevel: 20, MaxLevel: 29, Name: "Explorer", Style: "teal"},
	{MinLevel: 30, MaxLevel: 39, Name: "Adventurer", Style: "blue"},
	{MinLevel: 40, MaxLevel: 49, Name: "Voyager", Style: "indigo"},
	{MinLevel: 50, MaxLevel: 59, Name: "Pathfinder", Style: "purple"},
	{MinLevel: 60, MaxLevel: 69, Name: "Globetrotter", Style: "pink"},
	{MinLevel: 70, MaxLevel: 79, Name: "Trailblazer", Style: "orange"},
	{MinLevel: 80, MaxLevel: 89, Name: "Legend", Style: "gold"},
	{MinLevel: 90, MaxLevel: 99, Name: "Mythic Nomad", Style: "rainbow"},
}

// TierFor returns the first tier containing level.
// If the table has a gap the last tier is returned; an empty table yields the zero tier.
func TierFor(level int, tiers []domain.LevelTier) domain.LevelTier {
	for _, t := range tiers {
		if t.Contains(level) {
			return t
		}
	}
	if len(tiers) == 0 {
		return domain.LevelTier{}
	}
	return tiers[len(tiers)-1]
}

// ValidateTiers checks that tiers cover exactly MinLevel..MaxLevel without gaps or overlaps
func ValidateTiers(tiers []domain.LevelTier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("%w: empty table", domain.ErrInvalidTiers)
	}

	sorted := make([]domain.LevelTier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].MinLevel < sorted[j].MinLevel })

	expected := MinLevel
	for _, t := range sorted {
		if t.MinLevel > t.MaxLevel {
			return fmt.Errorf("%w: tier %q has min %d > max %d", domain.ErrInvalidTiers, t.Name, t.MinLevel, t.MaxLevel)
		}
		if t.MinLevel != expected {
			return fmt.Errorf("%w: tier %q starts at %d, expected %d", domain.ErrInvalidTiers, t.Name, t.MinLevel, expected)
		}
		expected = t.MaxLevel + 1
	}
	if expected != MaxLevel+1 {
		return fmt.Errorf("%w: table ends at %d", domain.ErrInvalidTiers, expected-1)
	}
	return nil
}
