package domain

// Rarity represents how often a destination shows up in a gacha pull
type Rarity string

const (
	RarityCommon    Rarity = "COMMON"
	RarityRare      Rarity = "RARE"
	RarityEpic      Rarity = "EPIC"
	RarityLegendary Rarity = "LEGENDARY"
)

// DefaultWeight returns the draw weight used when a destination does not set one
func (r Rarity) DefaultWeight() float64 {
	switch r {
	case RarityRare:
		return 25
	case RarityEpic:
		return 10
	case RarityLegendary:
		return 3
	default:
		return 62
	}
}

// Destination is one entry of a gacha pool
type Destination struct {
	Title       string  `json:"title" yaml:"title"`
	County      string  `json:"county" yaml:"county"`
	Category    string  `json:"category" yaml:"category"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
	Duration    string  `json:"duration,omitempty" yaml:"duration,omitempty"`
	Rarity      Rarity  `json:"rarity" yaml:"rarity"`
	Weight      float64 `json:"weight,omitempty" yaml:"weight,omitempty"` // overrides the rarity weight when > 0
}

// EffectiveWeight returns the draw weight of the destination
func (d Destination) EffectiveWeight() float64 {
	if d.Weight > 0 {
		return d.Weight
	}
	return d.Rarity.DefaultWeight()
}

// Entry converts the destination to a collect input
func (d Destination) Entry() CollectionEntry {
	return CollectionEntry{
		Title:       d.Title,
		County:      d.County,
		Category:    d.Category,
		Description: d.Description,
		Duration:    d.Duration,
	}
}
