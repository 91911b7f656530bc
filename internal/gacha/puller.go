package gacha

import (
	"github.com/osse101/GachaTrip_Go/internal/domain"
	"github.com/osse101/GachaTrip_Go/internal/utils"
)

// MaxPullsPerDraw bounds a single multi-pull
const MaxPullsPerDraw = 10

// Puller draws destinations from a weighted pool
type Puller struct {
	pool    []domain.Destination
	weights []float64
	rnd     func() float64 // returns [0, 1)
}

// NewPuller creates a puller over pool. rnd defaults to utils.RandomFloat.
func NewPuller(pool []domain.Destination, rnd func() float64) (*Puller, error) {
	weights := make([]float64, len(pool))
	for i, d := range pool {
		weights[i] = d.EffectiveWeight()
	}
	if utils.WeightedIndex(weights, 0) < 0 {
		return nil, domain.ErrEmptyPool
	}
	if rnd == nil {
		rnd = utils.RandomFloat
	}

	copied := make([]domain.Destination, len(pool))
	copy(copied, pool)
	return &Puller{pool: copied, weights: weights, rnd: rnd}, nil
}

// Pull draws n destinations, n clamped to 1..MaxPullsPerDraw.
// Duplicates are possible; the collection turns them into check-ins.
func (p *Puller) Pull(n int) []domain.Destination {
	n = utils.Clamp(n, 1, MaxPullsPerDraw)

	drawn := make([]domain.Destination, 0, n)
	for i := 0; i < n; i++ {
		drawn = append(drawn, p.pool[utils.WeightedIndex(p.weights, p.rnd())])
	}
	return drawn
}

// Entries converts drawn destinations to collect inputs, preserving order
func Entries(drawn []domain.Destination) []domain.CollectionEntry {
	entries := make([]domain.CollectionEntry, len(drawn))
	for i, d := range drawn {
		entries[i] = d.Entry()
	}
	return entries
}

// Pool returns a copy of the destinations
func (p *Puller) Pool() []domain.Destination {
	out := make([]domain.Destination, len(p.pool))
	copy(out, p.pool)
	return out
}

// Odds returns the chance of each rarity in percent
func (p *Puller) Odds() map[domain.Rarity]float64 {
	total := 0.0
	for _, w := range p.weights {
		if w > 0 {
			total += w
		}
	}

	odds := make(map[domain.Rarity]float64)
	for i, d := range p.pool {
		if p.weights[i] > 0 {
			odds[d.Rarity] += 100 * p.weights[i] / total
		}
	}
	return odds
}
