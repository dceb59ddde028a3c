// Package drop implements the tiered case draw.
//
// The draw is a four-band cumulative distribution over a single uniform
// roll. Each band filters the pool by price relative to the case price and
// falls back to the whole pool when its filter is empty, so a non-empty pool
// always yields an item.
package drop

import (
	"sort"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/utils"
)

// Result is a drawn item together with the tier that produced it
type Result struct {
	Item domain.Item
	Tier domain.DropTier
}

// Engine draws items from case pools. It holds no state besides its random source
// and is safe for concurrent use if the source is.
type Engine struct {
	rnd func() float64
}

// New creates an Engine. A nil rnd uses utils.RandomFloat.
func New(rnd func() float64) *Engine {
	if rnd == nil {
		rnd = utils.RandomFloat
	}
	return &Engine{rnd: rnd}
}

// Draw selects one item from pool for a case priced at casePrice.
// The first roll picks the tier; a second roll picks uniformly inside it.
func (e *Engine) Draw(pool []domain.Item, casePrice int64) (Result, error) {
	if len(pool) == 0 {
		return Result{}, domain.ErrInvalidCaseDefinition
	}

	roll := e.rnd()

	switch {
	case roll < JackpotThreshold:
		return Result{Item: byPriceDesc(pool)[0], Tier: domain.TierJackpot}, nil

	case roll < PremiumThreshold:
		top := byPriceDesc(pool)
		if len(top) > PremiumPoolSize {
			top = top[:PremiumPoolSize]
		}
		return Result{Item: e.pick(top), Tier: domain.TierPremium}, nil

	case roll < MidThreshold:
		mid := filter(pool, func(it domain.Item) bool {
			return it.Price > casePrice && it.Price < MidPriceCeiling*casePrice
		})
		return Result{Item: e.pickOrFallback(mid, pool), Tier: domain.TierMid}, nil

	default:
		common := filter(pool, func(it domain.Item) bool {
			return it.Price < CommonPriceCeiling*casePrice
		})
		return Result{Item: e.pickOrFallback(common, pool), Tier: domain.TierCommon}, nil
	}
}

// pick chooses uniformly from a non-empty slice
func (e *Engine) pick(items []domain.Item) domain.Item {
	return items[utils.PickIndex(e.rnd(), len(items))]
}

func (e *Engine) pickOrFallback(candidates, pool []domain.Item) domain.Item {
	if len(candidates) == 0 {
		return e.pick(pool)
	}
	return e.pick(candidates)
}

// byPriceDesc returns a copy of pool sorted by price, highest first.
// The sort is stable so equal prices keep pool order.
func byPriceDesc(pool []domain.Item) []domain.Item {
	sorted := make([]domain.Item, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price > sorted[j].Price
	})
	return sorted
}

func filter(pool []domain.Item, keep func(domain.Item) bool) []domain.Item {
	var out []domain.Item
	for _, it := range pool {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}
