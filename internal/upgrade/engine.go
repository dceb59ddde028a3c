// Package upgrade implements the item upgrade trial: a single Bernoulli draw
// whose success chance derives from the price ratio of source and target.
package upgrade

import (
	"math"

	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/utils"
)

// CalculateChance returns the success chance in percent for upgrading an item
// worth sourcePrice into one worth targetPrice, capped at MaxChance.
// A non-positive target price yields MaxChance.
func CalculateChance(sourcePrice, targetPrice int64) int {
	if targetPrice <= 0 {
		return MaxChance
	}
	chance := int(math.Round(float64(sourcePrice) / float64(targetPrice) * PercentScale))
	if chance > MaxChance {
		return MaxChance
	}
	if chance < 0 {
		return 0
	}
	return chance
}

// ValidateChance reports whether chance lies within [MinChance, MaxChance]
func ValidateChance(chance int) error {
	if chance < MinChance || chance > MaxChance {
		return domain.ErrInvalidChanceRange
	}
	return nil
}

// Roll is the outcome of one trial
type Roll struct {
	Success bool
	// Value is the uniform draw scaled to [0, 100)
	Value float64
}

// Engine runs upgrade trials
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

// Roll performs a trial at the given chance. It succeeds iff the scaled draw
// is strictly below chance.
func (e *Engine) Roll(chance int) (Roll, error) {
	if err := ValidateChance(chance); err != nil {
		return Roll{}, err
	}
	v := e.rnd() * PercentScale
	return Roll{Success: v < float64(chance), Value: v}, nil
}

// TargetForChance inverts the chance slider: it returns the target priced
// closest to sourcePrice / (chance/100). Only targets priced above the source
// qualify and catalog order breaks ties. Returns false when none qualify or
// chance is not positive.
func TargetForChance(source domain.Item, targets []domain.Item, chance int) (domain.Item, bool) {
	if chance <= 0 {
		return domain.Item{}, false
	}
	desired := utils.RoundPrice(float64(source.Price) * PercentScale / float64(chance))

	var (
		best     domain.Item
		bestDiff int64 = math.MaxInt64
		found    bool
	)
	for _, t := range targets {
		if t.Price <= source.Price {
			continue
		}
		diff := t.Price - desired
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			best, bestDiff, found = t, diff, true
		}
	}
	return best, found
}

// DefaultTarget returns the first catalog target priced above source
func DefaultTarget(source domain.Item, targets []domain.Item) (domain.Item, bool) {
	for _, t := range targets {
		if t.Price > source.Price {
			return t, true
		}
	}
	return domain.Item{}, false
}

// ResolveChance returns the chance a stake of source for target is rolled at.
// The target must be priced above the source. A non-zero requested chance
// stands for the slider position and must select target through
// TargetForChance; the roll then uses the chance derived from the two prices,
// so a chance can never be paired with a target it does not price.
func ResolveChance(source, target domain.Item, targets []domain.Item, requested int) (int, error) {
	if target.Price <= source.Price {
		return 0, domain.ErrTargetNotUpgrade
	}
	if requested != 0 {
		if err := ValidateChance(requested); err != nil {
			return 0, err
		}
		picked, ok := TargetForChance(source, targets, requested)
		if !ok || picked.ID != target.ID {
			return 0, domain.ErrTargetChanceMismatch
		}
	}
	chance := CalculateChance(source.Price, target.Price)
	if err := ValidateChance(chance); err != nil {
		return 0, err
	}
	return chance, nil
}

// Result is the full outcome of an upgrade trial
type Result struct {
	Roll
	Chance int
	Source domain.Item
	Target domain.Item
}

// Upgrade stakes source for target at chance. The caller removes the source
// regardless of the result and grants a copy of target on success.
func (e *Engine) Upgrade(source, target domain.Item, chance int) (Result, error) {
	roll, err := e.Roll(chance)
	if err != nil {
		return Result{}, err
	}
	return Result{Roll: roll, Chance: chance, Source: source, Target: target}, nil
}
