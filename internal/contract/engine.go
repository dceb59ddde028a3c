// Package contract implements contract fusion: several items are averaged,
// boosted and converted into one item of a price-derived rarity.
package contract

import (
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/utils"
)

// Result is the synthesized item and the numbers that produced it
type Result struct {
	Item         domain.Item
	Tier         domain.Rarity // rarity derived from the result price
	AveragePrice float64
	Bonus        float64
}

// Engine fuses items
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

// ValidateCount reports whether n is an acceptable number of inputs
func ValidateCount(n int) error {
	if n < MinInputs || n > MaxInputs {
		return domain.ErrInvalidSelectionCount
	}
	return nil
}

// Bonus returns the multiplier for n inputs: 1 + 0.05 per input above the minimum
func Bonus(n int) float64 {
	return 1 + BonusPerExtraInput*float64(n-MinInputs)
}

// ResultPrice computes the fused item price for the given input prices.
// It does not validate the count.
func ResultPrice(prices []int64) (price int64, average, bonus float64) {
	if len(prices) == 0 {
		return 0, 0, 0
	}
	var sum int64
	for _, p := range prices {
		sum += p
	}
	average = float64(sum) / float64(len(prices))
	bonus = Bonus(len(prices))
	return utils.RoundPrice(average * bonus * ValueUplift), average, bonus
}

// RarityForPrice maps a result price to its rarity; the highest threshold wins
func RarityForPrice(price int64) domain.Rarity {
	switch {
	case price > CovertThreshold:
		return domain.RarityCovert
	case price > ClassifiedThreshold:
		return domain.RarityClassified
	case price > RestrictedThreshold:
		return domain.RarityRestricted
	default:
		return domain.RarityMilSpec
	}
}

// Fuse converts inputs into a single item drawn from pool. Entries matching the
// derived rarity are preferred; with none the whole pool is eligible.
func (e *Engine) Fuse(inputs []domain.Item, pool []domain.ContractOutcome) (Result, error) {
	if err := ValidateCount(len(inputs)); err != nil {
		return Result{}, err
	}
	if len(pool) == 0 {
		return Result{}, domain.ErrEmptyOutcomePool
	}

	price, average, bonus := ResultPrice(domain.Prices(inputs))
	tier := RarityForPrice(price)

	var matches []domain.ContractOutcome
	for _, o := range pool {
		if o.Rarity == tier {
			matches = append(matches, o)
		}
	}
	if len(matches) == 0 {
		matches = pool
	}
	chosen := matches[utils.PickIndex(e.rnd(), len(matches))]

	return Result{
		Item: domain.Item{
			ID:     chosen.ID,
			Name:   chosen.Name,
			Price:  price,
			Rarity: chosen.Rarity,
			Wear:   chosen.Wear,
		},
		Tier:         tier,
		AveragePrice: average,
		Bonus:        bonus,
	}, nil
}
