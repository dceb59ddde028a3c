package drop

import (
	"github.com/pr-poehali-dev/cs2-case-openings/internal/domain"
	"github.com/pr-poehali-dev/cs2-case-openings/internal/utils"
)

// BuildReel lays out a roulette reel of ReelLength slots with winner at ReelWinIndex.
// Every other slot is a uniform pick from pool. The reel is cosmetic; the
// outcome is decided by Draw before the reel is built.
func (e *Engine) BuildReel(pool []domain.Item, winner domain.Item) []domain.Item {
	reel := make([]domain.Item, ReelLength)
	for i := range reel {
		if i == ReelWinIndex || len(pool) == 0 {
			reel[i] = winner
			continue
		}
		reel[i] = pool[utils.PickIndex(e.rnd(), len(pool))]
	}
	return reel
}
