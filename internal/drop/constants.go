package drop

// ============================================================================
// Tier Thresholds
// ============================================================================

// JackpotThreshold is the upper bound (<1%) of the roll that awards the most expensive item.
const JackpotThreshold = 0.01

// PremiumThreshold is the upper bound (<10%) of the roll that awards one of the two most expensive items.
const PremiumThreshold = 0.10

// MidThreshold is the upper bound (<50%) of the roll for items priced between the case price and MidPriceCeiling.
// Every roll at or above it lands in the common tier.
const MidThreshold = 0.50

// PremiumPoolSize is the number of top-priced items eligible in the premium tier.
const PremiumPoolSize = 2

// MidPriceCeiling bounds the mid tier: case price < item price < MidPriceCeiling x case price.
const MidPriceCeiling = 5

// CommonPriceCeiling bounds the common tier: item price < CommonPriceCeiling x case price.
const CommonPriceCeiling = 3

// ============================================================================
// Reel
// ============================================================================

// ReelLength is the number of slots in a generated roulette reel.
const ReelLength = 50

// ReelWinIndex is the slot at which the drawn item is placed.
const ReelWinIndex = 38
