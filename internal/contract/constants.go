package contract

// ============================================================================
// Selection Bounds
// ============================================================================

// MinInputs is the fewest items a contract accepts.
const MinInputs = 3

// MaxInputs is the most items a contract accepts.
const MaxInputs = 10

// ============================================================================
// Price Model
// ============================================================================

// BonusPerExtraInput is the multiplier added per input beyond MinInputs.
const BonusPerExtraInput = 0.05

// ValueUplift is the flat multiplier applied to every fused result.
const ValueUplift = 1.2

// ============================================================================
// Rarity Thresholds (result price strictly above)
// ============================================================================

const (
	CovertThreshold     = 1000
	ClassifiedThreshold = 500
	RestrictedThreshold = 200
)
