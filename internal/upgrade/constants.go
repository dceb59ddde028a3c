package upgrade

// ============================================================================
// Chance Bounds
// ============================================================================

// MinChance is the lowest success chance (percent) a caller may request.
const MinChance = 10

// MaxChance is the highest success chance (percent) a caller may request.
// Derived chances are capped here so no upgrade is a sure thing.
const MaxChance = 90

// PercentScale converts a price ratio or a unit roll into percent.
const PercentScale = 100
