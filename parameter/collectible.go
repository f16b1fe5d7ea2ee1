package parameter

// Item Lifetimes (seconds), 0 = never expires
const (
	LifeTimeBrain      = 30.0
	LifeTimeChip       = 30.0
	LifeTimeHealthPack = 30.0
	LifeTimeKey        = 0.0
	LifeTimeKeycard    = 0.0
	LifeTimeSprout     = 30.0
	LifeTimeShiny      = 10.0
)

// Item Pulse
const (
	// ItemPulseThreshold is remaining lifetime under which items blink (seconds)
	ItemPulseThreshold = 5.0

	// ItemAnimationSpeed is frames advanced per tick
	ItemAnimationSpeed = 0.05
)

// Item Bounds
const (
	ItemWidth  = 16.0
	ItemHeight = 16.0

	// ItemPickupInset tightens item bounds on every side for pickup tests
	ItemPickupInset = 4.0
)

// Item Effects
const (
	BrainScore       = 25
	BrainInfection   = 10.0 // seconds of zombie state for the player
	ChipScore        = 10
	HealthPackHealth = 25
	KeyScore         = 50
	KeycardScore     = 100
	SproutHealth     = 10
	SproutBoost      = 5.0 // seconds of boost
	ShinyScore       = 250
)

// Spawn Bands
// Disjoint windows of a per-tick uniform draw in [0,1)
const (
	BandBrainLo      = 0.10000
	BandBrainHi      = 0.10050
	BandChipLo       = 0.20000
	BandChipHi       = 0.20100
	BandHealthPackLo = 0.30000
	BandHealthPackHi = 0.30100
	BandKeyLo        = 0.40000
	BandKeyHi        = 0.40010
	BandKeycardLo    = 0.50000
	BandKeycardHi    = 0.50005
	BandSproutLo     = 0.60000
	BandSproutHi     = 0.60100
	BandShinyLo      = 0.70000
	BandShinyHi      = 0.70050
)

// MaxItems caps live items; spawning is skipped while at capacity
const MaxItems = 16
