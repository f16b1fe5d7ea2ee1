package parameter

// Character Movement (world units per frame-delta)
const (
	// BaseSpeed is the human movement speed
	BaseSpeed = 1.0

	// ZombieSpeed is the movement speed while in zombie role or infected
	ZombieSpeed = 0.5

	// BoostSpeed overrides both while a speed boost is active
	BoostSpeed = 2.0

	// AnimationSpeed is frames advanced per tick while moving
	AnimationSpeed = 0.1
)

// Character Bounds
const (
	CharacterWidth  = 16.0
	CharacterHeight = 16.0
)

// Player Health
const (
	// MaxHealth is the health ceiling and starting value
	MaxHealth = 100

	// ZombieDamage is health lost per zombie contact
	ZombieDamage = 5

	// HitInvulnerability is the grace window after a hit (seconds)
	HitInvulnerability = 1.0

	// PlayerSpawnX and PlayerSpawnY are the fixed world spawn of the player
	PlayerSpawnX = 128.0
	PlayerSpawnY = 128.0
)

// Blink Animation
const (
	// BlinkFrequency is the sine frequency of the hit/expiry blink
	BlinkFrequency = 25.0

	// BlinkMinAlpha floors the blink alpha so sprites never vanish
	BlinkMinAlpha = 0.4
)

// FrameCount is the number of frames a character sheet must provide:
// 2 dead + 4 directions x 3 human + 4 directions x 3 zombie
const FrameCount = 26
