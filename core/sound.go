package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundHit      SoundType = iota // Player took damage
	SoundPickup                    // Item collected
	SoundInfect                    // NPC promoted to zombie
	SoundExpire                    // Item expired
	SoundToggle                    // Player toggled zombie state
	SoundGameOver                  // Health reached zero
	SoundStart                     // Round started
	SoundTypeCount
)

var soundNames = [SoundTypeCount]string{
	"hit", "pickup", "infect", "expire", "toggle", "gameover", "start",
}

// String returns the config name of the sound
func (s SoundType) String() string {
	if s < 0 || s >= SoundTypeCount {
		return "unknown"
	}
	return soundNames[s]
}

// SoundByName resolves a config name to a SoundType
func SoundByName(name string) (SoundType, bool) {
	for i, n := range soundNames {
		if n == name {
			return SoundType(i), true
		}
	}
	return 0, false
}

// PlayOptions tunes one playback; Volume is relative gain in [0,1]
type PlayOptions struct {
	Volume float64
	Loop   bool
}
