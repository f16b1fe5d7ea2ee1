package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Audio Mix
const (
	// AudioMasterVolume is the default master gain in [0,1]
	AudioMasterVolume = 0.8

	// AudioVolumeBase is the exponent base used by beep volume effects
	AudioVolumeBase = 2.0
)
