package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope of the given total length
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear gain
// math.Log2(0) is -Inf, so 0 maps to a silent stream
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: parameter.AudioVolumeBase, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: parameter.AudioVolumeBase, Volume: math.Log(vol) / math.Log(parameter.AudioVolumeBase)}
}

// tone is a shaped note of one oscillator
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// sine is a shaped pure tone from the beep generator set
func sine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	gen, err := generators.SineTone(rate, freq)
	if err != nil {
		return tone(freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), gen), d, 2*time.Millisecond, d*3/4, rate)
}

// --- Sound recipes ---

// CreateHitSound is a harsh saw buzz for contact damage
func CreateHitSound(rate beep.SampleRate) beep.Streamer {
	return tone(100, 150*time.Millisecond, WaveSaw, rate)
}

// CreatePickupSound is a bell: fundamental plus octave overtone
func CreatePickupSound(rate beep.SampleRate) beep.Streamer {
	return beep.Mix(
		newVolume(sine(880, 200*time.Millisecond, rate), 0.7),
		newVolume(sine(1760, 120*time.Millisecond, rate), 0.3),
	)
}

// CreateInfectSound is a rumble under decaying noise
func CreateInfectSound(rate beep.SampleRate) beep.Streamer {
	d := 300 * time.Millisecond
	return beep.Mix(
		newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, d-time.Millisecond, rate), 0.25),
		newVolume(tone(80, d, WaveSine, rate), 0.5),
	)
}

// CreateExpireSound is a short noise whoosh
func CreateExpireSound(rate beep.SampleRate) beep.Streamer {
	d := 120 * time.Millisecond
	return newVolume(NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 30*time.Millisecond, 80*time.Millisecond, rate), 0.4)
}

// CreateToggleSound is a two-note square chime
func CreateToggleSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(987.77, 80*time.Millisecond, WaveSquare, rate),
		tone(1318.51, 160*time.Millisecond, WaveSquare, rate),
	), 0.3)
}

// CreateGameOverSound is a falling three-note saw line
func CreateGameOverSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(440, 200*time.Millisecond, WaveSaw, rate),
		tone(330, 200*time.Millisecond, WaveSaw, rate),
		tone(220, 400*time.Millisecond, WaveSaw, rate),
	), 0.5)
}

// CreateStartSound is a rising two-note sine
func CreateStartSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		sine(523.25, 100*time.Millisecond, rate),
		sine(783.99, 200*time.Millisecond, rate),
	)
}

// GetSoundEffect returns a fresh unity-gain streamer for the given sound, nil if unknown
func GetSoundEffect(id core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch id {
	case core.SoundHit:
		return CreateHitSound(rate)
	case core.SoundPickup:
		return CreatePickupSound(rate)
	case core.SoundInfect:
		return CreateInfectSound(rate)
	case core.SoundExpire:
		return CreateExpireSound(rate)
	case core.SoundToggle:
		return CreateToggleSound(rate)
	case core.SoundGameOver:
		return CreateGameOverSound(rate)
	case core.SoundStart:
		return CreateStartSound(rate)
	default:
		return nil
	}
}
