// Package audio synthesises and plays game sounds through the beep speaker
package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/deadtown/config"
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/parameter"
)

var (
	// ErrNotInitialized is returned by play requests before Initialize succeeded
	ErrNotInitialized = errors.New("audio not initialized")
	// ErrMuted is returned by play requests while muted
	ErrMuted = errors.New("audio muted")
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager mixes one-shot and looping sounds into a single speaker stream
// Every failure degrades to silence; the game never waits on audio
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	loops       map[core.SoundType]*beep.Ctrl
	initialized bool

	// lock/unlock guard the mixer against the speaker goroutine
	lock, unlock func()

	muted   atomic.Bool
	played  atomic.Uint64
	dropped atomic.Uint64
}

// NewSoundManager creates a manager; nothing plays until Initialize
func NewSoundManager(cfg config.AudioConfig) *SoundManager {
	sm := &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		loops:  make(map[core.SoundType]*beep.Ctrl),
		lock:   func() {},
		unlock: func() {},
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	sm.start(speaker.Lock, speaker.Unlock)
	speaker.Play(sm.mixer)
	return nil
}

// start marks the manager live with the given mixer guards; caller holds mu
func (sm *SoundManager) start(lock, unlock func()) {
	sm.lock, sm.unlock = lock, unlock
	sm.initialized = true
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	sm.lock()
	for _, ctrl := range sm.loops {
		ctrl.Paused = true
	}
	sm.mixer.Clear()
	sm.unlock()

	clear(sm.loops)
	sm.initialized = false
}

// Play queues a sound; failures are counted and otherwise ignored
func (sm *SoundManager) Play(id core.SoundType, opts core.PlayOptions) {
	if err := sm.TryPlay(id, opts); err != nil {
		sm.dropped.Add(1)
		return
	}
	sm.played.Add(1)
}

// TryPlay queues a sound and reports why it did not play
// A looping sound already running is left alone
func (sm *SoundManager) TryPlay(id core.SoundType, opts core.PlayOptions) error {
	if sm.muted.Load() {
		return ErrMuted
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return ErrNotInitialized
	}

	if opts.Loop {
		if ctrl, ok := sm.loops[id]; ok && !ctrl.Paused {
			return nil
		}
	}

	s, err := sm.render(id, opts)
	if err != nil {
		return err
	}

	if opts.Loop {
		ctrl := &beep.Ctrl{Streamer: s}
		sm.loops[id] = ctrl
		s = ctrl
	}

	sm.lock()
	sm.mixer.Add(s)
	sm.unlock()
	return nil
}

// Stop pauses a looping sound
func (sm *SoundManager) Stop(id core.SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ctrl, ok := sm.loops[id]
	if !ok {
		return
	}
	sm.lock()
	ctrl.Paused = true
	sm.unlock()
	delete(sm.loops, id)
}

// render builds the gain-adjusted streamer for one request
// Loops are pre-rendered into a buffer so they can seek back to the start
func (sm *SoundManager) render(id core.SoundType, opts core.PlayOptions) (beep.Streamer, error) {
	base := GetSoundEffect(id, sampleRate)
	if base == nil {
		return nil, fmt.Errorf("unknown sound %d", id)
	}

	if opts.Loop {
		buf := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
		buf.Append(base)
		if buf.Len() == 0 {
			return nil, fmt.Errorf("sound %s rendered empty", id)
		}
		base = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}

	return newVolume(base, opts.Volume*sm.cfg.MasterVolume), nil
}

// ToggleMute flips mute and returns true if sound is now enabled
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsInitialized reports whether the speaker is open
func (sm *SoundManager) IsInitialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Active returns the number of streamers in the mixer
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.lock()
	defer sm.unlock()
	return sm.mixer.Len()
}

// Stats returns played and dropped request counts
func (sm *SoundManager) Stats() (played, dropped uint64) {
	return sm.played.Load(), sm.dropped.Load()
}
