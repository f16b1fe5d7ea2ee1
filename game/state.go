package game

import "github.com/lixenwraith/deadtown/vmath"

// State is the game-level scoreboard and mode flags
type State struct {
	PlayerHealth int
	MaxHealth    int
	PlayerScore  int

	Started      bool
	IsLoading    bool
	AssetsLoaded bool
	ElapsedTime  float64 // Seconds of play, delta/60 per tick

	Mode Mode
}

// NewState returns a fresh loading state
func NewState(maxHealth int) State {
	return State{
		PlayerHealth: maxHealth,
		MaxHealth:    maxHealth,
		IsLoading:    true,
		Mode:         ModeLoading,
	}
}

// AddHealth applies delta and clamps to [0, MaxHealth]; returns the new health
func (s *State) AddHealth(delta int) int {
	s.PlayerHealth = vmath.Clamp(s.PlayerHealth+delta, 0, s.MaxHealth)
	return s.PlayerHealth
}

// AddScore applies delta, never dropping below zero
func (s *State) AddScore(delta int) int {
	s.PlayerScore = max(s.PlayerScore+delta, 0)
	return s.PlayerScore
}

// ResetRound restores health, score and timers for a new round
func (s *State) ResetRound() {
	s.PlayerHealth = s.MaxHealth
	s.PlayerScore = 0
	s.ElapsedTime = 0
}
