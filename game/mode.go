package game

// Mode is the top-level game state
type Mode uint8

const (
	ModeLoading Mode = iota
	ModeTitle
	ModePlaying
	ModeGameOver
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeTitle:
		return "title"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "gameover"
	}
	return "unknown"
}

// transitions lists legal mode changes
var transitions = map[Mode][]Mode{
	ModeLoading:  {ModeTitle},
	ModeTitle:    {ModePlaying},
	ModePlaying:  {ModeGameOver},
	ModeGameOver: {ModePlaying, ModeTitle},
}

// CanTransition reports whether from -> to is legal
func CanTransition(from, to Mode) bool {
	for _, m := range transitions[from] {
		if m == to {
			return true
		}
	}
	return false
}
