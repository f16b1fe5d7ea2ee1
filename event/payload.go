package event

// ModeChangePayload carries the old and new game mode names
type ModeChangePayload struct {
	From string
	To   string
}

// PlayerHitPayload carries health after a hit
type PlayerHitPayload struct {
	Damage int
	Health int
}

// ItemPayload identifies an item by id and type name
type ItemPayload struct {
	ID   string
	Type string
	X, Y float64
}

// PromotionPayload identifies the promoted NPC
type PromotionPayload struct {
	ID string
}

// PlayerTogglePayload carries the player state after a toggle
type PlayerTogglePayload struct {
	Zombie bool
	Dead   bool
}
