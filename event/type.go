package event

// EventType represents the type of game event
type EventType int

const (
	// EventModeChange signals a game mode transition
	// Trigger: Simulation Load/Start/Restart, health reaching zero
	// Consumer: Host UI | Payload: *ModeChangePayload
	EventModeChange EventType = iota

	// EventPlayerHit signals zombie contact damage
	// Trigger: Collision engine Player×Zombies outside invulnerability
	// Consumer: Host, metrics | Payload: *PlayerHitPayload
	EventPlayerHit

	// EventItemCollected signals a pickup and its applied effect
	// Trigger: Collision engine Player×Items
	// Consumer: Host | Payload: *ItemPayload
	EventItemCollected

	// EventItemExpired signals an item reached the end of its lifetime
	// Trigger: Item lifecycle update
	// Consumer: Host | Payload: *ItemPayload
	EventItemExpired

	// EventItemSpawned signals a new item was placed
	// Trigger: Item spawner roll
	// Consumer: Host | Payload: *ItemPayload
	EventItemSpawned

	// EventPromotion signals an NPC became a zombie
	// Trigger: Collision engine NPC×Zombies
	// Consumer: Host, metrics | Payload: *PromotionPayload
	EventPromotion

	// EventPlayerToggle signals the player toggled zombie/dead state by key
	// Trigger: Input toggle key
	// Consumer: Host | Payload: *PlayerTogglePayload
	EventPlayerToggle

	EventTypeCount
)

var typeNames = [EventTypeCount]string{
	"EventModeChange",
	"EventPlayerHit",
	"EventItemCollected",
	"EventItemExpired",
	"EventItemSpawned",
	"EventPromotion",
	"EventPlayerToggle",
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if t < 0 || t >= EventTypeCount {
		return "EventUnknown"
	}
	return typeNames[t]
}

// GetEventType resolves an event name
func GetEventType(name string) (EventType, bool) {
	for i, n := range typeNames {
		if n == name {
			return EventType(i), true
		}
	}
	return 0, false
}

// GameEvent is one notification produced during a tick
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
