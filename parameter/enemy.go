package parameter

// Roster
const (
	// ZombieCount is the zombie roster size at round start
	ZombieCount = 10

	// NPCCount is the number of wandering humans at round start
	NPCCount = 8
)

// Zombie AI
const (
	// ProximityCells is the Manhattan grid distance under which zombies chase the player
	ProximityCells = 10
)
