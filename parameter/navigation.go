package parameter

// Map Grid
const (
	// TileSize is the world size of one grid cell
	TileSize = 16.0

	// CollisionSuffix marks blocking tile layers
	CollisionSuffix = "_collision"

	// BelowSuffix and AboveSuffix mark depth-sorted map layers
	BelowSuffix = "_below"
	AboveSuffix = "_above"

	// MaxRandomAttempts bounds random walkable cell sampling
	MaxRandomAttempts = 1000
)

// Pathfinding
const (
	// PathBudgetPerTick is the number of A* node expansions shared by all requests per tick
	PathBudgetPerTick = 2000

	// PathSolver is the default grid solver name
	PathSolver = "astar"
)
