// Package config holds every tuning value of the simulation
// Defaults come from package parameter; a TOML file and environment variables override them
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/deadtown/parameter"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// Config is the complete simulation configuration
type Config struct {
	Movement  MovementConfig        `toml:"movement"`
	Player    PlayerConfig          `toml:"player"`
	Roster    RosterConfig          `toml:"roster"`
	Map       MapConfig             `toml:"map"`
	Path      PathConfig            `toml:"path"`
	Collision CollisionConfig       `toml:"collision"`
	Items     map[string]ItemConfig `toml:"items"`
	ItemCap   int                   `toml:"item_cap"`
	Audio     AudioConfig           `toml:"audio"`
}

type MovementConfig struct {
	BaseSpeed      float64 `toml:"base_speed"`
	ZombieSpeed    float64 `toml:"zombie_speed"`
	BoostSpeed     float64 `toml:"boost_speed"`
	AnimationSpeed float64 `toml:"animation_speed"`
}

type PlayerConfig struct {
	MaxHealth          int     `toml:"max_health"`
	ZombieDamage       int     `toml:"zombie_damage"`
	HitInvulnerability float64 `toml:"hit_invulnerability"`
	SpawnX             float64 `toml:"spawn_x"`
	SpawnY             float64 `toml:"spawn_y"`
	Width              float64 `toml:"width"`
	Height             float64 `toml:"height"`
}

type RosterConfig struct {
	Zombies        int `toml:"zombies"`
	NPCs           int `toml:"npcs"`
	ProximityCells int `toml:"proximity_cells"`
}

type MapConfig struct {
	TileSize          float64 `toml:"tile_size"`
	CollisionSuffix   string  `toml:"collision_suffix"`
	BelowSuffix       string  `toml:"below_suffix"`
	AboveSuffix       string  `toml:"above_suffix"`
	MaxRandomAttempts int     `toml:"max_random_attempts"`
}

// PathConfig selects the grid solver; "astar" solves each request, "flow" shares one field per target cell
type PathConfig struct {
	BudgetPerTick int    `toml:"budget_per_tick"`
	Solver        string `toml:"solver"`
}

// CollisionConfig toggles each collision check independently
type CollisionConfig struct {
	PlayerZombies bool    `toml:"player_zombies"`
	PlayerMap     bool    `toml:"player_map"`
	PlayerItems   bool    `toml:"player_items"`
	NPCZombies    bool    `toml:"npc_zombies"`
	PickupInset   float64 `toml:"pickup_inset"`
	ItemWidth     float64 `toml:"item_width"`
	ItemHeight    float64 `toml:"item_height"`
}

// ItemConfig is the per-type tuning of a collectible
// BandLo/BandHi define the spawn window of the per-tick draw; equal values disable spawning
type ItemConfig struct {
	LifeTime float64 `toml:"lifetime"`
	Score    int     `toml:"score"`
	Health   int     `toml:"health"`
	Infect   float64 `toml:"infect"`
	Boost    float64 `toml:"boost"`
	BandLo   float64 `toml:"band_lo"`
	BandHi   float64 `toml:"band_hi"`
}

type AudioConfig struct {
	Enabled      bool               `toml:"enabled"`
	MasterVolume float64            `toml:"master_volume"`
	Volumes      map[string]float64 `toml:"volumes"`
}

// Default returns the configuration built from package parameter
func Default() *Config {
	return &Config{
		Movement: MovementConfig{
			BaseSpeed:      parameter.BaseSpeed,
			ZombieSpeed:    parameter.ZombieSpeed,
			BoostSpeed:     parameter.BoostSpeed,
			AnimationSpeed: parameter.AnimationSpeed,
		},
		Player: PlayerConfig{
			MaxHealth:          parameter.MaxHealth,
			ZombieDamage:       parameter.ZombieDamage,
			HitInvulnerability: parameter.HitInvulnerability,
			SpawnX:             parameter.PlayerSpawnX,
			SpawnY:             parameter.PlayerSpawnY,
			Width:              parameter.CharacterWidth,
			Height:             parameter.CharacterHeight,
		},
		Roster: RosterConfig{
			Zombies:        parameter.ZombieCount,
			NPCs:           parameter.NPCCount,
			ProximityCells: parameter.ProximityCells,
		},
		Map: MapConfig{
			TileSize:          parameter.TileSize,
			CollisionSuffix:   parameter.CollisionSuffix,
			BelowSuffix:       parameter.BelowSuffix,
			AboveSuffix:       parameter.AboveSuffix,
			MaxRandomAttempts: parameter.MaxRandomAttempts,
		},
		Path: PathConfig{
			BudgetPerTick: parameter.PathBudgetPerTick,
			Solver:        parameter.PathSolver,
		},
		Collision: CollisionConfig{
			PlayerZombies: true,
			PlayerMap:     true,
			PlayerItems:   true,
			NPCZombies:    true,
			PickupInset:   parameter.ItemPickupInset,
			ItemWidth:     parameter.ItemWidth,
			ItemHeight:    parameter.ItemHeight,
		},
		Items: map[string]ItemConfig{
			"brain": {
				LifeTime: parameter.LifeTimeBrain, Score: parameter.BrainScore, Infect: parameter.BrainInfection,
				BandLo: parameter.BandBrainLo, BandHi: parameter.BandBrainHi,
			},
			"chip": {
				LifeTime: parameter.LifeTimeChip, Score: parameter.ChipScore,
				BandLo: parameter.BandChipLo, BandHi: parameter.BandChipHi,
			},
			"health_pack": {
				LifeTime: parameter.LifeTimeHealthPack, Health: parameter.HealthPackHealth,
				BandLo: parameter.BandHealthPackLo, BandHi: parameter.BandHealthPackHi,
			},
			"key": {
				LifeTime: parameter.LifeTimeKey, Score: parameter.KeyScore,
				BandLo: parameter.BandKeyLo, BandHi: parameter.BandKeyHi,
			},
			"keycard": {
				LifeTime: parameter.LifeTimeKeycard, Score: parameter.KeycardScore,
				BandLo: parameter.BandKeycardLo, BandHi: parameter.BandKeycardHi,
			},
			"sprout": {
				LifeTime: parameter.LifeTimeSprout, Health: parameter.SproutHealth, Boost: parameter.SproutBoost,
				BandLo: parameter.BandSproutLo, BandHi: parameter.BandSproutHi,
			},
			"shiny": {
				LifeTime: parameter.LifeTimeShiny, Score: parameter.ShinyScore,
				BandLo: parameter.BandShinyLo, BandHi: parameter.BandShinyHi,
			},
		},
		ItemCap: parameter.MaxItems,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: parameter.AudioMasterVolume,
			Volumes:      map[string]float64{},
		},
	}
}

// Load reads a TOML file over the defaults, applies environment overrides and validates
// An empty path skips the file
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config read: %w", err)
		}
		if err := cfg.Decode(string(data)); err != nil {
			return nil, err
		}
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays TOML data on cfg; keys absent from data keep their current value
// Item sections merge per type so a file may override one field of one item
func (c *Config) Decode(data string) error {
	base := c.Items
	c.Items = nil

	md, err := toml.Decode(data, c)
	if err != nil {
		c.Items = base
		return fmt.Errorf("config parse: %w", err)
	}

	overrides := c.Items
	c.Items = base
	for name, ov := range overrides {
		merged := base[name]
		if md.IsDefined("items", name, "lifetime") {
			merged.LifeTime = ov.LifeTime
		}
		if md.IsDefined("items", name, "score") {
			merged.Score = ov.Score
		}
		if md.IsDefined("items", name, "health") {
			merged.Health = ov.Health
		}
		if md.IsDefined("items", name, "infect") {
			merged.Infect = ov.Infect
		}
		if md.IsDefined("items", name, "boost") {
			merged.Boost = ov.Boost
		}
		if md.IsDefined("items", name, "band_lo") {
			merged.BandLo = ov.BandLo
		}
		if md.IsDefined("items", name, "band_hi") {
			merged.BandHi = ov.BandHi
		}
		c.Items[name] = merged
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%w: unknown key %q", ErrInvalid, undecoded[0].String())
	}
	return nil
}

// ApplyEnv overrides audio settings from the environment
func (c *Config) ApplyEnv() {
	if enabled := os.Getenv("DEADTOWN_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			c.Audio.Enabled = val
		}
	}

	// Master volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv("DEADTOWN_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			c.Audio.MasterVolume = float64(val) / 100.0
		}
	}
}

// Validate rejects values the simulation cannot run with and clamps soft ranges
func (c *Config) Validate() error {
	if c.Map.TileSize <= 0 {
		return fmt.Errorf("%w: map.tile_size must be positive, got %v", ErrInvalid, c.Map.TileSize)
	}
	if c.Map.CollisionSuffix == "" {
		return fmt.Errorf("%w: map.collision_suffix must not be empty", ErrInvalid)
	}
	if c.Map.MaxRandomAttempts <= 0 {
		return fmt.Errorf("%w: map.max_random_attempts must be positive", ErrInvalid)
	}
	if c.Movement.BaseSpeed < 0 || c.Movement.ZombieSpeed < 0 || c.Movement.BoostSpeed < 0 {
		return fmt.Errorf("%w: movement speeds must not be negative", ErrInvalid)
	}
	if c.Player.MaxHealth <= 0 || c.Player.MaxHealth > parameter.MaxHealth {
		return fmt.Errorf("%w: player.max_health must be in 1..%d, got %d", ErrInvalid, parameter.MaxHealth, c.Player.MaxHealth)
	}
	if c.Player.ZombieDamage < 0 {
		return fmt.Errorf("%w: player.zombie_damage must not be negative", ErrInvalid)
	}
	if c.Path.BudgetPerTick <= 0 {
		return fmt.Errorf("%w: path.budget_per_tick must be positive", ErrInvalid)
	}
	if c.Path.Solver != "astar" && c.Path.Solver != "flow" {
		return fmt.Errorf("%w: path.solver must be astar or flow, got %q", ErrInvalid, c.Path.Solver)
	}
	if c.Roster.Zombies < 0 || c.Roster.NPCs < 0 {
		return fmt.Errorf("%w: roster sizes must not be negative", ErrInvalid)
	}
	for name, it := range c.Items {
		if it.BandLo < 0 || it.BandHi > 1 || it.BandHi < it.BandLo {
			return fmt.Errorf("%w: items.%s band [%v,%v) outside [0,1)", ErrInvalid, name, it.BandLo, it.BandHi)
		}
		if it.LifeTime < 0 {
			return fmt.Errorf("%w: items.%s lifetime must not be negative", ErrInvalid, name)
		}
	}

	if c.Audio.MasterVolume < 0 {
		c.Audio.MasterVolume = 0
	}
	if c.Audio.MasterVolume > 1 {
		c.Audio.MasterVolume = 1
	}
	return nil
}
