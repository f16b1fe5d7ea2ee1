// Package game sequences the per-frame simulation and owns game-level state
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/lixenwraith/deadtown/collision"
	"github.com/lixenwraith/deadtown/config"
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/depth"
	"github.com/lixenwraith/deadtown/entity"
	"github.com/lixenwraith/deadtown/event"
	"github.com/lixenwraith/deadtown/item"
	"github.com/lixenwraith/deadtown/navigation"
	"github.com/lixenwraith/deadtown/parameter"
	"github.com/lixenwraith/deadtown/status"
	"github.com/lixenwraith/deadtown/tilemap"
	"github.com/lixenwraith/deadtown/vmath"
)

var (
	// ErrNoMap is reported by Load when the map has no tile placements
	ErrNoMap = errors.New("no map loaded")
	// ErrInvalidTransition is returned for mode changes the state machine forbids
	ErrInvalidTransition = errors.New("invalid mode transition")
)

// Deps are the collaborators a simulation talks to; nil members fall back to no-ops
type Deps struct {
	Input     Input
	Drawables Drawables
	Audio     Audio
	Camera    Camera
	Solver    navigation.Solver
	Rand      vmath.Rand
	Metrics   *status.Registry
	Logger    *log.Logger
}

// MapData is the already-parsed content delivered by the asset loader
type MapData struct {
	Placements  []tilemap.Placement
	Frames      entity.FrameSet
	PlayerSpawn *core.Vec // nil uses the configured spawn
}

type tile struct {
	handle int
	tag    depth.Tag
}

// Simulation is the fixed-order tick driver
type Simulation struct {
	cfg   *config.Config
	state State

	input   Input
	draw    Drawables
	audio   Audio
	camera  Camera
	rng     vmath.Rand
	logger  *log.Logger
	metrics *status.SimMetrics
	events  *event.Router
	keys    []event.Token

	grid    *tilemap.Grid
	paths   *navigation.Adapter
	collide *collision.Engine
	sorter  *depth.Sorter
	items   *item.Roster
	speeds  entity.Speeds

	player   *entity.Character
	zombies  []*entity.Character
	npcs     []*entity.Character
	tiles    []tile
	spawn    core.Vec
	framesOK bool

	// round invalidates path callbacks issued before a restart
	round int
	ticks int64

	tags    []depth.Tag
	handles []int
	ordered []int
}

// New wires a simulation in ModeLoading
func New(cfg *config.Config, deps Deps) (*Simulation, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	specs, err := item.SpecsFrom(cfg.Items)
	if err != nil {
		return nil, fmt.Errorf("item config: %w", err)
	}
	spawner, err := item.NewSpawner(specs)
	if err != nil {
		return nil, fmt.Errorf("item config: %w", err)
	}

	s := &Simulation{
		cfg:     cfg,
		state:   NewState(cfg.Player.MaxHealth),
		input:   deps.Input,
		draw:    deps.Drawables,
		audio:   deps.Audio,
		camera:  deps.Camera,
		rng:     deps.Rand,
		logger:  deps.Logger,
		metrics: deps.Metrics.Sim(),
		events:  event.NewRouter(),
		grid:    tilemap.Build(nil, cfg.Map.CollisionSuffix, cfg.Map.TileSize),
		collide: collision.NewEngine(cfg.Collision),
		sorter:  depth.NewSorter(256),
		items:   item.NewRoster(spawner, cfg.ItemCap, cfg.Collision.ItemWidth, cfg.Collision.ItemHeight),
		speeds:  entity.SpeedsFrom(cfg.Movement),
	}
	if s.input == nil {
		s.input = nopInput{}
	}
	if s.draw == nil {
		s.draw = &nopDrawables{}
	}
	if s.audio == nil {
		s.audio = nopAudio{}
	}
	if s.camera == nil {
		s.camera = nopCamera{}
	}
	if s.rng == nil {
		s.rng = vmath.NewFastRand(uint64(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard, "", 0)
	}

	solver := deps.Solver
	if solver == nil {
		solver = newSolver(cfg)
	}
	s.paths = navigation.NewAdapter(solver, cfg.Path.BudgetPerTick)

	s.items.OnSpawn(s.onItemSpawn)

	s.keys = append(s.keys,
		s.input.OnKeyPress(KeyToggle, func(Key) { s.togglePlayer() }),
		s.input.OnKeyPress(KeyStart, func(Key) {
			if err := s.Start(); err != nil {
				s.logger.Printf("start: %v", err)
			}
		}),
		s.input.OnKeyPress(KeyRestart, func(Key) {
			if err := s.Restart(); err != nil {
				s.logger.Printf("restart: %v", err)
			}
		}),
		s.input.OnKeyPress(KeyTitle, func(Key) {
			if err := s.ReturnToTitle(); err != nil {
				s.logger.Printf("title: %v", err)
			}
		}),
	)

	s.metrics.Mode.Store(s.state.Mode.String())
	s.metrics.Health.Store(int64(s.state.PlayerHealth))
	return s, nil
}

func newSolver(cfg *config.Config) navigation.Solver {
	if cfg.Path.Solver == "flow" {
		return navigation.NewFlowSolver(cfg.Roster.Zombies + cfg.Roster.NPCs + 1)
	}
	return navigation.AStar{}
}

// Load builds the grid and rosters from map data and moves to the title screen
// Missing map or frames are reported once; the simulation keeps running without them
func (s *Simulation) Load(m MapData) error {
	if s.state.Mode != ModeLoading {
		return fmt.Errorf("%w: load in %s", ErrInvalidTransition, s.state.Mode)
	}

	var errs []error

	s.grid = tilemap.Build(m.Placements, s.cfg.Map.CollisionSuffix, s.cfg.Map.TileSize)
	if s.grid.Empty() {
		errs = append(errs, ErrNoMap)
	} else {
		s.paths.SetGrid(navigation.Matrix(s.grid.CollisionMatrix()))
	}

	if err := m.Frames.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("character frames: %w", err))
	} else {
		s.framesOK = true
	}

	for _, p := range m.Placements {
		h := s.draw.Create(KindTile, p.Layer, strconv.Itoa(p.GID))
		s.draw.Position(h, p.X, p.Y, 1, p.GID)
		s.tiles = append(s.tiles, tile{
			handle: h,
			tag: depth.Tag{
				Class: depth.LayerClass(p.Layer, s.cfg.Map.BelowSuffix, s.cfg.Map.AboveSuffix),
				Y:     p.Y,
			},
		})
	}

	s.spawn = core.Vec{X: s.cfg.Player.SpawnX, Y: s.cfg.Player.SpawnY}
	if m.PlayerSpawn != nil {
		s.spawn = *m.PlayerSpawn
	}
	s.player = s.newCharacter(entity.RolePlayer, s.spawn)
	s.populate()

	s.state.AssetsLoaded = true
	s.setMode(ModeTitle)

	err := errors.Join(errs...)
	if err != nil {
		s.logger.Printf("load: %v", err)
	}
	return err
}

// Start leaves the title screen
func (s *Simulation) Start() error {
	if s.state.Mode != ModeTitle {
		return fmt.Errorf("%w: start in %s", ErrInvalidTransition, s.state.Mode)
	}
	s.setMode(ModePlaying)
	s.play(core.SoundStart)
	return nil
}

// Restart resets health, score, timers and rosters after game over and resumes play
func (s *Simulation) Restart() error {
	if s.state.Mode != ModeGameOver {
		return fmt.Errorf("%w: restart in %s", ErrInvalidTransition, s.state.Mode)
	}

	s.resetRound()
	s.setMode(ModePlaying)
	s.play(core.SoundStart)
	return nil
}

// ReturnToTitle resets the round like Restart but waits on the title screen
func (s *Simulation) ReturnToTitle() error {
	if s.state.Mode != ModeGameOver {
		return fmt.Errorf("%w: title in %s", ErrInvalidTransition, s.state.Mode)
	}

	s.resetRound()
	s.setMode(ModeTitle)
	return nil
}

// resetRound restores health, score and timers, rebuilds the rosters and abandons queued paths
func (s *Simulation) resetRound() {
	s.round++
	s.state.ResetRound()
	if n := s.paths.Reset(); n > 0 {
		s.logger.Printf("reset: abandoned %d path requests", n)
	}

	for _, c := range s.zombies {
		s.draw.Remove(c.Drawable)
	}
	for _, c := range s.npcs {
		s.draw.Remove(c.Drawable)
	}
	s.zombies, s.npcs = nil, nil
	for _, it := range s.items.Clear() {
		s.draw.Remove(it.Drawable)
	}

	s.player.Reset(s.spawn)
	s.populate()
}

// Close cancels input subscriptions
func (s *Simulation) Close() {
	for _, tok := range s.keys {
		s.input.CancelKeyPress(tok)
	}
	s.keys = s.keys[:0]
}

// Tick advances the simulation by one frame-delta
// Only ModePlaying runs the world; queued events are dispatched in every mode
func (s *Simulation) Tick(delta float64) {
	s.ticks++
	if s.state.Mode == ModePlaying {
		s.step(delta)
	}
	s.events.DispatchAll()
	s.publish()
}

// step is the fixed per-tick sequence
func (s *Simulation) step(delta float64) {
	// Input
	if !s.player.IsDead() {
		d := s.input.Directional()
		s.player.Intent = entity.Intent{Forward: d.Forward, Backward: d.Backward, Left: d.Left, Right: d.Right}
	}

	// Player
	s.player.Update(delta)

	// Zombies chase, NPCs wander
	for _, z := range s.zombies {
		s.think(z, delta, true)
	}
	for _, n := range s.npcs {
		s.think(n, delta, false)
	}

	// Depth
	s.syncDrawables()
	s.order()

	// Collision and outcomes
	items := s.items.Items()
	r := s.collide.Resolve(s.player, s.zombies, s.npcs, items, s.grid)
	if r.ZombieHit {
		s.HitPlayer(s.cfg.Player.ZombieDamage)
	}
	for _, i := range r.Pickups {
		s.collect(items[i])
	}
	s.promote(r.Promotions)
	if r.Corrected {
		s.positionCharacter(s.player)
	}

	// Camera
	s.camera.MoveCenterTo(s.player.Pos.X, s.player.Pos.Y)

	// Items
	if it := s.items.Tick(delta, s.rng, s.placeItem); it != nil {
		s.metrics.Spawns.Add(1)
	}
	for _, it := range s.items.Items() {
		s.draw.Position(it.Drawable, it.Pos.X, it.Pos.Y, it.Alpha, int(it.Frame))
	}
	for _, it := range s.items.Sweep() {
		s.draw.Remove(it.Drawable)
	}

	// Paths
	s.paths.Tick()

	s.state.ElapsedTime += delta / parameter.FramesPerSecond
}

// HitPlayer applies contact damage unless the player is invulnerable
// Returns true if the hit landed
func (s *Simulation) HitPlayer(damage int) bool {
	if s.state.Mode != ModePlaying || s.player == nil {
		return false
	}
	if !s.player.Hit(s.cfg.Player.HitInvulnerability) {
		return false
	}

	health := s.state.AddHealth(-damage)
	s.metrics.Hits.Add(1)
	s.play(core.SoundHit)
	s.push(event.EventPlayerHit, &event.PlayerHitPayload{Damage: damage, Health: health})

	if health == 0 {
		s.gameOver()
	}
	return true
}

func (s *Simulation) gameOver() {
	s.player.SetDead()
	s.setMode(ModeGameOver)
	s.play(core.SoundGameOver)
}

func (s *Simulation) togglePlayer() {
	if s.state.Mode != ModePlaying || s.player == nil {
		return
	}
	s.player.ToggleState()
	s.play(core.SoundToggle)
	s.push(event.EventPlayerToggle, &event.PlayerTogglePayload{Zombie: s.player.IsZombie(), Dead: s.player.IsDead()})
}

// collect applies an item's effect to the player
func (s *Simulation) collect(it *item.Item) {
	if !it.Collect() {
		return
	}
	e := it.Effect
	s.state.AddScore(e.Score)
	if e.Health != 0 {
		s.state.AddHealth(e.Health)
	}
	s.player.Infect(e.Infect)
	s.player.Boost(e.Boost)

	s.metrics.Pickups.Add(1)
	s.play(core.SoundPickup)
	s.push(event.EventItemCollected, &event.ItemPayload{ID: it.ID, Type: it.Type.String(), X: it.Pos.X, Y: it.Pos.Y})

	if s.state.PlayerHealth == 0 && s.state.Mode == ModePlaying {
		s.gameOver()
	}
}

// promote moves touched NPCs into the zombie roster after the collision scan
func (s *Simulation) promote(indices []int) {
	if len(indices) == 0 {
		return
	}
	hit := make(map[int]bool, len(indices))
	for _, i := range indices {
		hit[i] = true
	}

	kept := s.npcs[:0]
	var promoted []*entity.Character
	for i, n := range s.npcs {
		if hit[i] && n.Promote() {
			promoted = append(promoted, n)
			continue
		}
		kept = append(kept, n)
	}
	for i := len(kept); i < len(s.npcs); i++ {
		s.npcs[i] = nil
	}
	s.npcs = kept

	for _, z := range promoted {
		s.zombies = append(s.zombies, z)
		s.metrics.Promotions.Add(1)
		s.play(core.SoundInfect)
		s.push(event.EventPromotion, &event.PromotionPayload{ID: z.ID})
	}
}

func (s *Simulation) setMode(to Mode) {
	from := s.state.Mode
	if from == to || !CanTransition(from, to) {
		return
	}
	s.state.Mode = to
	s.state.Started = to == ModePlaying
	s.state.IsLoading = to == ModeLoading
	s.metrics.Mode.Store(to.String())
	s.push(event.EventModeChange, &event.ModeChangePayload{From: from.String(), To: to.String()})
}

func (s *Simulation) push(t event.EventType, payload any) {
	s.events.Push(event.GameEvent{Type: t, Payload: payload, Frame: s.ticks})
}

func (s *Simulation) play(id core.SoundType) {
	vol := 1.0
	if v, ok := s.cfg.Audio.Volumes[id.String()]; ok {
		vol = v
	}
	s.audio.Play(id, core.PlayOptions{Volume: vol})
}

// publish copies state into the metric registry
func (s *Simulation) publish() {
	m := s.metrics
	m.Ticks.Store(s.ticks)
	m.Elapsed.Set(s.state.ElapsedTime)
	m.Health.Store(int64(s.state.PlayerHealth))
	m.Score.Store(int64(s.state.PlayerScore))
	m.Zombies.Store(int64(len(s.zombies)))
	m.NPCs.Store(int64(len(s.npcs)))
	m.Items.Store(int64(s.items.Len()))
	m.PathPending.Store(int64(s.paths.Pending()))
}

// --- Accessors ---

// State returns a copy of the game state
func (s *Simulation) State() State { return s.state }

// Mode returns the current game mode
func (s *Simulation) Mode() Mode { return s.state.Mode }

// Player returns the player character, nil before Load
func (s *Simulation) Player() *entity.Character { return s.player }

// Zombies returns the zombie roster; owned by the simulation
func (s *Simulation) Zombies() []*entity.Character { return s.zombies }

// NPCs returns the NPC roster; owned by the simulation
func (s *Simulation) NPCs() []*entity.Character { return s.npcs }

// Items returns live items; owned by the simulation
func (s *Simulation) Items() []*item.Item { return s.items.Items() }

// Grid returns the collision grid, empty before Load
func (s *Simulation) Grid() *tilemap.Grid { return s.grid }

// Paths returns the pathfinder adapter
func (s *Simulation) Paths() *navigation.Adapter { return s.paths }

// Events returns the router hosts register handlers on
func (s *Simulation) Events() *event.Router { return s.events }

// Ticks returns the number of Tick calls so far
func (s *Simulation) Ticks() int64 { return s.ticks }
