// Command deadtown runs the zombie town simulation in a terminal
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/lixenwraith/deadtown/audio"
	"github.com/lixenwraith/deadtown/config"
	"github.com/lixenwraith/deadtown/core"
	"github.com/lixenwraith/deadtown/entity"
	"github.com/lixenwraith/deadtown/game"
	"github.com/lixenwraith/deadtown/maze"
	"github.com/lixenwraith/deadtown/parameter"
	"github.com/lixenwraith/deadtown/status"
	"github.com/lixenwraith/deadtown/tilemap"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	seedFlag   = flag.Int64("seed", 0, "Town and spawn seed (0 = random)")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/deadtown.log")
	statusAddr = flag.String("status-addr", "", "Serve /status and /grid on this address")
	muteFlag   = flag.Bool("mute", false, "Start with audio muted")
	mazeFlag   = flag.String("maze", "6x4", "Town size in blocks, WxH")
)

// Town shape in tiles
const (
	streetTiles   = 2
	buildingTiles = 4
	braiding      = 0.5
	wallLayer     = "walls"
)

// maxDelta caps catch-up after a stall so characters never tunnel through walls
const maxDelta = 3.0

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "deadtown needs an interactive terminal")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	bx, by, err := parseMaze(*mazeFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Flag -maze: %v\n", err)
		os.Exit(1)
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("seed %d, town %dx%d", seed, bx, by)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Panic Recovery: restore the terminal before printing the trace
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	reg := status.NewRegistry()

	sound := audio.NewSoundManager(cfg.Audio)
	if err := sound.Initialize(); err != nil {
		// Non-fatal, game runs silent
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sound.Cleanup()
	reg.Bools.Get(status.KeyAudioEnabled).Store(sound.IsInitialized() && !sound.IsMuted())

	input := newTerminalInput()
	view := newGlyphView(cfg.Map.TileSize, cfg.Map.CollisionSuffix, cfg.Map.AboveSuffix)

	sim, err := game.New(cfg, game.Deps{
		Input:     input,
		Drawables: view,
		Audio:     &meteredAudio{out: sound, last: reg.Strings.Get(status.KeyLastSound)},
		Camera:    view,
		Rand:      rand.New(rand.NewSource(seed)),
		Metrics:   reg,
		Logger:    log.Default(),
	})
	if err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Game: %v\n", err)
		os.Exit(1)
	}
	defer sim.Close()

	town := maze.Generate(maze.Config{
		BlocksX:  bx,
		BlocksY:  by,
		Street:   streetTiles,
		Building: buildingTiles,
		Braiding: braiding,
		Seed:     seed,
	})
	spawn := core.Vec{
		X: float64(town.Spawn.X) * cfg.Map.TileSize,
		Y: float64(town.Spawn.Y) * cfg.Map.TileSize,
	}
	// Load reports and logs its own degradation; the game still runs
	_ = sim.Load(game.MapData{
		Placements:  tilemap.FromTown(town, cfg.Map.TileSize, wallLayer+cfg.Map.CollisionSuffix),
		Frames:      characterFrames(),
		PlayerSpawn: &spawn,
	})

	if *statusAddr != "" {
		srv := &http.Server{Addr: *statusAddr, Handler: newStatusRouter(reg, sim.Grid())}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("status server: %v", err)
			}
		}()
		defer srv.Close()
	}

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			eventChan <- ev
		}
	})

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch input.HandleEvent(ev) {
				case ActionQuit:
					return
				case ActionMute:
					on := sound.ToggleMute()
					reg.Bools.Get(status.KeyAudioEnabled).Store(on && sound.IsInitialized())
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			delta := now.Sub(last).Seconds() * parameter.FramesPerSecond
			last = now
			sim.Tick(min(delta, maxDelta))
			view.Render(screen, hud(sim))
		}
	}
}

// parseMaze reads a WxH block count
func parseMaze(s string) (int, int, error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("want WxH, got %q", s)
	}
	bx, err := strconv.Atoi(w)
	if err != nil || bx < 1 {
		return 0, 0, fmt.Errorf("bad width %q", w)
	}
	by, err := strconv.Atoi(h)
	if err != nil || by < 1 {
		return 0, 0, fmt.Errorf("bad height %q", h)
	}
	return bx, by, nil
}

// characterFrames names the built-in glyph sheet in frame order
func characterFrames() entity.FrameSet {
	frames := make(entity.FrameSet, 0, parameter.FrameCount)
	frames = append(frames, "dead_0", "dead_1")
	for _, set := range []string{"human", "zombie"} {
		for _, facing := range []string{"forward", "left", "right", "backward"} {
			for step := 0; step < 3; step++ {
				frames = append(frames, fmt.Sprintf("%s_%s_%d", set, facing, step))
			}
		}
	}
	return frames
}

func hud(sim *game.Simulation) string {
	st := sim.State()
	switch st.Mode {
	case game.ModeLoading:
		return " DEADTOWN  loading"
	case game.ModeTitle:
		return " DEADTOWN  ENTER to start  WASD/arrows move  z toggle  m mute  q quit"
	case game.ModeGameOver:
		return fmt.Sprintf(" GAME OVER  score %d  survived %.0fs  r restart  t title  q quit", st.PlayerScore, st.ElapsedTime)
	}
	return fmt.Sprintf(" HP %3d/%d  SCORE %d  %4.0fs  zombies %d  humans %d",
		st.PlayerHealth, st.MaxHealth, st.PlayerScore, st.ElapsedTime, len(sim.Zombies()), len(sim.NPCs()))
}

// meteredAudio records the last sound name for the status endpoint
type meteredAudio struct {
	out  game.Audio
	last *status.AtomicString
}

func (m *meteredAudio) Play(id core.SoundType, opts core.PlayOptions) {
	m.last.Store(id.String())
	m.out.Play(id, opts)
}
