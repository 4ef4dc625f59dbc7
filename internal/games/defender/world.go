// Package defender implements the simulation of a side-scrolling shooter on
// a repeating world: a player craft, enemies that abduct ground persons,
// projectiles, hit resolution and a wave scheduler.
//
// World holds all state and advances in fixed steps. It never reads the
// clock and draws every random number from an injected Rand, so two worlds
// built with equal configs and equally seeded sources evolve identically.
package defender

import (
	"github.com/vovakirdan/tui-defender/internal/config"
	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/ecs"
	"github.com/vovakirdan/tui-defender/internal/hit"
	"github.com/vovakirdan/tui-defender/internal/world"
)

// Rand is the random source used by the simulation. *math/rand.Rand
// satisfies it.
type Rand interface {
	Float64() float64
}

// Mode is the top-level simulation mode.
type Mode int

const (
	ModeRunning Mode = iota
	ModePaused
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModePaused {
		return "paused"
	}
	return "running"
}

// Hit categories.
type (
	laserHit  struct{}
	orbHit    struct{}
	playerHit struct{}
)

// Stats counts notable events of the current round.
type Stats struct {
	Kills       int
	Rescues     int
	PersonsLost int
	Mutations   int
	Captures    int
}

// World is the complete simulation state.
type World struct {
	cfg        config.DefenderConfig
	rng        Rand
	difficulty *config.DifficultyManager
	size       float64

	reg         *ecs.Registry
	positions   *ecs.Store[core.Vec2]
	projectiles *ecs.Store[Projectile]
	enemies     *ecs.Store[Enemy]
	persons     *ecs.Store[Person]
	player      ecs.Entity
	ship        Ship

	enemyByLaser   *hit.Table[laserHit]
	enemyByPlayer  *hit.Table[playerHit]
	playerByOrb    *hit.Table[orbHit]
	personByLaser  *hit.Table[laserHit]
	personByPlayer *hit.Table[playerHit]

	camera core.Vec2
	scroll world.Scroll

	tick    uint64
	elapsed float64
	mode    Mode
	score   int
	wave    int
	count   int // live enemies of the current wave

	gameOverPending bool
	gameOverAt      float64
	over            bool

	stats Stats
	frame Frame
}

// NewWorld creates an empty, paused world with the camera at the center of
// the first window. Call Start to spawn the player and begin a round.
func NewWorld(cfg config.DefenderConfig, rng Rand) *World {
	w := &World{
		cfg:            cfg,
		rng:            rng,
		difficulty:     config.NewDifficultyManager(cfg.Difficulty),
		size:           cfg.WorldSize(),
		reg:            ecs.NewRegistry(),
		positions:      ecs.NewStore[core.Vec2](),
		projectiles:    ecs.NewStore[Projectile](),
		enemies:        ecs.NewStore[Enemy](),
		persons:        ecs.NewStore[Person](),
		enemyByLaser:   hit.NewTable[laserHit](),
		enemyByPlayer:  hit.NewTable[playerHit](),
		playerByOrb:    hit.NewTable[orbHit](),
		personByLaser:  hit.NewTable[laserHit](),
		personByPlayer: hit.NewTable[playerHit](),
		camera:         core.V(cfg.Window.Width/2, cfg.Window.Height/2),
		mode:           ModePaused,
	}
	w.scroll = world.NewScroll(w.size, w.camera.X)
	return w
}

// Start begins a new round: the player spawns at the camera, enemies and
// projectiles are cleared and counters reset. Persons are kept.
func (w *World) Start() {
	for _, e := range w.enemies.Entities() {
		w.despawn(e)
	}
	for _, e := range w.projectiles.Entities() {
		w.despawn(e)
	}
	if w.player != ecs.None {
		w.despawn(w.player)
	}
	w.spawnPlayer(w.camera)

	w.count = 0
	w.wave = 0
	w.score = 0
	w.stats = Stats{}
	w.gameOverPending = false
	w.over = false
	w.mode = ModeRunning
}

// TogglePause flips between running and paused while a round is live.
// It returns false when nothing changed.
func (w *World) TogglePause() bool {
	if w.over || w.player == ecs.None {
		return false
	}
	if w.mode == ModeRunning {
		w.mode = ModePaused
	} else {
		w.mode = ModeRunning
	}
	return true
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.DefenderConfig { return w.cfg }

// Mode returns the current mode.
func (w *World) Mode() Mode { return w.mode }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Wave returns the current wave number. It is 0 before the first wave.
func (w *World) Wave() int { return w.wave }

// ActiveEnemies returns the number of live enemies in the current wave.
func (w *World) ActiveEnemies() int { return w.count }

// Elapsed returns the simulated time in seconds.
func (w *World) Elapsed() float64 { return w.elapsed }

// Tick returns the number of steps simulated while running.
func (w *World) Tick() uint64 { return w.tick }

// Camera returns the camera position.
func (w *World) Camera() core.Vec2 { return w.camera }

// Over reports whether the round has ended.
func (w *World) Over() bool { return w.over }

// Stats returns the counters of the current round.
func (w *World) Stats() Stats { return w.stats }

// PlayerAlive reports whether the player exists.
func (w *World) PlayerAlive() bool { return w.player != ecs.None }

// PlayerPos returns the player position.
func (w *World) PlayerPos() (core.Vec2, bool) {
	if w.player == ecs.None {
		return core.Vec2{}, false
	}
	return w.position(w.player)
}

// Persons returns the number of persons alive.
func (w *World) Persons() int { return w.persons.Len() }

// Projectiles returns the number of projectiles alive.
func (w *World) Projectiles() int { return w.projectiles.Len() }

// State returns the platform-level state.
func (w *World) State() core.GameState {
	return core.GameState{
		Score:    w.score,
		Wave:     w.wave,
		GameOver: w.over,
		Paused:   w.mode == ModePaused && !w.over,
	}
}

// position looks up the position of any entity.
func (w *World) position(e ecs.Entity) (core.Vec2, bool) {
	p, ok := w.positions.Get(e)
	if !ok {
		return core.Vec2{}, false
	}
	return *p, true
}

// viewport is the visible area around the camera.
func (w *World) viewport() core.Box {
	return core.NewBox(w.camera, core.V(w.cfg.Window.Width, w.cfg.Window.Height))
}

// playfieldTop is the highest y available to craft.
func (w *World) playfieldTop() float64 {
	return w.cfg.PlayfieldTop()
}

// confine clamps y into the playfield band.
func (w *World) confine(p *core.Vec2) {
	off := w.cfg.Window.BorderOffset
	p.Y = core.ClampF(p.Y, off, w.playfieldTop()-off)
}

// despawn removes e from every store and hit table.
func (w *World) despawn(e ecs.Entity) {
	w.positions.Remove(e)
	w.projectiles.Remove(e)
	w.enemies.Remove(e)
	w.persons.Remove(e)
	w.enemyByLaser.Remove(e)
	w.enemyByPlayer.Remove(e)
	w.playerByOrb.Remove(e)
	w.personByLaser.Remove(e)
	w.personByPlayer.Remove(e)
	if e == w.player {
		w.player = ecs.None
		w.ship = Ship{}
	}
}

// reproject moves every mobile entity onto the representation nearest the
// camera.
func (w *World) reproject() {
	wrap := func(e ecs.Entity) {
		if p, ok := w.positions.Get(e); ok {
			p.X = w.scroll.Update(p.X)
		}
	}
	for _, e := range w.enemies.Entities() {
		wrap(e)
	}
	for _, e := range w.persons.Entities() {
		wrap(e)
	}
	for _, e := range w.projectiles.Entities() {
		wrap(e)
	}
}
