// Package invaders implements the fixed-formation shooter simulation.
//
// The engine is driven entirely by its collaborators: a core.Scheduler
// delivers ticks, a core.KeySource reports held keys, a core.Surface
// receives draw commands and a core.Prompter answers the victory question.
// All state is mutated from inside the tick callback or from the control
// methods, which callers must invoke from the same goroutine.
package invaders

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// VictoryMessage is the question asked once the formation is cleared.
const VictoryMessage = "All invaders defeated! Play again?"

// Deps are the external collaborators of a Game.
type Deps struct {
	Scheduler core.Scheduler // Required
	Keys      core.KeySource // Nil means no keys are ever held
	Surface   core.Surface   // Nil disables rendering
	Prompter  core.Prompter  // Nil answers every prompt with "no"
}

// Option configures optional Game behavior.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithRecorder sets where finished runs are reported.
func WithRecorder(r RunRecorder) Option {
	return func(g *Game) {
		g.recorder = r
	}
}

// Game owns every entity and the state machine.
type Game struct {
	cfg  config.InvadersConfig
	deps Deps

	// Entities
	player    Player
	enemies   []Enemy
	bullets   []Bullet
	formation FormationState
	input     InputMapper

	// State machine
	state State
	armed bool // A tick callback is registered with the scheduler

	// Current run
	run      runStats
	recorded bool // The current run has been reported

	logger   *log.Logger
	recorder RunRecorder
}

type runStats struct {
	ticks  uint64
	shots  int
	kills  int
	spawns int // Enemies created for this run
}

// New creates a game in StatePlaying with the default layout from cfg.
// The first tick is not requested until Start is called.
// Panics if deps.Scheduler is nil.
func New(cfg config.InvadersConfig, deps Deps, opts ...Option) *Game {
	if deps.Scheduler == nil {
		panic("invaders: Deps.Scheduler must not be nil")
	}
	if deps.Keys == nil {
		deps.Keys = core.NewInputFrame()
	}

	g := &Game{
		cfg:    cfg,
		deps:   deps,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.reset()
	return g
}

// reset rebuilds the round: fresh grid, no bullets, ship centered,
// formation moving right, state Playing.
func (g *Game) reset() {
	g.player = newPlayer(g.cfg)
	g.enemies = newGrid(g.cfg.Enemies)
	g.bullets = g.bullets[:0]
	g.formation = NewFormationState(g.cfg.Formation)
	g.state = StatePlaying
	g.run = runStats{spawns: len(g.enemies)}
	g.recorded = false
}

// Start requests the first tick. Calling it again while a tick is pending
// has no effect.
func (g *Game) Start() {
	g.logger.Debug("game started", "enemies", len(g.enemies))
	g.arm()
}

// arm registers the tick callback unless one is already pending.
func (g *Game) arm() {
	if g.armed || !g.state.Ticking() {
		return
	}
	g.armed = true
	g.deps.Scheduler.RequestTick(g.tick)
}

// setState moves the state machine along a legal edge.
func (g *Game) setState(to State) bool {
	if !canTransition(g.state, to) {
		g.logger.Debug("rejected transition", "from", g.state, "to", to)
		return false
	}
	g.logger.Debug("state transition", "from", g.state, "to", to)
	g.state = to
	return true
}

// Pause freezes the simulation. Returns false if the game is not playing.
func (g *Game) Pause() bool {
	return g.setState(StatePaused)
}

// Resume continues a paused game and re-arms the scheduler.
// Returns false if the game is not paused.
func (g *Game) Resume() bool {
	if !g.setState(StatePlaying) {
		return false
	}
	g.arm()
	return true
}

// TogglePause pauses a playing game or resumes a paused one.
func (g *Game) TogglePause() bool {
	if g.state == StatePaused {
		return g.Resume()
	}
	return g.Pause()
}

// Restart begins a fresh round from any state and resumes ticking.
// An unfinished run is reported as abandoned first.
func (g *Game) Restart() {
	g.recordAbandoned()
	g.logger.Debug("restart", "from", g.state)
	g.reset()
	g.arm()
}

// Finish reports the current run as abandoned if it was never completed.
// Call it when the frontend shuts down.
func (g *Game) Finish() {
	g.recordAbandoned()
}

// tick is the scheduler callback: one full simulation step.
func (g *Game) tick() {
	g.armed = false
	if !g.state.Ticking() {
		return
	}
	g.run.ticks++

	// Input: ship motion and fire requests
	if g.input.Map(g.deps.Keys, &g.player, g.cfg.Playfield.Width) {
		g.bullets = append(g.bullets, SpawnBullet(g.player, g.cfg.Bullet))
		g.run.shots++
	}

	// Bullets move before collision testing
	g.bullets = AdvanceBullets(g.bullets)

	// Formation
	if AdvanceFormation(g.enemies, &g.formation, g.cfg.Playfield.Width) {
		g.logger.Debug("formation reversed", "direction", g.formation.Direction, "tick", g.run.ticks)
	}

	// Collisions
	var hits int
	g.bullets, g.enemies, hits = ResolveCollisions(g.bullets, g.enemies)
	g.run.kills += hits

	g.checkInvariants()

	// Victory is decided in the same tick that clears the grid
	if len(g.enemies) == 0 {
		g.win()
	}

	g.render()
	g.arm()
}

// win enters StateWon and asks whether to play again.
func (g *Game) win() {
	if !g.setState(StateWon) {
		return
	}
	g.logger.Info("formation cleared", "ticks", g.run.ticks, "shots", g.run.shots)
	g.record(OutcomeWon)

	if g.deps.Prompter != nil && g.deps.Prompter.Confirm(VictoryMessage) {
		g.Restart()
	}
}

// State returns the current state.
func (g *Game) State() State {
	return g.state
}

// Status summarizes the game for frontends.
func (g *Game) Status() core.GameStatus {
	return core.GameStatus{
		State:       g.state.String(),
		Paused:      !g.state.Ticking(),
		Won:         g.state == StateWon,
		EnemiesLeft: len(g.enemies),
		Bullets:     len(g.bullets),
		Tick:        g.run.ticks,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Enemies returns a copy of the live enemies in creation order.
func (g *Game) Enemies() []Enemy {
	return append([]Enemy(nil), g.enemies...)
}

// Bullets returns a copy of the bullets in flight.
func (g *Game) Bullets() []Bullet {
	return append([]Bullet(nil), g.bullets...)
}

// Formation returns the formation state.
func (g *Game) Formation() FormationState {
	return g.formation
}
