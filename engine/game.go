// Package engine runs the snake session: phases, the tick step, the boost and the frame loop
package engine

import (
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/vi-snake/collision"
	"github.com/lixenwraith/vi-snake/constant"
	"github.com/lixenwraith/vi-snake/event"
	"github.com/lixenwraith/vi-snake/food"
	"github.com/lixenwraith/vi-snake/grid"
	"github.com/lixenwraith/vi-snake/particle"
	"github.com/lixenwraith/vi-snake/persistence"
	"github.com/lixenwraith/vi-snake/score"
	"github.com/lixenwraith/vi-snake/snake"
	"github.com/lixenwraith/vi-snake/status"
)

// maxPendingDirections bounds the intent queue between two steps
const maxPendingDirections = 16

// Game over reasons
const (
	ReasonWall      = "WALL"
	ReasonSelf      = "SELF"
	ReasonBoardFull = "BOARD_FULL"
)

// Notice texts
const (
	NoticeDouble  = "+20!"
	NoticeSpeed   = "Speed!"
	NoticeLevelUp = "Level Up!"
)

// Config holds the collaborators injected into a Game
// Nil collaborators are skipped, nil sources use defaults
type Config struct {
	Grid         grid.Grid
	Clock        *PausableClock
	Renderer     Renderer
	Audio        AudioCue
	Store        persistence.Store
	Status       *status.Registry
	FoodRand     food.RandSource
	ParticleRand particle.Source
}

// Game owns one snake session and the phase machine around it
//
// Frame is the single driver: it drains queued direction intents, steps the
// simulation when due, dispatches events and renders. Commands serialize with
// Frame on mu so they never observe a half-evaluated tick.
type Game struct {
	frameMu sync.Mutex
	mu      sync.Mutex

	grid      grid.Grid
	clock     *PausableClock
	spawner   *food.Spawner
	snake     *snake.Snake
	tracker   *score.Tracker
	boost     *score.Boost
	particles *particle.System

	difficulty score.Difficulty
	phase      Phase
	phaseStart time.Time
	overlay    Overlay

	pending    []grid.Direction
	lastUpdate time.Time
	interval   time.Duration
	ticks      uint64
	foodEaten  int
	reason     string

	highScore    int
	newHighScore bool

	// Set once the stored copy was read, saves are skipped until then
	highScoreLoaded bool
	statsLoaded     bool

	leaderboard []persistence.LeaderboardEntry
	stats       persistence.Stats

	notice      string
	noticeUntil time.Time

	queue  *event.Queue
	router *event.Router

	renderer Renderer
	audio    AudioCue
	store    persistence.Store

	statTicks      *atomic.Int64
	statFrames     *atomic.Int64
	statFoodEaten  *atomic.Int64
	statSaveFailed *atomic.Int64
	statPhase      *status.Text
}

// NewGame creates a game in the Menu phase and loads the stored high score
func NewGame(cfg Config) *Game {
	if cfg.Grid.Cols <= 0 || cfg.Grid.Rows <= 0 {
		cfg.Grid = grid.New(constant.GridCols, constant.GridRows)
	}
	if cfg.Clock == nil {
		cfg.Clock = NewPausableClock(nil)
	}
	if cfg.Status == nil {
		cfg.Status = status.NewRegistry()
	}

	queue := event.NewQueue()
	g := &Game{
		grid:       cfg.Grid,
		clock:      cfg.Clock,
		spawner:    food.NewSpawner(cfg.Grid, cfg.FoodRand),
		tracker:    score.NewTracker(constant.LevelUpScore),
		boost:      score.NewBoost(constant.BoostMultiplier),
		particles:  particle.NewSystem(cfg.ParticleRand),
		difficulty: score.Normal,
		phase:      PhaseMenu,
		pending:    make([]grid.Direction, 0, maxPendingDirections),
		stats:      persistence.DefaultStats(),
		queue:      queue,
		router:     event.NewRouter(queue),
		renderer:   cfg.Renderer,
		audio:      cfg.Audio,
		store:      cfg.Store,

		statTicks:      cfg.Status.Counter(status.MetricTicks),
		statFrames:     cfg.Status.Counter(status.MetricFrames),
		statFoodEaten:  cfg.Status.Counter(status.MetricFoodEaten),
		statSaveFailed: cfg.Status.Counter(status.MetricSaveFailed),
		statPhase:      cfg.Status.Label(status.MetricPhase),
	}
	g.snake = snake.New(g.grid.Center(), constant.InitialSnakeLength, grid.Right)
	g.phaseStart = g.clock.Now()
	g.statPhase.Store(g.phase.String())

	if g.audio != nil {
		g.router.Register(event.HandlerFunc{
			Types: []event.Type{event.EventFoodEaten, event.EventLevelUp, event.EventGameOver},
			Fn:    g.playCue,
		})
	}

	g.loadPersisted()
	return g
}

// errNotLoaded marks a save skipped because the stored value was never read
var errNotLoaded = errors.New("stored value not loaded, keeping it")

// loadPersisted reads the high score and stats, keeping defaults on failure
// A failed read is retried at the next game over before anything is written back
func (g *Game) loadPersisted() {
	if g.store == nil {
		g.highScoreLoaded, g.statsLoaded = true, true
		return
	}
	g.loadHighScoreLocked()
	g.loadStatsLocked()
}

func (g *Game) loadHighScoreLocked() {
	hs, err := g.store.LoadHighScore()
	switch {
	case err == nil:
		g.highScore = max(g.highScore, hs)
	case errors.Is(err, persistence.ErrNotFound):
	default:
		log.Printf("engine: load high score: %v", err)
		return
	}
	g.highScoreLoaded = true
}

func (g *Game) loadStatsLocked() {
	stats, err := g.store.LoadStats()
	switch {
	case err == nil:
		g.stats = stats
	case errors.Is(err, persistence.ErrNotFound):
		g.stats = persistence.DefaultStats()
	default:
		log.Printf("engine: load stats: %v", err)
		return
	}
	g.statsLoaded = true
}

// RegisterEventHandler adds a handler to the router, must be called before the loop starts
func (g *Game) RegisterEventHandler(h event.Handler) {
	g.router.Register(h)
}

func (g *Game) playCue(ev event.Event) {
	switch ev.Type {
	case event.EventFoodEaten:
		g.audio.Play(CueEat)
	case event.EventLevelUp:
		g.audio.Play(CueLevelUp)
	case event.EventGameOver:
		g.audio.Play(CueGameOver)
	}
}

// Start begins a session from the menu
func (g *Game) Start(d score.Difficulty) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !CanTransition(g.phase, PhasePlaying) || g.phase == PhasePaused {
		return false
	}
	g.startSessionLocked(d)
	return true
}

// Reset discards the current session and starts a fresh one with d
func (g *Game) Reset(d score.Difficulty) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.startSessionLocked(d)
}

// Restart resets with the current difficulty
func (g *Game) Restart() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.startSessionLocked(g.difficulty)
}

func (g *Game) startSessionLocked(d score.Difficulty) {
	g.difficulty = d
	g.snake = snake.New(g.grid.Center(), constant.InitialSnakeLength, grid.Right)
	g.tracker.Reset()
	g.boost.Clear()
	g.particles.Clear()
	g.pending = g.pending[:0]
	g.ticks = 0
	g.foodEaten = 0
	g.reason = ""
	g.newHighScore = false
	g.notice = ""
	g.overlay = OverlayNone
	g.interval = score.CalculateSpeed(1, d)

	if _, err := g.spawner.Generate(g.snake); err != nil {
		log.Printf("engine: initial food: %v", err)
	}

	g.clock.Resume()
	g.lastUpdate = g.clock.Now()
	g.setPhaseLocked(PhasePlaying)

	ev := event.New(event.EventGameStart)
	ev.Difficulty = d.Key
	ev.HighScore = g.highScore
	ev.Level = 1
	g.queue.Push(ev)
}

func (g *Game) setPhaseLocked(p Phase) {
	g.phase = p
	g.phaseStart = g.clock.Now()
	g.statPhase.Store(p.String())
}

// TogglePause switches between Playing and Paused, no-op in other phases
// Resuming resets the last update so paused time never counts toward a step
func (g *Game) TogglePause() {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.phase {
	case PhasePlaying:
		g.clock.Pause()
		g.setPhaseLocked(PhasePaused)
		g.pushLocked(event.EventPaused)
	case PhasePaused:
		g.clock.Resume()
		g.lastUpdate = g.clock.Now()
		g.setPhaseLocked(PhasePlaying)
		g.pushLocked(event.EventResumed)
	}
}

// ReturnToMenu abandons the session without recording it
func (g *Game) ReturnToMenu() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase == PhaseMenu {
		g.overlay = OverlayNone
		return true
	}
	if !CanTransition(g.phase, PhaseMenu) {
		return false
	}
	g.clock.Resume()
	g.pending = g.pending[:0]
	g.overlay = OverlayNone
	g.setPhaseLocked(PhaseMenu)
	g.pushLocked(event.EventMenu)
	return true
}

// SubmitDirection queues a directional intent for the next step
// Ignored outside Playing and Paused; reversal is rejected when the step applies it
func (g *Game) SubmitDirection(d grid.Direction) {
	if !d.Valid() {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.phase.AcceptsDirection() {
		return
	}
	if len(g.pending) == maxPendingDirections {
		copy(g.pending, g.pending[1:])
		g.pending = g.pending[:maxPendingDirections-1]
	}
	g.pending = append(g.pending, d)
}

// ToggleMute flips audio mute when the audio collaborator supports it
func (g *Game) ToggleMute() bool {
	if m, ok := g.audio.(Muter); ok {
		return m.ToggleMute()
	}
	return false
}

// Muted reports the audio mute state
func (g *Game) Muted() bool {
	if m, ok := g.audio.(Muter); ok {
		return m.IsMuted()
	}
	return true
}

// Frame runs one frame: particles, the step if due, event dispatch, then the draw
// Frames never overlap
func (g *Game) Frame() {
	g.frameMu.Lock()
	defer g.frameMu.Unlock()

	g.mu.Lock()
	g.particles.Update()
	if g.phase == PhasePlaying {
		g.stepIfDueLocked(g.clock.Now())
	}
	g.statFrames.Add(1)
	state := g.snapshotLocked()
	g.mu.Unlock()

	g.router.DispatchAll()

	if g.renderer != nil {
		g.renderer.DrawFrame(state)
	}
}

// StepIfDue advances one step when the effective interval has elapsed since the last update
func (g *Game) StepIfDue(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.stepIfDueLocked(now)
}

func (g *Game) stepIfDueLocked(now time.Time) bool {
	if g.phase != PhasePlaying {
		return false
	}
	if now.Sub(g.lastUpdate) < g.effectiveIntervalLocked(now) {
		return false
	}
	g.stepLocked(now)
	return true
}

// Step advances exactly one step at the current game time, regardless of the interval
// Returns false outside Playing
func (g *Game) Step() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.phase != PhasePlaying {
		return false
	}
	g.stepLocked(g.clock.Now())
	return true
}

// DispatchEvents routes queued events to handlers, Frame does this after every step
func (g *Game) DispatchEvents() int {
	return g.router.DispatchAll()
}

func (g *Game) effectiveIntervalLocked(now time.Time) time.Duration {
	return g.boost.Apply(g.interval, now)
}

// stepLocked is one tick: apply intents, move, resolve collisions
func (g *Game) stepLocked(now time.Time) {
	for _, d := range g.pending {
		g.snake.ChangeDirection(d)
	}
	g.pending = g.pending[:0]

	g.snake.Move()
	g.ticks++
	g.statTicks.Add(1)

	switch outcome := collision.Resolve(g.snake, g.spawner.Current(), g.grid); outcome {
	case collision.Wall:
		g.gameOverLocked(ReasonWall)
		return
	case collision.Self:
		g.gameOverLocked(ReasonSelf)
		return
	case collision.Food:
		if !g.eatFoodLocked(now) {
			return
		}
	}
	g.lastUpdate = now
}

// eatFoodLocked applies the consumed food, returns false if the session ended
func (g *Game) eatFoodLocked(now time.Time) bool {
	f := g.spawner.Current()
	points := f.Type.Points()

	g.snake.Grow()
	leveledUp := g.tracker.Add(points)
	g.foodEaten++
	g.statFoodEaten.Add(1)

	ev := event.New(event.EventFoodEaten)
	ev.FoodType = f.Type.String()
	ev.Points = points
	g.pushScoredLocked(ev)

	switch f.Type {
	case food.Double:
		g.noticeLocked(NoticeDouble)
	case food.Speed:
		g.boost.Activate(now, constant.BoostDuration)
		g.pushLocked(event.EventBoostStart)
		g.noticeLocked(NoticeSpeed)
	}

	if leveledUp {
		g.pushScoredLocked(event.New(event.EventLevelUp))
		g.noticeLocked(NoticeLevelUp)
	}
	g.interval = score.CalculateSpeed(g.tracker.Level(), g.difficulty)

	g.particles.Explode(f.Position.X, f.Position.Y, particle.Kind(f.Type))

	if _, err := g.spawner.Generate(g.snake); err != nil {
		if errors.Is(err, food.ErrBoardFull) {
			g.gameOverLocked(ReasonBoardFull)
			return false
		}
		log.Printf("engine: generate food: %v", err)
	}
	return true
}

// gameOverLocked ends the session and records it
func (g *Game) gameOverLocked(reason string) {
	g.reason = reason
	g.setPhaseLocked(PhaseGameOver)
	g.pending = g.pending[:0]

	if !g.highScoreLoaded {
		g.loadHighScoreLocked()
	}
	if !g.statsLoaded {
		g.loadStatsLocked()
	}

	final := g.tracker.Score()
	if final > g.highScore {
		g.highScore = final
		g.newHighScore = true
	}
	g.recordLocked(final)

	ev := event.New(event.EventGameOver)
	ev.Reason = reason
	ev.NewHighScore = g.newHighScore
	ev.Difficulty = g.difficulty.Key
	g.pushScoredLocked(ev)
}

// recordLocked persists the finished session, failures are logged, counted and dropped
// Values whose stored copy could not be read are never overwritten
func (g *Game) recordLocked(final int) {
	level := g.tracker.Level()
	g.stats = persistence.ApplyGame(g.stats, persistence.GameResult{
		Score:      final,
		Difficulty: g.difficulty.Key,
		Level:      level,
		FoodEaten:  g.foodEaten,
	})

	if g.store == nil {
		return
	}
	if g.newHighScore {
		if !g.highScoreLoaded {
			g.saveFailedLocked("high score", errNotLoaded)
		} else if err := g.store.SaveHighScore(final); err != nil {
			g.saveFailedLocked("high score", err)
		}
	}
	if top, err := g.store.AddLeaderboardEntry(final, g.difficulty.Key, level); err != nil {
		g.saveFailedLocked("leaderboard", err)
	} else {
		g.leaderboard = top
	}
	if !g.statsLoaded {
		g.saveFailedLocked("stats", errNotLoaded)
	} else if err := g.store.SaveStats(g.stats); err != nil {
		g.saveFailedLocked("stats", err)
	}
}

func (g *Game) saveFailedLocked(what string, err error) {
	g.statSaveFailed.Add(1)
	log.Printf("engine: save %s: %v", what, err)
}

func (g *Game) pushLocked(t event.Type) {
	g.pushScoredLocked(event.New(t))
}

// pushScoredLocked stamps the event with the session counters and queues it
func (g *Game) pushScoredLocked(ev event.Event) {
	ev.Tick = g.ticks
	ev.Score = g.tracker.Score()
	ev.Level = g.tracker.Level()
	if ev.HighScore == 0 {
		ev.HighScore = g.highScore
	}
	g.queue.Push(ev)
}

func (g *Game) noticeLocked(text string) {
	g.notice = text
	g.noticeUntil = g.clock.RealTime().Add(constant.NoticeDuration)

	ev := event.New(event.EventNotice)
	ev.Text = text
	g.pushScoredLocked(ev)
}
