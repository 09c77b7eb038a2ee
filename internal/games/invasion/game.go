package invasion

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
)

// GameID is the registry and score storage key.
const GameID = "invasion"

// State is the controller's top-level mode.
type State int

const (
	StateNotStarted State = iota // Start button shown, fleet parked
	StatePlaying                 // Simulation running
	StateRespawning              // Ship lost, waiting before play resumes
	StateGameOver                // No ships left, start button shown
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StatePlaying:
		return "playing"
	case StateRespawning:
		return "respawning"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Minimum playable screen size in cells.
const (
	minScreenW = 20
	minScreenH = 10
)

func init() {
	registry.Register(GameID, "Alien Invasion", func(opts registry.Options) (registry.Game, error) {
		return New(opts)
	})
}

// Game is the Alien Invasion controller. It owns every entity and all
// mutable state; nothing is shared between instances.
type Game struct {
	cfg      config.InvasionConfig
	settings config.Settings
	runtime  core.RuntimeConfig

	ship       *Ship
	bullets    []Bullet
	aliens     []Alien
	stats      Stats
	scoreboard *Scoreboard
	button     Button

	state        State
	paused       bool
	respawnTicks int
	tickCount    int

	screenTooSmall bool
}

// New loads the configuration named by opts and returns a game ready for Reset.
func New(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadInvasion(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		preset := config.ParsePreset(opts.Difficulty)
		if preset == "" {
			return nil, fmt.Errorf("invasion: unknown difficulty %q", opts.Difficulty)
		}
		config.ApplyInvasionPreset(&cfg, preset)
	}
	return NewWithConfig(cfg), nil
}

// NewWithConfig returns a game using an already resolved configuration.
func NewWithConfig(cfg config.InvasionConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Alien Invasion"
}

// Reset lays out a fresh, not yet started game for the given screen.
// The high score survives resets.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.settings = config.NewSettings(g.cfg, runtime.ScreenW, runtime.ScreenH)

	g.stats.Reset(g.settings.ShipLimit)
	g.ship = NewShip(g.settings)
	g.bullets = nil
	g.createFleet()
	g.button = NewButton(g.settings)
	g.scoreboard = NewScoreboard(&g.stats, g.settings.ShipColor)

	g.state = StateNotStarted
	g.paused = false
	g.respawnTicks = 0
	g.tickCount = 0
	g.checkScreenSize()
}

// Resize adapts the game to a new screen size without losing progress.
// The fleet is regenerated only while no game is running.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.settings.ScreenW = width
	g.settings.ScreenH = height

	g.ship.Rect.Y = height - g.ship.Rect.H
	g.ship.X = core.ClampF(g.ship.X, 0, float64(max(width-g.ship.Rect.W, 0)))
	g.ship.Rect.X = core.ToCell(g.ship.X)
	g.button = NewButton(g.settings)

	if !g.active() {
		g.ship.Center(g.settings)
		g.createFleet()
	}
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	s := g.settings
	layout := LayoutFleet(s.ScreenW, s.ScreenH, s.AlienW, s.AlienH, s.ShipH)
	g.screenTooSmall = s.ScreenW < minScreenW || s.ScreenH < minScreenH || layout.Size() == 0 ||
		!g.ship.Rect.Within(s.ScreenW, s.ScreenH)
}

// active reports whether a game is in progress.
func (g *Game) active() bool {
	return g.state == StatePlaying || g.state == StateRespawning
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++

	switch g.state {
	case StateNotStarted, StateGameOver:
		if !g.startRequested(in) {
			return core.StepResult{State: g.State()}
		}
		g.startGame()

	case StateRespawning:
		g.applySteering(in)
		g.respawnTicks--
		if g.respawnTicks <= 0 {
			g.state = StatePlaying
		}
		return core.StepResult{State: g.State()}

	case StatePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
	}

	if g.paused {
		g.applySteering(in)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionFire) {
		g.fireBullet()
	}
	g.applySteering(in)

	g.ship.Update(g.settings)
	g.updateBullets()
	if g.state == StatePlaying {
		g.updateAliens()
	}

	return core.StepResult{State: g.State()}
}

// startRequested reports whether the input asks to begin a game.
func (g *Game) startRequested(in core.InputFrame) bool {
	if in.Has(core.ActionConfirm) || in.Has(core.ActionPause) {
		return true
	}
	for _, c := range in.Clicks {
		if g.button.Hit(c.X, c.Y) {
			return true
		}
	}
	return false
}

// applySteering sets movement flags from presses, then clears them on releases.
func (g *Game) applySteering(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.ship.Movement |= MovingLeft
	}
	if in.Has(core.ActionRight) {
		g.ship.Movement |= MovingRight
	}
	if in.WasReleased(core.ActionLeft) {
		g.ship.Movement &^= MovingLeft
	}
	if in.WasReleased(core.ActionRight) {
		g.ship.Movement &^= MovingRight
	}
}

// startGame begins a new game from the idle or game over screen.
func (g *Game) startGame() {
	g.settings = g.settings.InitializeDynamic()
	g.stats.Reset(g.settings.ShipLimit)
	g.scoreboard.PrepAll(&g.stats)

	g.state = StatePlaying
	g.paused = false
	g.respawnTicks = 0
	g.ship.Movement = Idle
	g.startNewShip()
}

// startNewShip clears the field, brings in a fresh fleet and recenters the ship.
func (g *Game) startNewShip() {
	g.bullets = nil
	g.createFleet()
	g.ship.Center(g.settings)
}

// createFleet fills the alien slice from the layout for the current screen.
func (g *Game) createFleet() {
	s := g.settings
	layout := LayoutFleet(s.ScreenW, s.ScreenH, s.AlienW, s.AlienH, s.ShipH)
	g.aliens = make([]Alien, 0, layout.Size())
	for _, p := range layout.Origins {
		g.aliens = append(g.aliens, NewAlien(s, p.X, p.Y))
	}
}

// fireBullet adds a bullet when fewer than the allowed number are in flight.
func (g *Game) fireBullet() {
	if len(g.bullets) >= g.settings.BulletsAllowed {
		return
	}
	g.bullets = append(g.bullets, NewBullet(g.settings, g.ship))
}

// updateBullets moves bullets, resolves hits along their paths and drops
// those that left the screen. Hits come first: a fast bullet can end the tick
// above the screen after crossing an alien.
func (g *Game) updateBullets() {
	for i := range g.bullets {
		g.bullets[i].Update(g.settings)
	}
	g.checkBulletAlienCollisions()

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if !b.OffScreen() {
			kept = append(kept, b)
		}
	}
	g.bullets = kept
}

// checkBulletAlienCollisions finds every bullet/alien overlap, scores them,
// then removes the hit entities. Each alien is credited to one bullet.
func (g *Game) checkBulletAlienCollisions() {
	deadBullets := make([]bool, len(g.bullets))
	deadAliens := make([]bool, len(g.aliens))
	hits := 0

	for bi, b := range g.bullets {
		for ai, a := range g.aliens {
			if deadAliens[ai] || !b.Swept().Intersects(a.Rect) {
				continue
			}
			deadBullets[bi] = true
			deadAliens[ai] = true
			hits++
		}
	}

	if hits > 0 {
		g.bullets = retain(g.bullets, deadBullets)
		g.aliens = retain(g.aliens, deadAliens)

		g.stats.AddPoints(g.settings.AlienPoints * hits)
		g.scoreboard.PrepScore(&g.stats)
		g.scoreboard.CheckHighScore(&g.stats)
	}

	if len(g.aliens) == 0 {
		g.bullets = nil
		g.createFleet()
		g.settings = g.settings.IncreaseSpeed()
		g.stats.Level++
		g.scoreboard.PrepLevel(&g.stats)
	}
}

// retain returns the items whose dead flag is false, in order.
func retain[T any](items []T, dead []bool) []T {
	kept := make([]T, 0, len(items))
	for i, item := range items {
		if !dead[i] {
			kept = append(kept, item)
		}
	}
	return kept
}

// updateAliens steers the fleet, moves it and checks for a ship loss.
func (g *Game) updateAliens() {
	g.checkFleetEdges()
	for i := range g.aliens {
		g.aliens[i].Update(g.settings)
	}

	for _, a := range g.aliens {
		if a.Rect.Intersects(g.ship.Rect) || a.Rect.Bottom() >= g.settings.ScreenH {
			g.shipHit()
			return
		}
	}
}

// checkFleetEdges drops the fleet and reverses it when any alien reaches
// the edge it is heading toward.
func (g *Game) checkFleetEdges() {
	for _, a := range g.aliens {
		if a.AtEdge(g.settings) {
			g.changeFleetDirection()
			return
		}
	}
}

func (g *Game) changeFleetDirection() {
	for i := range g.aliens {
		g.aliens[i].Rect.Y += g.settings.FleetDropSpeed
	}
	g.settings.FleetDirection *= -1
}

// shipHit spends a ship. With ships remaining the field is reset and play
// resumes after the respawn delay; otherwise the game ends where it stands.
func (g *Game) shipHit() {
	g.stats.ShipsLeft--
	g.scoreboard.PrepShips(&g.stats)

	if g.stats.ShipsLeft <= 0 {
		g.stats.ShipsLeft = 0
		g.state = StateGameOver
		g.paused = false
		return
	}

	g.startNewShip()
	g.respawnTicks = g.settings.RespawnTicks(g.runtime.TickRate)
	if g.respawnTicks > 0 {
		g.state = StateRespawning
	}
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.SetBackground(g.settings.Background)
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Screen too small!")
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	for _, a := range g.aliens {
		drawSprite(dst, a.Rect, AlienGlyph, g.settings.AlienColor)
	}
	for _, b := range g.bullets {
		dst.DrawRectColor(b.Rect, BulletGlyph, g.settings.BulletColor)
	}
	drawSprite(dst, g.ship.Rect, ShipGlyph, g.settings.ShipColor)

	g.scoreboard.Render(dst)

	switch g.state {
	case StateNotStarted:
		g.button.Render(dst)
	case StateGameOver:
		if y := g.button.Rect.Y - 2; y >= 0 {
			dst.DrawTextCentered(y, "GAME OVER")
		}
		g.button.Render(dst)
	case StateRespawning:
		dst.DrawTextCentered(dst.Height()/2, "Get ready!")
	case StatePlaying:
		if g.paused {
			g.renderPaused(dst)
		}
	}
}

func (g *Game) renderPaused(dst *core.Screen) {
	const label = "PAUSED"
	box := core.NewRect((dst.Width()-len(label)-4)/2, dst.Height()/2-1, len(label)+4, 3)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(dst.Height()/2, label)
}

// drawSprite fills r row by row from glyph, padding short rows with blocks.
func drawSprite(dst *core.Screen, r core.Rect, glyph []string, c core.Color) {
	for dy := range r.H {
		var row []rune
		if len(glyph) > 0 {
			row = []rune(glyph[dy%len(glyph)])
		}
		for dx := range r.W {
			ch := '█'
			if dx < len(row) {
				ch = row[dx]
			}
			if ch == ' ' {
				continue
			}
			dst.SetWithColor(r.X+dx, r.Y+dy, ch, c)
		}
	}
}

// State returns the score and status reported to the platform.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.stats.Score,
		GameOver: g.state == StateGameOver,
		Paused:   g.paused,
	}
}

// Current returns the controller's mode.
func (g *Game) Current() State {
	return g.state
}

// Level returns the current level, starting at 1.
func (g *Game) Level() int {
	return g.stats.Level
}

// ShipsLeft returns the number of remaining ships.
func (g *Game) ShipsLeft() int {
	return g.stats.ShipsLeft
}

// HighScore returns the best score seen in this process, including any seed.
func (g *Game) HighScore() int {
	return g.stats.HighScore
}

// SeedHighScore merges a persisted high score into the game.
func (g *Game) SeedHighScore(score int) {
	g.stats.SeedHighScore(score)
	g.scoreboard.PrepHighScore(&g.stats)
}

// CursorVisible reports whether the pointer should be shown.
// It is hidden for the whole of a running game.
func (g *Game) CursorVisible() bool {
	return !g.active()
}

// Settings returns the resolved settings in effect.
func (g *Game) Settings() config.Settings {
	return g.settings
}
