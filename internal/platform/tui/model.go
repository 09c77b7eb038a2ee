package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

// Options are the side-effect dependencies of a Model. All are optional.
type Options struct {
	Store  *storage.Store          // Score history
	Keeper storage.HighScoreKeeper // Persistent high score
	Logger *log.Logger
	Player string // Recorded in logs, e.g. the SSH user
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	keeper     storage.HighScoreKeeper
	logger     *log.Logger
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	cursorOn   bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a Bubble Tea model for the given game. The game is reset
// to the configured screen and seeded with the persisted high score.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      opts.Store,
		keeper:     opts.Keeper,
		logger:     logger,
		player:     opts.Player,
		config:     cfg,
		keys:       NewKeyMapper(),
		hold:       NewHoldTracker(DefaultInitialHold, DefaultRepeatHold),
		inputFrame: core.NewInputFrame(),
	}

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.loadHighScore()
	m.cursorOn = m.wantCursor()
	return m
}

func (m *Model) loadHighScore() {
	hs, ok := m.game.(registry.HighScorer)
	if !ok || m.keeper == nil {
		return
	}

	score, err := m.keeper.LoadHighScore()
	if err != nil {
		m.logger.Warn("could not load high score", "error", err)
		return
	}
	hs.SeedHighScore(score)
	m.logger.Debug("high score loaded", "score", score)
}

// flushHighScore writes the session high score. The keeper keeps the max.
func (m Model) flushHighScore() {
	hs, ok := m.game.(registry.HighScorer)
	if !ok || m.keeper == nil {
		return
	}

	if err := m.keeper.SaveHighScore(hs.HighScore()); err != nil {
		m.logger.Error("could not save high score", "error", err)
		return
	}
	m.logger.Debug("high score saved", "score", hs.HighScore())
}

func (m Model) wantCursor() bool {
	if ch, ok := m.game.(registry.CursorHider); ok {
		return ch.CursorVisible()
	}
	return false
}

func cursorCmd(visible bool) tea.Cmd {
	if visible {
		return tea.ShowCursor
	}
	return tea.HideCursor
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.config.TickRate), cursorCmd(m.cursorOn))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.flushHighScore()
		return m, tea.Batch(tea.ShowCursor, tea.Quit)
	}

	switch {
	case action == core.ActionNone:
	case IsSteering(action):
		m.hold.Press(action, time.Now(), &m.inputFrame)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleMouse records left clicks in cell coordinates.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.inputFrame.Click(msg.X, msg.Y)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(msg.Width, msg.Height)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.hold.Expire(now, &m.inputFrame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if wasOver && !m.gameState.GameOver {
		m.scoreSaved = false
	}
	if m.gameState.GameOver && !m.scoreSaved {
		m.recordGameOver()
		m.hold.ReleaseAll(&m.inputFrame)
		m.scoreSaved = true
	}

	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if want := m.wantCursor(); want != m.cursorOn {
		m.cursorOn = want
		cmds = append(cmds, cursorCmd(want))
	}
	return m, tea.Batch(cmds...)
}

// recordGameOver stores the finished game and flushes the high score.
func (m Model) recordGameOver() {
	score := m.gameState.Score
	level := 1
	if lv, ok := m.game.(registry.Leveled); ok {
		level = lv.Level()
	}
	m.logger.Info("game over", "player", m.player, "score", score, "level", level)

	if m.store != nil && score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), score, level); err != nil {
			m.logger.Error("could not save score", "error", err)
		}
	}
	m.flushHighScore()
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, config.AppDir, "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given game and blocks until it
// exits. The high score is flushed however the program ends.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(cfg.TickRate),
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		fm.flushHighScore()
	} else {
		model.flushHighScore()
	}
	return err
}
