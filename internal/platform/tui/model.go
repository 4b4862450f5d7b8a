package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Model is the Bubble Tea model for one snake game.
//
// Ticks form a chain: each handled TickMsg schedules the next one, and the
// chain ends when the game is over. A restart bumps gen so that a tick still
// in flight for the old game is dropped instead of starting a second chain.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	player     string // Recorded with saved scores
	gen        int
	scoreSaved bool // Whether score has been saved for current game over
	quitting   bool
}

// NewModel creates a model and starts the first game.
// store may be nil, in which case scores are not saved.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, player string, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.Default()
	}
	cfg.Seed = cfg.ResolveSeed(time.Now())

	game := snake.NewGame(cfg.Columns, cfg.Rows)
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   NewKeyMapper(),
		player: player,
	}, nil
}

// Init starts the tick chain.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
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
		return m, tea.Quit
	}

	if action == core.ActionRestart {
		if !m.game.GameOver() {
			return m, nil
		}
		return m.restart()
	}

	m.game.Handle(action)
	return m, nil
}

// restart begins a new game with a fresh seed and a new tick chain.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	if err := m.game.Reset(m.config); err != nil {
		m.logger.Error("cannot restart game", "error", err)
		return m, nil
	}
	m.gen++
	m.scoreSaved = false
	return m, tickCmd(m.config.TickInterval, m.gen)
}

// handleTick processes simulation ticks.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.GameOver() {
		return m, nil
	}

	m.game.Step()

	if m.game.GameOver() {
		m.saveScore()
		return m, nil
	}
	return m, tickCmd(m.config.TickInterval, m.gen)
}

// saveScore records the finished game once.
func (m *Model) saveScore() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil {
		return
	}

	engine := m.game.Engine()
	entry := storage.ScoreEntry{
		RunID:  uuid.NewString(),
		Board:  m.game.ID(),
		Player: m.player,
		Score:  engine.Score(),
		Length: len(engine.SnakePositions()),
		Ticks:  int(engine.Ticks()),
		Seed:   m.game.Seed(),
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.logger.Warn("could not save score", "board", entry.Board, "error", err)
		return
	}
	m.logger.Debug("score saved", "board", entry.Board, "score", entry.Score, "run", entry.RunID)
}

// saveScreenshot saves the current screen to ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Game returns the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Generation returns the number of restarts so far.
func (m Model) Generation() int {
	return m.gen
}

// ScoreSaved reports whether the finished game has been recorded.
func (m Model) ScoreSaved() bool {
	return m.scoreSaved
}

// Run starts the Bubble Tea program for a local game.
func Run(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(store, cfg, "", logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err = p.Run()
	return err
}
