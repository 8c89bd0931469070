package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/weatherwhether/internal/core"
	"github.com/vovakirdan/weatherwhether/internal/scene"
)

// Model is the Bubble Tea model for running the quiz.
// The bottom terminal row is reserved for the key help.
type Model struct {
	game     *scene.Game
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	styles   Styles
	quitting bool
}

// NewModel creates a new Bubble Tea model for game.
func NewModel(game *scene.Game, cfg core.RuntimeConfig, styles Styles) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		styles: styles,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	m.game.HandleInput(m.keys.MapKey(msg))
	if m.game.Quitting() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. Scenes lay out on every
// render, so no game state is reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game by one tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	interval := m.config.TickInterval()
	m.game.Update(interval)
	return m, tickCmd(interval)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".weatherwhether", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", scene.GameID, timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	footer := ""
	if cur := m.game.Manager().Current(); cur != nil && !m.game.Manager().Transitioning() {
		footer = m.help.View(m.keys.HelpFor(cur.Name()))
	}
	return m.styles.RenderScreen(m.screen) + "\n" + m.styles.help.Render(footer)
}

// Run starts the Bubble Tea program for game.
func Run(game *scene.Game, cfg core.RuntimeConfig) error {
	model := NewModel(game, cfg, NewStyles(nil))

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
