package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/leaderboard"
	"github.com/vovakirdan/tui-flappy/internal/sfx"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Layout constants
const (
	sidePanelWidth = 30 // Side panel content width
	chromeCols     = sidePanelWidth + 8
	chromeRows     = 4 // Title, help and the board border
	nameCharLimit  = 16
)

// Options configures a game model.
type Options struct {
	Game          config.FlappyConfig
	Runtime       core.RuntimeConfig
	Store         *storage.Store // Optional score persistence
	Sound         sfx.Player     // Optional; silent if nil
	PlayerName    string
	Theme         *Theme // Optional; DefaultTheme if nil
	ScreenshotDir string // Default ~/.flappy/screenshots
	NoScreenshots bool
}

// Model is the Bubble Tea model for one flappy session.
type Model struct {
	session *flappy.Session
	game    config.FlappyConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	sound   sfx.Player
	screen  *core.Screen
	surface *CellSurface
	keys    *KeyMapper
	help    help.Model
	name    textinput.Model
	scores  table.Model
	theme   Theme

	screenshotDir string
	noScreenshots bool
	editing       bool // Name field has focus
	showStart     bool
	showRetry     bool
	bestEver      int // Best persisted score
	status        string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for a fresh session.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	defaults := core.DefaultConfig()
	if rt.TickRate <= 0 {
		rt.TickRate = defaults.TickRate
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		rt.ScreenW, rt.ScreenH = defaults.ScreenW, defaults.ScreenH
	}
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	sound := opts.Sound
	if sound == nil {
		sound = sfx.Nop{}
	}
	theme := DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	session := flappy.NewSession(opts.Game, rt.Seed)
	session.SetPlayerName(opts.PlayerName)

	name := textinput.New()
	name.Prompt = ""
	name.Placeholder = session.PlayerName()
	name.CharLimit = nameCharLimit
	name.Width = nameCharLimit
	name.SetValue(session.PlayerName())

	h := help.New()
	h.ShowAll = false

	m := Model{
		session:       session,
		game:          opts.Game,
		runtime:       rt,
		store:         opts.Store,
		sound:         sound,
		screen:        core.NewScreen(1, 1),
		keys:          NewKeyMapper(),
		help:          h,
		name:          name,
		scores:        newScoresTable(opts.Game.Leaderboard.Size),
		theme:         theme,
		screenshotDir: opts.ScreenshotDir,
		noScreenshots: opts.NoScreenshots,
		showStart:     true,
	}

	if m.store != nil {
		if best, err := m.store.HighScore(); err == nil {
			m.bestEver = best
		}
	}

	m.layout(rt.ScreenW, rt.ScreenH)
	return m
}

// Session returns the game session driven by this model.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Init starts the frame loop. The spawn loop starts with the first round.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.layout(msg.Width, msg.Height)
		return m, nil

	case FrameMsg:
		// Reschedule first: the frame loop never stops, the session gates itself.
		cmd := frameCmd(m.runtime.TickRate)
		m.session.Tick()
		m.handleEvents()
		return m, cmd

	case SpawnMsg:
		cmd := spawnCmd(m.game.Timing.SpawnInterval)
		m.session.SpawnTick()
		return m, cmd
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.handleNameKey(msg)
	}

	keys := m.keys.Keys
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.EditName):
		m.editing = true
		cmd := m.name.Focus()
		return m, cmd
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg, m.session.Phase())
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionStart:
		if m.session.Start() {
			cmd = spawnCmd(m.game.Timing.SpawnInterval)
		}
	default:
		m.session.Handle(action)
	}
	m.handleEvents()
	return m, cmd
}

// handleNameKey feeds keys to the name field until it is confirmed.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case tea.KeyEnter, tea.KeyTab, tea.KeyEsc:
		m.session.SetPlayerName(m.name.Value())
		m.name.SetValue(m.session.PlayerName())
		m.name.Blur()
		m.editing = false
		return m, nil
	}

	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	return m, cmd
}

// handleEvents applies queued session events to the UI.
func (m *Model) handleEvents() {
	events := m.session.DrainEvents()
	sfx.PlayEvents(m.sound, events)

	for _, e := range events {
		switch e := e.(type) {
		case flappy.StartControlHiddenEvent:
			m.showStart = false
		case flappy.RetryControlEvent:
			m.showRetry = e.Visible
		case flappy.LeaderboardChangedEvent:
			m.scores.SetRows(leaderboardRows(e.Entries))
		case flappy.GameOverEvent:
			m.saveScore(e)
		}
	}
}

// saveScore persists a finished round.
func (m *Model) saveScore(e flappy.GameOverEvent) {
	if e.Score > m.bestEver {
		m.bestEver = e.Score
	}
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveScore(e.Name, e.Score, e.Reason.String()); err != nil {
		// Best-effort save, game continues regardless
		m.status = "score not saved"
	}
}

// layout sizes the play field for a terminal of the given size.
func (m *Model) layout(width, height int) {
	m.runtime.ScreenW = width
	m.runtime.ScreenH = height
	board := m.game.Board
	m.surface = NewCellSurface(m.screen, board.Width, board.Height, width-chromeCols, height-chromeRows)
	m.help.Width = width
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.noScreenshots {
		m.status = "screenshots disabled"
		return
	}
	m.session.Render(m.surface)

	dir := m.screenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".flappy", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "screenshot failed"
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "screenshot failed"
		return
	}
	m.status = "saved " + path
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.surface)
	board := m.theme.Board.Render(RenderScreen(m.screen))
	body := lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", m.renderPanel())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render("FLAPPY"),
		body,
		m.help.View(m.keys.Keys),
	)
}

// renderPanel draws the side panel: player, scores, leaderboard, controls.
func (m Model) renderPanel() string {
	t := m.theme
	var b strings.Builder

	row := func(label, value string) {
		b.WriteString(t.PanelLabel.Render(label))
		b.WriteString(" ")
		b.WriteString(t.PanelValue.Render(value))
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(t.PanelLabel.Render("Player"))
		b.WriteString(" ")
		b.WriteString(t.Editing.Render(m.name.View()))
		b.WriteString("\n")
	} else {
		row("Player", m.session.PlayerName())
	}
	row("Score ", flappy.FormatScore(m.session.Score()))
	row("High  ", strconv.Itoa(m.session.HighScore()))
	if m.store != nil {
		row("Best  ", strconv.Itoa(m.bestEver))
	}

	b.WriteString("\n")
	b.WriteString(t.PanelLabel.Render("Leaderboard"))
	b.WriteString("\n")
	b.WriteString(m.scores.View())
	b.WriteString("\n")

	if m.showStart {
		b.WriteString("\n")
		b.WriteString(t.Control.Render("[s] Start"))
	}
	if m.showRetry {
		b.WriteString("\n")
		b.WriteString(t.Control.Render("[enter] Retry"))
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(t.Status.Render(m.status))
	}

	return t.Panel.Render(b.String())
}

// newScoresTable creates the leaderboard table.
func newScoresTable(size int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: nameCharLimit},
		{Title: "Score", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(false),
		table.WithHeight(max(size, leaderboard.DefaultSize)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// leaderboardRows converts ranked entries to table rows.
func leaderboardRows(entries []leaderboard.Entry) []table.Row {
	rows := make([]table.Row, len(entries))
	for i, e := range entries {
		rows[i] = table.Row{strconv.Itoa(i + 1), e.Name, strconv.Itoa(e.Score)}
	}
	return rows
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
