package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

type arcadeScreen int

const (
	screenMenu arcadeScreen = iota
	screenGame
	screenScoreboard
)

// ArcadeOptions configure one arcade session.
type ArcadeOptions struct {
	// Host is lent to every game created in this session. A nil
	// Records gets a fresh table, so high scores last as long as the session.
	Host registry.Host

	// Store is the shared run ledger; nil disables recording.
	Store *storage.Store

	// Player tags the runs in the ledger.
	Player string

	Runtime core.RuntimeConfig
}

// ArcadeModel manages the full arcade session flow: menu -> game -> menu,
// with the scoreboard one key away. It is the top-level model for both the
// local menu and SSH sessions.
type ArcadeModel struct {
	host       registry.Host
	store      *storage.Store
	player     string
	config     core.RuntimeConfig
	keys       *KeyMapper
	screen     arcadeScreen
	menu       MenuModel
	scoreboard ScoreboardModel
	gameModel  *GameModel
	lastGame   string
	quitting   bool
}

// NewArcadeModel creates a session that opens on the menu.
func NewArcadeModel(opts ArcadeOptions) ArcadeModel {
	host := opts.Host
	if host.Records == nil {
		host.Records = arena.NewRecords()
	}

	m := ArcadeModel{
		host:   host,
		store:  opts.Store,
		player: opts.Player,
		config: opts.Runtime,
		keys:   NewKeyMapper(host.Settings().Keys),
	}
	m.resetMenu()
	return m
}

// Init initializes the session.
func (m ArcadeModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m ArcadeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScoreboard:
		return m.updateScoreboard(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m ArcadeModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.WantsScoreboard() {
		m.scoreboard = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		if selected := m.menu.cursorItem(); selected != nil {
			m.scoreboard.ShowGame(selected.GameID)
		}
		m.screen = screenScoreboard
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(selected.GameID)
	}

	return m, cmd
}

// startGame creates a game for this session's host and hands it the screen.
func (m ArcadeModel) startGame(gameID string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(gameID, m.host)
	if err != nil {
		// Shouldn't happen since menu only shows registered games
		m.host.Log().Warn("could not start game", "game", gameID, "error", err)
		m.resetMenu()
		return m, nil
	}

	gameModel := NewGameModel(game, m.config, GameOptions{
		Store:  m.store,
		Logger: m.host.Log(),
		Player: m.player,
		Keys:   m.keys,
	})
	m.gameModel = &gameModel
	m.lastGame = gameID
	m.screen = screenGame

	return m, m.gameModel.Init()
}

// updateGame handles updates when in game mode.
func (m ArcadeModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.gameModel = nil
		m.resetMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScoreboard handles updates when the scoreboard is shown.
func (m ArcadeModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	newBoard, cmd := m.scoreboard.Update(msg)
	if board, ok := newBoard.(ScoreboardModel); ok {
		m.scoreboard = board
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		m.resetMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// resetMenu rebuilds the menu so it shows fresh records, keeping the cursor
// on the last game played.
func (m *ArcadeModel) resetMenu() {
	m.menu = NewMenuModel(m.host.Records, m.keys, m.config.ScreenW, m.config.ScreenH)
	m.menu.Focus(m.lastGame)
	m.screen = screenMenu
}

// View renders the current view.
func (m ArcadeModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.gameModel.View()
	case screenScoreboard:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// Records returns the session high score table.
func (m ArcadeModel) Records() *arena.Records {
	return m.host.Records
}

// RunArcade runs the menu, games and scoreboard in one program until the
// player quits.
func RunArcade(opts ArcadeOptions) error {
	p := tea.NewProgram(
		NewArcadeModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
