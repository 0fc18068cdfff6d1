package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

const menuCardWidth = 60

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID      string
	Title       string
	Description string
}

// menuHelp narrows the key map to what the menu understands.
type menuHelp struct {
	keys KeyMap
}

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Up, h.keys.Down, h.keys.Start, h.keys.Scores, h.keys.Quit}
}

func (h menuHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	records        *arena.Records // Session high scores, may be nil
	keyMapper      *KeyMapper
	help           help.Model
	quitting       bool
	selected       *MenuItem // Set when user selects a game
	openScoreboard bool      // True if user pressed Tab for scoreboard
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(records *arena.Records, keys *KeyMapper, width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID:      g.ID,
			Title:       g.Title,
			Description: g.Description,
		})
	}

	h := help.New()
	h.Width = width

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		records:   records,
		keyMapper: keys,
		help:      h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("P O C K E T   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(mutedStyle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	if len(m.items) == 0 {
		b.WriteString(centerText(mutedStyle.Italic(true).Render("No games installed."), m.width))
		b.WriteString("\n")
	}

	for i, item := range m.items {
		b.WriteString(centerText(m.renderCard(item, i == m.cursor), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(mutedStyle.Render(m.help.View(menuHelp{keys: m.keyMapper.Keys()})), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderCard draws one game as a bordered card with its record.
func (m MenuModel) renderCard(item MenuItem, active bool) string {
	width := menuCardWidth
	if m.width > 0 && m.width-4 < width {
		width = max(m.width-4, 20)
	}

	card := panelStyle.Width(width)
	name := lipgloss.NewStyle().Bold(true)
	if active {
		card = card.BorderForeground(highlight)
		name = name.Foreground(accent)
	}

	best := "Best: -"
	if m.records != nil {
		if score := m.records.Best(item.GameID); score > 0 {
			best = fmt.Sprintf("Best: %d", score)
		}
	}

	cursor := "  "
	if active {
		cursor = "> "
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top,
		name.Render(cursor+item.Title),
		"  ",
		mutedStyle.Render(best),
	)

	return card.Render(header + "\n" + mutedStyle.Render("  "+item.Description))
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Focus moves the cursor to the given game, if it is listed.
func (m *MenuModel) Focus(gameID string) {
	for i, item := range m.items {
		if item.GameID == gameID {
			m.cursor = i
			return
		}
	}
}

// cursorItem returns the item under the cursor, or nil for an empty menu.
func (m MenuModel) cursorItem() *MenuItem {
	if len(m.items) == 0 {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}
