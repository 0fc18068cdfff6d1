package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/storage"

	_ "github.com/vovakirdan/pocket-arcade/internal/games/racing"
	_ "github.com/vovakirdan/pocket-arcade/internal/games/shooting"
)

func newTestArcade(t *testing.T, records *arena.Records, store *storage.Store) ArcadeModel {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 100, 30
	cfg.Seed = 1
	return NewArcadeModel(ArcadeOptions{
		Host:    registry.Host{Records: records},
		Store:   store,
		Player:  "ana",
		Runtime: cfg,
	})
}

func press(t *testing.T, m ArcadeModel, msg tea.Msg) (ArcadeModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(ArcadeModel)
	if !ok {
		t.Fatalf("Update returned %T, want ArcadeModel", next)
	}
	return am, cmd
}

func TestMenuListsGamesWithRecords(t *testing.T) {
	records := arena.NewRecords()
	records.For("racing").Submit(40)

	m := newTestArcade(t, records, nil)
	view := m.View()

	for _, want := range []string{
		"Racing",
		"Target Shooting",
		"Click the targets and score as much as you can!",
		"Best: 40",
		"Best: -",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("menu view missing %q", want)
		}
	}
}

func TestArcadeStartsSelectedGame(t *testing.T) {
	m := newTestArcade(t, nil, nil)

	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, keyEnter)
	if m.screen != screenGame {
		t.Fatalf("screen = %v after select, want game", m.screen)
	}
	if got := m.gameModel.game.ID(); got != "shooting" {
		t.Errorf("started %q, want shooting", got)
	}
	if cmd == nil {
		t.Error("starting a game should schedule its tick loop")
	}
	if m.quitting {
		t.Error("selecting a game must not quit the arcade")
	}
}

func TestArcadeBackReturnsToMenu(t *testing.T) {
	m := newTestArcade(t, nil, nil)

	m, _ = press(t, m, keyDown)
	m, _ = press(t, m, keyEnter)
	m, _ = press(t, m, keyEsc)

	if m.screen != screenMenu || m.gameModel != nil {
		t.Fatalf("screen = %v, game model nil = %v; want menu", m.screen, m.gameModel == nil)
	}
	if item := m.menu.cursorItem(); item == nil || item.GameID != "shooting" {
		t.Errorf("menu cursor = %+v, want the last game played", item)
	}
}

func TestArcadeSharesRecordsAcrossGames(t *testing.T) {
	records := arena.NewRecords()
	m := newTestArcade(t, records, nil)

	m, _ = press(t, m, keyEnter)
	game := m.gameModel.game
	if game.State().HighScore != 0 {
		t.Fatalf("fresh high score = %d", game.State().HighScore)
	}

	records.For(game.ID()).Submit(25)
	if game.State().HighScore != 25 {
		t.Errorf("game does not read the arcade records: %d", game.State().HighScore)
	}
}

func TestArcadeScoreboardRoundTrip(t *testing.T) {
	store := openStore(t)
	if _, err := store.SaveRun(storage.Run{GameID: "shooting", Player: "ana", Score: 30, EndReason: "timeout"}); err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}
	m := newTestArcade(t, nil, store)

	m, _ = press(t, m, keyDown)
	m, cmd := press(t, m, keyTab)
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v after tab, want scoreboard", m.screen)
	}
	if cmd != nil {
		t.Error("opening the scoreboard must not quit the arcade")
	}
	if runs := m.scoreboard.Runs(); len(runs) != 1 || runs[0].Score != 30 {
		t.Errorf("scoreboard runs = %+v, want the shooting run", runs)
	}

	m, _ = press(t, m, keyEsc)
	if m.screen != screenMenu || m.quitting {
		t.Errorf("screen = %v, quitting = %v after back", m.screen, m.quitting)
	}
}

func TestArcadeQuit(t *testing.T) {
	m := newTestArcade(t, nil, nil)

	m, cmd := press(t, m, runes("q"))
	if !m.quitting || cmd == nil {
		t.Errorf("quitting = %v, cmd nil = %v", m.quitting, cmd == nil)
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestArcadeQuitFromGame(t *testing.T) {
	m := newTestArcade(t, nil, nil)

	m, _ = press(t, m, keyEnter)
	m, cmd := press(t, m, keyCtrlC)
	if !m.quitting || cmd == nil {
		t.Errorf("quitting = %v, cmd nil = %v", m.quitting, cmd == nil)
	}
}

func TestArcadeResizeReachesMenu(t *testing.T) {
	m := newTestArcade(t, nil, nil)

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.config.ScreenW != 120 || m.menu.width != 120 {
		t.Errorf("config width = %d, menu width = %d; want 120", m.config.ScreenW, m.menu.width)
	}
}
