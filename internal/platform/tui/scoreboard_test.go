package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/storage"
)

func TestScoreboardShowsLedger(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Run{
		{GameID: "racing", Player: "ana", Score: 46, NewRecord: true, EndReason: "crash", Duration: 2300 * time.Millisecond},
		{GameID: "racing", Player: "bo", Score: 12, EndReason: "crash", Duration: 800 * time.Millisecond},
		{GameID: "shooting", Player: "ana", Score: 30, EndReason: "timeout", Duration: 30 * time.Second},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() error = %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	m.ShowGame("racing")

	runs := m.Runs()
	if len(runs) != 2 || runs[0].Score != 46 || runs[1].Score != 12 {
		t.Fatalf("racing runs = %+v, want 46 then 12", runs)
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Racing", "2 runs  best 46  avg 29.0", "ana", "bo", "crash *", "0:02"} {
		if !strings.Contains(view, want) {
			t.Errorf("scoreboard view missing %q", want)
		}
	}

	m.ShowGame("shooting")
	if runs := m.Runs(); len(runs) != 1 || runs[0].EndReason != "timeout" {
		t.Errorf("shooting runs = %+v", runs)
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, 60, 20)

	if len(m.Runs()) != 0 {
		t.Errorf("runs without a store = %d", len(m.Runs()))
	}
	view := m.View()
	if !strings.Contains(view, "No runs recorded yet.") || !strings.Contains(view, "no runs this session") {
		t.Errorf("empty scoreboard view = %q", view)
	}
}

func TestScoreboardCyclesGames(t *testing.T) {
	m := NewScoreboardModel(nil, 100, 30)
	if len(m.games) < 2 {
		t.Skip("needs two registered games")
	}

	next, _ := m.Update(keyTab)
	m = next.(ScoreboardModel)
	if m.gameCursor != 1 {
		t.Errorf("cursor after tab = %d, want 1", m.gameCursor)
	}

	next, _ = m.Update(keyLeft)
	m = next.(ScoreboardModel)
	next, _ = m.Update(keyLeft)
	m = next.(ScoreboardModel)
	if m.gameCursor != len(m.games)-1 {
		t.Errorf("cursor after wrapping left = %d, want %d", m.gameCursor, len(m.games)-1)
	}
}

func TestResultLabelAndDuration(t *testing.T) {
	if got := resultLabel(storage.Run{EndReason: "timeout", NewRecord: true}); got != "timeout *" {
		t.Errorf("resultLabel = %q", got)
	}
	if got := resultLabel(storage.Run{}); got != "-" {
		t.Errorf("resultLabel(empty) = %q", got)
	}
	if got := formatDuration(75 * time.Second); got != "1:15" {
		t.Errorf("formatDuration = %q, want 1:15", got)
	}
	if got := playerName(""); got != "anonymous" {
		t.Errorf("playerName(\"\") = %q", got)
	}
}
