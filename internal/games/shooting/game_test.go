package shooting

import (
	"strings"
	"testing"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

const screenW, screenH = 60, 24

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func click(x, y int) core.InputFrame {
	in := core.NewInputFrame()
	in.Click(core.Point{X: x, Y: y})
	return in
}

// newRunningGame returns a started game with one motionless target.
func newRunningGame(t *testing.T, records *arena.Records, target arena.Entity) *Game {
	t.Helper()
	g := New(registry.Host{Records: records})
	g.Reset(core.RuntimeConfig{ScreenW: screenW, ScreenH: screenH, TickRate: 60, Seed: 1})
	g.Step(press(core.ActionConfirm))
	if g.Session().Phase() != arena.PhaseRunning {
		t.Fatal("game did not start")
	}
	g.session.targets = []arena.Entity{target}
	return g
}

func render(g *Game) *core.Screen {
	s := core.NewScreen(screenW, screenH)
	g.Render(s)
	return s
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("shooting should register itself")
	}
	for _, info := range registry.List() {
		if info.ID == GameID && info.Title != "Target Shooting" {
			t.Errorf("Title = %q", info.Title)
		}
	}
}

func TestGameWaitsForStart(t *testing.T) {
	g := New(registry.Host{})
	if !strings.Contains(render(g).String(), "Ready to shoot?") {
		t.Error("start overlay missing")
	}
	st := g.Step(click(10, 10)).State
	if st.Started || st.Score != 0 {
		t.Errorf("clicks before start should be ignored: %+v", st)
	}
}

func TestGameClickHitsTarget(t *testing.T) {
	g := newRunningGame(t, nil, arena.Entity{ID: 7, X: 50, Y: 50})
	col, row := g.field.ToCell(50, 50)

	// Miss one row below
	g.Step(click(col, row+1))
	if g.State().Score != 0 {
		t.Fatal("a miss should not score")
	}

	st := g.Step(click(col, row)).State
	if st.Score != HitPoints {
		t.Errorf("Score = %d, expected %d", st.Score, HitPoints)
	}
	if len(g.Session().Snapshot().Targets) != 0 {
		t.Error("hit target should be removed")
	}
	if shots, hits := g.Accuracy(); shots != 2 || hits != 1 {
		t.Errorf("Accuracy() = %d/%d, expected 1/2", hits, shots)
	}
}

func TestGameCrosshairFire(t *testing.T) {
	g := newRunningGame(t, nil, arena.Entity{ID: 3, X: 58, Y: 50})

	// Crosshair starts in the middle, 8% away
	g.Step(press(core.ActionFire))
	if g.State().Score != 0 {
		t.Fatal("target outside the crosshair radius was hit")
	}

	g.Step(press(core.ActionRight, core.ActionRight, core.ActionFire))
	if g.crossX != 58 || g.crossY != 50 {
		t.Errorf("crosshair at (%v, %v), expected (58, 50)", g.crossX, g.crossY)
	}
	if g.State().Score != HitPoints {
		t.Errorf("Score = %d, expected a hit", g.State().Score)
	}
}

func TestGameFiresAtCrosshairInPressOrder(t *testing.T) {
	g := newRunningGame(t, nil, arena.Entity{ID: 1, X: 50, Y: 50})
	g.session.targets = append(g.session.targets, arena.Entity{ID: 2, X: 58, Y: 50})

	g.Step(press(core.ActionFire, core.ActionRight, core.ActionRight, core.ActionFire))
	if st := g.State(); st.Score != 2*HitPoints {
		t.Errorf("Score = %d, expected both targets hit", st.Score)
	}
	if shots, hits := g.Accuracy(); shots != 2 || hits != 2 {
		t.Errorf("Accuracy() = %d/%d, expected 2/2", hits, shots)
	}
}

func TestGameClickOutsideFieldIsNotAShot(t *testing.T) {
	g := newRunningGame(t, nil, arena.Entity{ID: 1, X: 50, Y: 50})
	render(g)

	// HUD row, then the left border
	g.Step(click(10, 0))
	g.Step(click(0, 10))
	if shots, _ := g.Accuracy(); shots != 0 {
		t.Errorf("clicks outside the field counted %d shots", shots)
	}

	g.Step(click(10, 10))
	if shots, _ := g.Accuracy(); shots != 1 {
		t.Errorf("shots = %d after a click in the field, expected 1", shots)
	}
}

func TestGameCrosshairClamps(t *testing.T) {
	g := newRunningGame(t, nil, arena.Entity{ID: 1, X: 50, Y: 50})
	in := core.NewInputFrame()
	for i := 0; i < 40; i++ {
		in.Set(core.ActionUp)
		in.Set(core.ActionLeft)
	}
	g.Step(in)
	if g.crossX != 0 || g.crossY != 0 {
		t.Errorf("crosshair at (%v, %v), expected the corner", g.crossX, g.crossY)
	}
}

func TestGameTimeoutAndRestart(t *testing.T) {
	records := arena.NewRecords()
	g := newRunningGame(t, records, arena.Entity{ID: 1, X: 50, Y: 50})
	col, row := g.field.ToCell(50, 50)
	g.Step(click(col, row))

	var st core.GameState
	for i := 0; i < 2000 && !st.GameOver; i++ {
		st = g.Step(core.NewInputFrame()).State
	}
	if !st.GameOver || st.EndReason != EndReasonTimeout {
		t.Fatalf("round did not time out: %+v", st)
	}
	if !st.NewRecord || records.Best(GameID) != HitPoints {
		t.Errorf("record not captured: %+v, best %d", st, records.Best(GameID))
	}

	out := render(g).String()
	for _, want := range []string{"Time's up!", "Score: 10", "NEW RECORD!", "Hits: 1 / 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over screen missing %q:\n%s", want, out)
		}
	}

	st = g.Step(press(core.ActionConfirm)).State
	if st.GameOver || st.Score != 0 || g.Session().TimeRemaining() != RoundSeconds {
		t.Errorf("state after restart = %+v", st)
	}
	if shots, _ := g.Accuracy(); shots != 0 {
		t.Error("restart should reset accuracy")
	}
}

func TestGameCountdownWarning(t *testing.T) {
	g := newRunningGame(t, nil, arena.Entity{ID: 1, X: 50, Y: 50})

	timerColor := func() core.Color {
		s := render(g)
		x := strings.Index(s.Row(0), "Time:")
		if x < 0 {
			t.Fatalf("countdown missing: %q", s.Row(0))
		}
		return s.GetCell(len([]rune(s.Row(0)[:x])), 0).Color
	}

	g.session.timeRemaining = g.view.WarnAt + 1
	if c := timerColor(); c == core.ColorBrightRed {
		t.Error("countdown should not warn yet")
	}

	g.session.timeRemaining = g.view.WarnAt
	if c := timerColor(); c != core.ColorBrightRed {
		t.Errorf("countdown color = %v, expected red", c)
	}
}

func TestGameDispose(t *testing.T) {
	g := newRunningGame(t, nil, arena.Entity{ID: 1, X: 50, Y: 50})
	g.Dispose()
	if g.clock.Pending() != 0 {
		t.Errorf("Pending() = %d after Dispose", g.clock.Pending())
	}
}
