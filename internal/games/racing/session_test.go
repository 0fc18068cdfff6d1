package racing

import (
	"testing"
	"time"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/sched"
)

// fixedRand always returns the same draw.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

func newTestSession(draw float64) (*Session, *sched.Scheduler, *arena.HighScore) {
	clock := sched.New()
	record := &arena.HighScore{}
	return NewSession(clock, fixedRand(draw), record, nil), clock, record
}

// crashWithScore starts s and scores n-1 ticks without obstacles, then crashes on the nth.
func crashWithScore(s *Session, n int) {
	s.Start()
	for i := 0; i < n-1; i++ {
		s.AdvanceTick()
	}
	s.obstacles = []arena.Entity{{ID: 99, X: s.position, Y: 85}}
	s.AdvanceTick()
}

func TestNewSessionIsIdle(t *testing.T) {
	s, clock, _ := newTestSession(0.5)

	if s.Phase() != arena.PhaseNotStarted {
		t.Errorf("Phase() = %v, expected not_started", s.Phase())
	}
	if s.Position() != StartPosition {
		t.Errorf("Position() = %v, expected %v", s.Position(), StartPosition)
	}
	if clock.Pending() != 0 {
		t.Errorf("no timers should be armed before Start, got %d", clock.Pending())
	}

	// Ticks and input before start do nothing
	s.Steer(Left)
	s.SpawnTick()
	s.AdvanceTick()
	if s.Position() != StartPosition || s.Score() != 0 || len(s.Snapshot().Obstacles) != 0 {
		t.Errorf("idle session mutated: %+v", s.Snapshot())
	}
}

func TestStartArmsTimers(t *testing.T) {
	s, clock, _ := newTestSession(0.5)
	s.Start()

	if s.Phase() != arena.PhaseRunning {
		t.Fatalf("Phase() = %v, expected running", s.Phase())
	}
	if clock.Pending() != 2 {
		t.Errorf("Pending() = %d, expected spawn and advance timers", clock.Pending())
	}

	// Start while running is ignored
	s.AdvanceTick()
	s.Start()
	if s.Score() != 1 {
		t.Errorf("Start() while running reset the score to %d", s.Score())
	}
	if clock.Pending() != 2 {
		t.Errorf("Start() while running armed extra timers: %d", clock.Pending())
	}
}

func TestSteerClamps(t *testing.T) {
	tests := []struct {
		name  string
		moves []Direction
		want  float64
	}{
		{"one left", []Direction{Left}, 35},
		{"one right", []Direction{Right}, 65},
		{"left to the wall", []Direction{Left, Left, Left, Left}, MinPosition},
		{"right to the wall", []Direction{Right, Right, Right, Right, Right}, MaxPosition},
		{"back from the wall", []Direction{Left, Left, Left, Right}, 25},
		{"there and back", []Direction{Right, Left}, StartPosition},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestSession(0.5)
			s.Start()
			for _, d := range tc.moves {
				s.Steer(d)
				if p := s.Position(); p < MinPosition || p > MaxPosition {
					t.Fatalf("position %v escaped the road", p)
				}
			}
			if s.Position() != tc.want {
				t.Errorf("Position() = %v, expected %v", s.Position(), tc.want)
			}
		})
	}
}

func TestSpawnTick(t *testing.T) {
	s, _, _ := newTestSession(0.25)
	s.Start()
	s.SpawnTick()
	s.SpawnTick()

	obs := s.Snapshot().Obstacles
	if len(obs) != 2 {
		t.Fatalf("expected 2 obstacles, got %d", len(obs))
	}
	for _, o := range obs {
		if o.X != 30 || o.Y != 0 {
			t.Errorf("obstacle at (%v, %v), expected (30, 0)", o.X, o.Y)
		}
	}
	if obs[0].ID == obs[1].ID {
		t.Error("obstacle IDs should be unique")
	}
}

func TestAdvanceTickMovesAndDrops(t *testing.T) {
	s, _, _ := newTestSession(0.5)
	s.Start()
	s.obstacles = []arena.Entity{
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 95},
	}

	s.AdvanceTick()

	obs := s.Snapshot().Obstacles
	if len(obs) != 1 || obs[0].ID != 1 || obs[0].Y != 5 {
		t.Errorf("obstacles = %+v, expected only #1 at y=5", obs)
	}
	if s.Score() != 1 {
		t.Errorf("Score() = %d, expected 1", s.Score())
	}
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
		over bool
	}{
		{"dead ahead", 50, 85, true},
		{"far lane", 90, 85, false},
		{"enters band edge", 50, 75, false}, // 80 is not inside the band
		{"leaves band edge", 50, 90, false}, // 95 is not inside the band
		{"just inside band", 50, 76, true},
		{"lateral threshold", 60, 85, false},
		{"inside threshold", 59.5, 85, true},
		{"left side", 41, 85, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestSession(0.5)
			s.Start()
			s.obstacles = []arena.Entity{{ID: 1, X: tc.x, Y: tc.y}}

			s.AdvanceTick()

			if got := s.Phase() == arena.PhaseOver; got != tc.over {
				t.Errorf("over = %v, expected %v", got, tc.over)
			}
		})
	}
}

func TestCrashOnClock(t *testing.T) {
	// Draw 0.5 spawns every obstacle at x=50, in front of the car.
	s, clock, record := newTestSession(0.5)
	s.Start()

	// First obstacle at 1500ms, reaches y=85 after 16 more moves
	clock.Advance(2250 * time.Millisecond)
	if s.Phase() != arena.PhaseRunning {
		t.Fatalf("crashed too early at score %d", s.Score())
	}

	clock.Advance(50 * time.Millisecond)
	if s.Phase() != arena.PhaseOver {
		t.Fatal("expected a crash at 2300ms")
	}
	if s.Score() != 46 {
		t.Errorf("Score() = %d, expected 46", s.Score())
	}
	if record.Best() != 46 || !s.NewRecord() {
		t.Errorf("record = %d, newRecord = %v", record.Best(), s.NewRecord())
	}
	if s.Elapsed() != 2300*time.Millisecond {
		t.Errorf("Elapsed() = %v, expected 2.3s", s.Elapsed())
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	clock := sched.New()
	s := NewSession(clock, arena.NewRand(7), nil, nil)
	s.Start()

	last := 0
	for i := 0; i < 2000 && s.Phase() == arena.PhaseRunning; i++ {
		if i%7 == 0 {
			s.Steer(Left)
		}
		if i%11 == 0 {
			s.Steer(Right)
		}
		clock.Advance(10 * time.Millisecond)
		if s.Score() < last {
			t.Fatalf("score dropped from %d to %d", last, s.Score())
		}
		last = s.Score()
	}
}

func TestOverIsTerminal(t *testing.T) {
	s, clock, _ := newTestSession(0.5)
	crashWithScore(s, 3)

	if s.Phase() != arena.PhaseOver {
		t.Fatal("expected the session to be over")
	}
	if clock.Pending() != 0 {
		t.Errorf("timers still armed after the crash: %d", clock.Pending())
	}

	before := s.Snapshot()
	if len(before.Obstacles) != 0 {
		t.Error("obstacles should be cleared once over")
	}

	s.Steer(Right)
	s.SpawnTick()
	s.AdvanceTick()
	clock.Advance(10 * time.Second)

	after := s.Snapshot()
	if after.Score != before.Score || after.Position != before.Position ||
		after.Phase != before.Phase || len(after.Obstacles) != 0 {
		t.Errorf("over session changed: before %+v, after %+v", before, after)
	}
}

func TestHighScoreAndNewRecord(t *testing.T) {
	tests := []struct {
		name      string
		prevBest  int
		score     int
		wantBest  int
		newRecord bool
	}{
		{"first run", 0, 5, 5, true},
		{"beats record", 5, 7, 7, true},
		{"ties record", 7, 7, 7, true},
		{"below record", 9, 4, 9, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, record := newTestSession(0.5)
			record.Submit(tc.prevBest)

			crashWithScore(s, tc.score)

			if record.Best() != tc.wantBest {
				t.Errorf("Best() = %d, expected %d", record.Best(), tc.wantBest)
			}
			if s.NewRecord() != tc.newRecord {
				t.Errorf("NewRecord() = %v, expected %v", s.NewRecord(), tc.newRecord)
			}
			if snap := s.Snapshot(); snap.HighScore != tc.wantBest || snap.NewRecord != tc.newRecord {
				t.Errorf("snapshot = %+v", snap)
			}
		})
	}
}

func TestRestartResets(t *testing.T) {
	s, clock, _ := newTestSession(0.5)
	s.Start()
	s.Steer(Right)
	s.Steer(Right)
	crashWithScore(s, 12)
	if s.Phase() != arena.PhaseOver {
		t.Fatal("expected the session to be over")
	}

	clock.Advance(time.Second)
	s.Start()

	snap := s.Snapshot()
	if snap.Phase != arena.PhaseRunning || snap.Score != 0 || snap.Position != StartPosition ||
		len(snap.Obstacles) != 0 || snap.NewRecord {
		t.Errorf("restart did not reset: %+v", snap)
	}
	if snap.HighScore != 12 {
		t.Errorf("high score lost on restart: %d", snap.HighScore)
	}
	if clock.Pending() != 2 {
		t.Errorf("Pending() = %d, expected 2 fresh timers", clock.Pending())
	}
	if s.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected 0", s.Elapsed())
	}
}

func TestDispose(t *testing.T) {
	s, clock, _ := newTestSession(0.5)
	s.Dispose() // before start

	s.Start()
	s.Dispose()
	s.Dispose()

	if clock.Pending() != 0 {
		t.Errorf("Pending() = %d after Dispose", clock.Pending())
	}
	if n := clock.Advance(5 * time.Second); n != 0 {
		t.Errorf("%d callbacks fired after Dispose", n)
	}
}
