package shooting

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/sched"
)

// Cadences of the three session timers.
const (
	SpawnInterval     = 1200 * time.Millisecond
	DriftInterval     = 50 * time.Millisecond
	CountdownInterval = time.Second
)

// Gameplay constants, in arena percent unless noted.
const (
	RoundSeconds = 30
	HitPoints    = 10

	SpawnMinX     = 10.0
	SpawnMaxX     = 90.0
	SpawnMinY     = 10.0
	SpawnMaxY     = 80.0
	SpawnMinSpeed = 1.0
	SpawnMaxSpeed = 3.0

	// Targets that drift outside [FieldMin, FieldMax] on either axis are lost.
	FieldMin = 5.0
	FieldMax = 95.0
)

// EndReasonTimeout is the only way a shooting session ends.
const EndReasonTimeout = "timeout"

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Phase         arena.Phase
	Targets       []arena.Entity // Only populated while running
	Score         int
	TimeRemaining int // Whole seconds
	HighScore     int
	NewRecord     bool // Captured when the session ended
	Elapsed       time.Duration
}

// Session is one timed shooting round. Like the racing session it is a
// single-threaded actor driven by its clock and by Hit.
type Session struct {
	clock  *sched.Scheduler
	rng    arena.Rand
	record *arena.HighScore
	logger *log.Logger

	timers sched.Group
	ids    arena.IDSeq

	phase         arena.Phase
	targets       []arena.Entity
	score         int
	timeRemaining int
	newRecord     bool
	startedAt     time.Duration
	endedAt       time.Duration
}

// NewSession creates a session in the not-started phase with a full clock.
// A nil record gives the session a private one; a nil logger discards output.
func NewSession(clock *sched.Scheduler, rng arena.Rand, record *arena.HighScore, logger *log.Logger) *Session {
	if record == nil {
		record = &arena.HighScore{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		clock:         clock,
		rng:           rng,
		record:        record,
		logger:        logger,
		timeRemaining: RoundSeconds,
	}
}

// Start begins a round from the not-started or over phase and is ignored
// while running.
func (s *Session) Start() {
	if !s.phase.CanStart() {
		return
	}
	s.timers.StopAll()

	s.phase = arena.PhaseRunning
	s.targets = nil
	s.score = 0
	s.timeRemaining = RoundSeconds
	s.newRecord = false
	s.startedAt = s.clock.Now()
	s.endedAt = 0

	s.timers.Add(s.clock.Every(SpawnInterval, s.SpawnTick))
	s.timers.Add(s.clock.Every(DriftInterval, s.DriftTick))
	s.timers.Add(s.clock.Every(CountdownInterval, s.CountdownTick))

	s.logger.Debug("session started", "game", GameID)
}

// Hit removes the target and scores it. Unknown IDs, including targets that
// already drifted away or were hit, are ignored. Reports whether it scored.
func (s *Session) Hit(id arena.EntityID) bool {
	if s.phase != arena.PhaseRunning {
		return false
	}
	var ok bool
	s.targets, ok = arena.RemoveByID(s.targets, id)
	if !ok {
		return false
	}
	s.score += HitPoints
	return true
}

// SpawnTick adds a target at a random position with a random drift speed.
func (s *Session) SpawnTick() {
	if s.phase != arena.PhaseRunning {
		return
	}
	x := arena.Uniform(s.rng, SpawnMinX, SpawnMaxX)
	y := arena.Uniform(s.rng, SpawnMinY, SpawnMaxY)
	speed := arena.Uniform(s.rng, SpawnMinSpeed, SpawnMaxSpeed)
	s.targets = append(s.targets, arena.Entity{ID: s.ids.Next(), X: x, Y: y, Speed: speed})
}

// DriftTick random-walks every target and drops the ones that leave the field.
func (s *Session) DriftTick() {
	if s.phase != arena.PhaseRunning {
		return
	}
	kept := s.targets[:0]
	for _, t := range s.targets {
		t.X += arena.Uniform(s.rng, -0.5, 0.5) * t.Speed * 2
		t.Y += arena.Uniform(s.rng, -0.5, 0.5) * t.Speed * 2
		if inField(t.X) && inField(t.Y) {
			kept = append(kept, t)
		}
	}
	s.targets = kept
}

// CountdownTick takes one second off the clock and ends the round at zero.
func (s *Session) CountdownTick() {
	if s.phase != arena.PhaseRunning {
		return
	}
	if s.timeRemaining <= 1 {
		s.timeRemaining = 0
		s.finish()
		return
	}
	s.timeRemaining--
}

// Dispose stops the session's timers. The session stays readable.
func (s *Session) Dispose() {
	s.timers.StopAll()
}

func (s *Session) finish() {
	s.phase = arena.PhaseOver
	s.timers.StopAll()
	s.targets = nil
	s.endedAt = s.clock.Now()
	s.newRecord = s.record.Submit(s.score)

	s.logger.Debug("session over", "game", GameID, "score", s.score, "reason", EndReasonTimeout)
	if s.newRecord {
		s.logger.Debug("new record", "game", GameID, "score", s.score)
	}
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() arena.Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// TimeRemaining returns the whole seconds left in the round.
func (s *Session) TimeRemaining() int { return s.timeRemaining }

// NewRecord reports whether the finished round set or tied the high score.
func (s *Session) NewRecord() bool { return s.newRecord }

// Elapsed returns the game time of the round, frozen once it is over.
func (s *Session) Elapsed() time.Duration {
	switch s.phase {
	case arena.PhaseRunning:
		return s.clock.Now() - s.startedAt
	case arena.PhaseOver:
		return s.endedAt - s.startedAt
	default:
		return 0
	}
}

// Snapshot copies the state for rendering.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:         s.phase,
		Targets:       arena.CloneEntities(s.targets),
		Score:         s.score,
		TimeRemaining: s.timeRemaining,
		HighScore:     s.record.Best(),
		NewRecord:     s.newRecord,
		Elapsed:       s.Elapsed(),
	}
}

func inField(v float64) bool {
	return v >= FieldMin && v <= FieldMax
}
