package racing

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/sched"
)

// Cadences of the two session timers.
const (
	SpawnInterval   = 1500 * time.Millisecond
	AdvanceInterval = 50 * time.Millisecond
)

// Gameplay constants, in arena percent.
const (
	StartPosition = 50.0
	MinPosition   = 10.0
	MaxPosition   = 90.0
	SteerStep     = 15.0

	SpawnMinX    = 10.0
	SpawnMaxX    = 90.0
	ObstacleStep = 5.0

	// An obstacle strictly inside (BandTop, BandBottom) shares the car's depth.
	BandTop     = 80.0
	BandBottom  = 95.0
	HitDistance = 10.0
)

// EndReasonCrash is the only way a racing session ends.
const EndReasonCrash = "crash"

// Direction is a lateral steering input.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Phase     arena.Phase
	Obstacles []arena.Entity // Only populated while running
	Score     int
	Position  float64
	HighScore int
	NewRecord bool // Captured when the session ended
	Elapsed   time.Duration
}

// Session is one racing run. It is a single-threaded actor: Start, Steer
// and the two tick methods are the only mutation entry points, and they
// must be called from one goroutine (the clock's Advance included).
type Session struct {
	clock  *sched.Scheduler
	rng    arena.Rand
	record *arena.HighScore
	logger *log.Logger

	timers sched.Group
	ids    arena.IDSeq

	phase     arena.Phase
	obstacles []arena.Entity
	position  float64
	score     int
	newRecord bool
	startedAt time.Duration
	endedAt   time.Duration
}

// NewSession creates a session in the not-started phase. Timers are armed on
// clock by Start. A nil record gives the session a private one; a nil logger
// discards output.
func NewSession(clock *sched.Scheduler, rng arena.Rand, record *arena.HighScore, logger *log.Logger) *Session {
	if record == nil {
		record = &arena.HighScore{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		clock:    clock,
		rng:      rng,
		record:   record,
		logger:   logger,
		position: StartPosition,
	}
}

// Start begins a run from the not-started or over phase and is ignored while
// running. All previous state is discarded.
func (s *Session) Start() {
	if !s.phase.CanStart() {
		return
	}
	s.timers.StopAll()

	s.phase = arena.PhaseRunning
	s.obstacles = nil
	s.position = StartPosition
	s.score = 0
	s.newRecord = false
	s.startedAt = s.clock.Now()
	s.endedAt = 0

	s.timers.Add(s.clock.Every(SpawnInterval, s.SpawnTick))
	s.timers.Add(s.clock.Every(AdvanceInterval, s.AdvanceTick))

	s.logger.Debug("session started", "game", GameID)
}

// Steer moves the car one step and clamps it to the road. Ignored unless running.
func (s *Session) Steer(d Direction) {
	if s.phase != arena.PhaseRunning {
		return
	}
	s.position = core.ClampF(s.position+float64(d)*SteerStep, MinPosition, MaxPosition)
}

// SpawnTick drops a new obstacle at the top of the road.
func (s *Session) SpawnTick() {
	if s.phase != arena.PhaseRunning {
		return
	}
	s.obstacles = append(s.obstacles, arena.Entity{
		ID: s.ids.Next(),
		X:  arena.Uniform(s.rng, SpawnMinX, SpawnMaxX),
		Y:  arena.ArenaMin,
	})
}

// AdvanceTick moves every obstacle down the road, scores the tick and ends
// the run on a collision.
func (s *Session) AdvanceTick() {
	if s.phase != arena.PhaseRunning {
		return
	}

	kept := s.obstacles[:0]
	for _, o := range s.obstacles {
		o.Y += ObstacleStep
		if o.Y < arena.ArenaMax {
			kept = append(kept, o)
		}
	}
	s.obstacles = kept
	s.score++

	for _, o := range s.obstacles {
		if o.Y > BandTop && o.Y < BandBottom && math.Abs(o.X-s.position) < HitDistance {
			s.finish()
			return
		}
	}
}

// Dispose stops the session's timers. The session stays readable.
func (s *Session) Dispose() {
	s.timers.StopAll()
}

// finish moves the session to over exactly once and captures the record flag.
func (s *Session) finish() {
	s.phase = arena.PhaseOver
	s.timers.StopAll()
	s.obstacles = nil
	s.endedAt = s.clock.Now()
	s.newRecord = s.record.Submit(s.score)

	s.logger.Debug("session over", "game", GameID, "score", s.score, "reason", EndReasonCrash)
	if s.newRecord {
		s.logger.Debug("new record", "game", GameID, "score", s.score)
	}
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() arena.Phase { return s.phase }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Position returns the car's lateral position.
func (s *Session) Position() float64 { return s.position }

// NewRecord reports whether the finished run set or tied the high score.
func (s *Session) NewRecord() bool { return s.newRecord }

// Elapsed returns the game time of the run, frozen once it is over.
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
		Phase:     s.phase,
		Obstacles: arena.CloneEntities(s.obstacles),
		Score:     s.score,
		Position:  s.position,
		HighScore: s.record.Best(),
		NewRecord: s.newRecord,
		Elapsed:   s.Elapsed(),
	}
}
