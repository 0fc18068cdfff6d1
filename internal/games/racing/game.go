// Package racing implements a top-down lane racer: steer the car left and
// right while obstacles scroll down the road. Surviving scores one point
// per movement tick; touching an obstacle ends the run.
package racing

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/sched"
)

// GameID is the registry and ledger identifier.
const GameID = "racing"

// carDepth is where the car is drawn, in the middle of the collision band.
const carDepth = (BandTop + BandBottom) / 2

// laneDash is the period, in rows, of the dashed center line.
const laneDash = 3

// Game adapts a Session to the platform: it owns the session clock, maps
// actions to steering and draws the road.
type Game struct {
	view   config.RacingView
	keys   config.KeyConfig
	record *arena.HighScore
	logger *log.Logger

	runtime core.RuntimeConfig
	clock   *sched.Scheduler
	rng     arena.Rand
	session *Session
}

// New creates a racing game for a host. The session waits for a start input.
func New(host registry.Host) *Game {
	cfg := host.Settings()
	g := &Game{
		view:   cfg.Racing,
		keys:   cfg.Keys,
		record: host.HighScore(GameID),
		logger: host.Log(),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Racing"
}

// Description returns the menu pitch.
func (g *Game) Description() string {
	return "Steer with the arrow keys and dodge the obstacles!"
}

// Reset discards the current session and creates a fresh, not-started one.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if g.session != nil {
		g.session.Dispose()
	}
	g.runtime = runtime
	g.clock = sched.New()
	g.rng = arena.NewRand(runtime.Seed)
	g.session = NewSession(g.clock, g.rng, g.record, g.logger)
}

// Step applies the frame's input, then advances the session clock by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	switch g.session.Phase() {
	case arena.PhaseNotStarted:
		if in.Has(core.ActionConfirm) {
			g.session.Start()
		}
	case arena.PhaseOver:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.restart()
		}
	case arena.PhaseRunning:
		for _, ev := range in.Events {
			switch ev.Action {
			case core.ActionLeft:
				g.session.Steer(Left)
			case core.ActionRight:
				g.session.Steer(Right)
			}
		}
	}

	g.clock.Advance(g.runtime.FrameDuration())
	return core.StepResult{State: g.State()}
}

// restart replaces a finished session with a new one on the same clock.
func (g *Game) restart() {
	g.session.Dispose()
	g.session = NewSession(g.clock, g.rng, g.record, g.logger)
	g.session.Start()
}

// Session exposes the active session.
func (g *Game) Session() *Session {
	return g.session
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	phase := g.session.Phase()
	st := core.GameState{
		Score:     g.session.Score(),
		HighScore: g.record.Best(),
		Started:   phase != arena.PhaseNotStarted,
		GameOver:  phase == arena.PhaseOver,
		NewRecord: g.session.NewRecord(),
		Elapsed:   g.session.Elapsed(),
	}
	if st.GameOver {
		st.EndReason = EndReasonCrash
	}
	return st
}

// Dispose stops the session timers.
func (g *Game) Dispose() {
	g.session.Dispose()
}

// Render draws the road, obstacles, car, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	snap := g.session.Snapshot()

	road := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(road, core.ColorGray)
	vp := core.Viewport{Area: road.Inset(1)}

	g.drawLane(dst, vp, snap.Elapsed)

	obstacleColor := config.Color(g.view.ObstacleColor)
	for _, o := range snap.Obstacles {
		col, row := vp.ToCell(o.X, o.Y)
		dst.DrawSprite(col, row, g.view.ObstacleGlyph, obstacleColor)
	}

	if snap.Phase == arena.PhaseRunning {
		col, row := vp.ToCell(snap.Position, carDepth)
		dst.DrawSprite(col, row, g.view.CarGlyph, config.Color(g.view.CarColor))
	}

	g.drawHUD(dst, snap)

	switch snap.Phase {
	case arena.PhaseNotStarted:
		dst.DrawPanel(
			core.PanelLine{Text: "Ready to race?", Color: core.ColorBrightCyan},
			core.PanelLine{Text: fmt.Sprintf("%s / %s to steer", config.KeyLabel(g.keys.Left), config.KeyLabel(g.keys.Right))},
			core.PanelLine{Text: fmt.Sprintf("Press %s to start", config.KeyLabel(g.keys.Start))},
		)
	case arena.PhaseOver:
		lines := []core.PanelLine{
			{Text: "Crash!", Color: core.ColorBrightRed},
			{Text: fmt.Sprintf("Score: %d", snap.Score)},
		}
		if snap.NewRecord {
			lines = append(lines, core.PanelLine{Text: "NEW RECORD!", Color: core.ColorBrightYellow})
		}
		lines = append(lines, core.PanelLine{
			Text: fmt.Sprintf("Press %s to race again", config.KeyLabel(g.keys.Restart)),
		})
		dst.DrawPanel(lines...)
	}
}

// drawLane draws the dashed center line, scrolling one row per movement tick.
func (g *Game) drawLane(dst *core.Screen, vp core.Viewport, elapsed time.Duration) {
	col, _ := vp.ToCell(50, 0)
	offset := int(elapsed / AdvanceInterval)
	glyph := []rune(g.view.LaneGlyph)[0]
	color := config.Color(g.view.LaneColor)

	for row := vp.Area.Y; row < vp.Area.Bottom(); row++ {
		if ((row-offset)%laneDash+laneDash)%laneDash == 0 {
			dst.SetColored(col, row, glyph, color)
		}
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightCyan)

	stats := fmt.Sprintf("Score: %d  Record: %d", snap.Score, snap.HighScore)
	dst.DrawText(dst.Width()-len(stats)-1, 0, stats)

	hint := fmt.Sprintf(" %s: menu ", config.KeyLabel(g.keys.Back))
	dst.DrawTextColored(2, dst.Height()-1, hint, core.ColorGray)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func(host registry.Host) registry.Game {
		return New(host)
	})
}
