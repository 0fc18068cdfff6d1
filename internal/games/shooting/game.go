// Package shooting implements a timed target range: targets appear at random,
// wander, and are worth ten points each if hit before they drift off the
// field. The round lasts thirty seconds.
package shooting

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
	"github.com/vovakirdan/pocket-arcade/internal/registry"
	"github.com/vovakirdan/pocket-arcade/internal/sched"
)

// GameID is the registry and ledger identifier.
const GameID = "shooting"

// CrosshairRadius is how close, in arena percent, a target must be to the
// crosshair for a keyboard shot to hit it.
const CrosshairRadius = 6.0

// Game adapts a Session to the platform: mouse clicks and the keyboard
// crosshair are resolved to target IDs before they reach the session.
type Game struct {
	view   config.ShootingView
	keys   config.KeyConfig
	record *arena.HighScore
	logger *log.Logger

	runtime core.RuntimeConfig
	clock   *sched.Scheduler
	rng     arena.Rand
	session *Session

	field      core.Viewport // Where targets were last drawn
	crossX     float64
	crossY     float64
	shots      int
	shotsOnHit int
}

// New creates a shooting game for a host. The session waits for a start input.
func New(host registry.Host) *Game {
	cfg := host.Settings()
	g := &Game{
		view:   cfg.Shooting,
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
	return "Target Shooting"
}

// Description returns the menu pitch.
func (g *Game) Description() string {
	return "Click the targets and score as much as you can!"
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
	g.field = fieldViewport(core.NewRect(0, 0, runtime.ScreenW, runtime.ScreenH))
	g.resetAim()
}

func (g *Game) resetAim() {
	g.crossX, g.crossY = 50, 50
	g.shots, g.shotsOnHit = 0, 0
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
			if ev.Click {
				g.click(ev.At)
				continue
			}
			g.handleAction(ev.Action)
		}
	}

	g.clock.Advance(g.runtime.FrameDuration())
	return core.StepResult{State: g.State()}
}

func (g *Game) restart() {
	g.session.Dispose()
	g.session = NewSession(g.clock, g.rng, g.record, g.logger)
	g.resetAim()
	g.session.Start()
}

func (g *Game) handleAction(a core.Action) {
	step := g.view.CrosshairStep
	switch a {
	case core.ActionLeft:
		g.crossX -= step
	case core.ActionRight:
		g.crossX += step
	case core.ActionUp:
		g.crossY -= step
	case core.ActionDown:
		g.crossY += step
	case core.ActionFire:
		g.shoot(g.targetNearCrosshair())
		return
	default:
		return
	}
	g.crossX = core.ClampF(g.crossX, arena.ArenaMin, arena.ArenaMax)
	g.crossY = core.ClampF(g.crossY, arena.ArenaMin, arena.ArenaMax)
}

// click shoots at a screen cell. Clicks outside the field are not shots.
func (g *Game) click(p core.Point) {
	if !g.field.Area.Contains(p.X, p.Y) {
		return
	}
	g.shoot(g.targetAtCell(p))
}

func (g *Game) shoot(id arena.EntityID, found bool) {
	g.shots++
	if found && g.session.Hit(id) {
		g.shotsOnHit++
	}
}

// targetAtCell finds the topmost target whose glyph covers the cell.
func (g *Game) targetAtCell(p core.Point) (arena.EntityID, bool) {
	targets := g.session.Snapshot().Targets
	width := utf8.RuneCountInString(g.view.TargetGlyph)

	for i := len(targets) - 1; i >= 0; i-- {
		col, row := g.field.ToCell(targets[i].X, targets[i].Y)
		left := col - width/2
		if p.Y == row && p.X >= left && p.X < left+width {
			return targets[i].ID, true
		}
	}
	return 0, false
}

// targetNearCrosshair finds the target closest to the crosshair within reach.
func (g *Game) targetNearCrosshair() (arena.EntityID, bool) {
	var (
		best  arena.EntityID
		found bool
		dist  = CrosshairRadius
	)
	for _, t := range g.session.Snapshot().Targets {
		if d := math.Hypot(t.X-g.crossX, t.Y-g.crossY); d <= dist {
			best, dist, found = t.ID, d, true
		}
	}
	return best, found
}

// Session exposes the active session.
func (g *Game) Session() *Session {
	return g.session
}

// Accuracy returns shots fired and shots that scored this round.
func (g *Game) Accuracy() (shots, hits int) {
	return g.shots, g.shotsOnHit
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
		st.EndReason = EndReasonTimeout
	}
	return st
}

// Dispose stops the session timers.
func (g *Game) Dispose() {
	g.session.Dispose()
}

// fieldViewport is the target area inside the bordered field below the HUD row.
func fieldViewport(screen core.Rect) core.Viewport {
	box := core.NewRect(screen.X, screen.Y+1, screen.W, screen.H-1)
	return core.Viewport{Area: box.Inset(1)}
}

// Render draws the field, targets, crosshair, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	snap := g.session.Snapshot()

	box := core.NewRect(0, 1, dst.Width(), dst.Height()-1)
	dst.DrawBox(box, core.ColorGray)
	g.field = fieldViewport(dst.Bounds())

	targetColor := config.Color(g.view.TargetColor)
	for _, t := range snap.Targets {
		col, row := g.field.ToCell(t.X, t.Y)
		dst.DrawSprite(col, row, g.view.TargetGlyph, targetColor)
	}

	if snap.Phase == arena.PhaseRunning {
		col, row := g.field.ToCell(g.crossX, g.crossY)
		dst.DrawSprite(col, row, g.view.CrosshairGlyph, config.Color(g.view.CrosshairColor))
	}

	g.drawHUD(dst, snap)

	switch snap.Phase {
	case arena.PhaseNotStarted:
		dst.DrawPanel(
			core.PanelLine{Text: "Ready to shoot?", Color: core.ColorBrightYellow},
			core.PanelLine{Text: "Click targets, or aim with the arrows"},
			core.PanelLine{Text: fmt.Sprintf("and fire with %s", config.KeyLabel(g.keys.Fire))},
			core.PanelLine{Text: fmt.Sprintf("Press %s to start", config.KeyLabel(g.keys.Start))},
		)
	case arena.PhaseOver:
		lines := []core.PanelLine{
			{Text: "Time's up!", Color: core.ColorBrightRed},
			{Text: fmt.Sprintf("Score: %d", snap.Score)},
		}
		if g.shots > 0 {
			lines = append(lines, core.PanelLine{
				Text:  fmt.Sprintf("Hits: %d / %d shots", g.shotsOnHit, g.shots),
				Color: core.ColorGray,
			})
		}
		if snap.NewRecord {
			lines = append(lines, core.PanelLine{Text: "NEW RECORD!", Color: core.ColorBrightYellow})
		}
		lines = append(lines, core.PanelLine{
			Text: fmt.Sprintf("Press %s to play again", config.KeyLabel(g.keys.Restart)),
		})
		dst.DrawPanel(lines...)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(1, 0, g.Title(), core.ColorBrightYellow)

	timer := fmt.Sprintf("Time: %ds", snap.TimeRemaining)
	timerColor := core.ColorDefault
	if snap.Phase == arena.PhaseRunning && snap.TimeRemaining <= g.view.WarnAt {
		timerColor = core.ColorBrightRed
	}
	dst.DrawTextColored((dst.Width()-len(timer))/2, 0, timer, timerColor)

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
