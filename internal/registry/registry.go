// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pocket-arcade/internal/arena"
	"github.com/vovakirdan/pocket-arcade/internal/config"
	"github.com/vovakirdan/pocket-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "racing").
	// Used for CLI commands, high scores and the run ledger.
	ID() string

	// Title returns a human-readable name for display (e.g., "Racing").
	Title() string

	// Description is the one-line pitch shown in the menu.
	Description() string

	// Reset discards the current session and prepares a fresh one.
	// The RuntimeConfig provides screen dimensions, tick rate and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game clock by one frame after applying input.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState

	// Dispose stops every timer the game owns. The game must not be
	// stepped afterwards.
	Dispose()
}

// Host is what the platform lends a game: the per-player high score
// table, a logger and the loaded configuration. Any field may be zero.
type Host struct {
	Records *arena.Records
	Logger  *log.Logger
	Config  config.Config
}

// HighScore returns the host's record for gameID, or a private one when the
// host keeps no records.
func (h Host) HighScore(gameID string) *arena.HighScore {
	if h.Records == nil {
		return &arena.HighScore{}
	}
	return h.Records.For(gameID)
}

// Log returns the host logger, or one that discards everything.
func (h Host) Log() *log.Logger {
	if h.Logger == nil {
		return log.New(io.Discard)
	}
	return h.Logger
}

// Settings returns the host configuration, or the defaults when it is unset
// or invalid.
func (h Host) Settings() config.Config {
	if err := h.Config.Validate(); err != nil {
		return config.Default()
	}
	return h.Config
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func(host Host) Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get metadata by creating a temporary instance
	g := f(Host{})
	infos[id] = GameInfo{ID: id, Title: g.Title(), Description: g.Description()}
	g.Dispose()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, infos[id])
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string, host Host) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(host), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
