package arena

import (
	"sort"
	"sync"
)

// HighScore is the best score for one game within a host lifetime.
// It is owned by the host and handed to each session it creates.
type HighScore struct {
	best int
}

// Best returns the stored high score.
func (h *HighScore) Best() int {
	return h.best
}

// Submit records the score of a session that just ended and reports whether
// the "new record" banner applies. The stored value only moves when score is
// strictly greater; the banner condition is score == best && score > 0, so
// tying the record also shows it.
func (h *HighScore) Submit(score int) bool {
	if score > h.best {
		h.best = score
	}
	return score == h.best && score > 0
}

// Records keeps one HighScore per game ID for a single host.
type Records struct {
	mu     sync.Mutex
	byGame map[string]*HighScore
}

// NewRecords creates an empty record book; every game starts at 0.
func NewRecords() *Records {
	return &Records{byGame: make(map[string]*HighScore)}
}

// For returns the high score slot for a game, creating it on first use.
func (r *Records) For(gameID string) *HighScore {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.byGame[gameID]
	if !ok {
		h = &HighScore{}
		r.byGame[gameID] = h
	}
	return h
}

// Best returns the current high score for a game, 0 if never played.
func (r *Records) Best(gameID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if h, ok := r.byGame[gameID]; ok {
		return h.best
	}
	return 0
}

// Games returns the IDs that have a record slot, sorted.
func (r *Records) Games() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.byGame))
	for id := range r.byGame {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
