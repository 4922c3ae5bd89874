package contextstore

import (
	"sync"
	"time"

	"github.com/vanihq/vani/internal/language"
)

// Turn is one conversational exchange entry.
type Turn struct {
	Speaker  string
	Text     string
	Language language.Language
	At       time.Time
}

// VisionContext is the last visual description and when it was captured.
type VisionContext struct {
	Description string
	CapturedAt  time.Time
	TurnIndex   int
}

// SearchContext is the last search outcome, kept for "tell me more" follow-ups.
type SearchContext struct {
	Query   string
	Snippet string
	Source  string
}

// Store holds bounded conversational history plus last-known vision and search
// context. The dispatcher is the only writer; the mutex exists so a future
// concurrent caller cannot corrupt the ring.
type Store struct {
	mu         sync.Mutex
	capacity   int
	staleAfter int

	turns     []Turn
	turnCount int
	vision    *VisionContext
	search    *SearchContext
}

const (
	DefaultCapacity   = 20
	DefaultStaleTurns = 5
)

func New(capacity, staleAfter int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if staleAfter <= 0 {
		staleAfter = DefaultStaleTurns
	}
	return &Store{capacity: capacity, staleAfter: staleAfter}
}

// AppendTurn records a turn, evicting the oldest entry once capacity is
// reached.
func (s *Store) AppendTurn(t Turn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.At.IsZero() {
		t.At = time.Now().UTC()
	}
	s.turns = append(s.turns, t)
	if len(s.turns) > s.capacity {
		s.turns = s.turns[len(s.turns)-s.capacity:]
	}
	s.turnCount++
}

// RecentTurns returns up to n most recent turns, oldest first.
func (s *Store) RecentTurns(n int) []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n <= 0 || n > len(s.turns) {
		n = len(s.turns)
	}
	out := make([]Turn, n)
	copy(out, s.turns[len(s.turns)-n:])
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// SetVision refreshes the visual context at the current turn index.
func (s *Store) SetVision(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vision = &VisionContext{
		Description: description,
		CapturedAt:  time.Now().UTC(),
		TurnIndex:   s.turnCount,
	}
}

// Vision returns the last visual context, or absent once it has gone stale:
// more than the configured number of turns without a vision refresh.
func (s *Store) Vision() (VisionContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vision == nil {
		return VisionContext{}, false
	}
	if s.turnCount-s.vision.TurnIndex > s.staleAfter {
		s.vision = nil
		return VisionContext{}, false
	}
	return *s.vision, true
}

func (s *Store) SetSearch(query, snippet, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = &SearchContext{Query: query, Snippet: snippet, Source: source}
}

func (s *Store) Search() (SearchContext, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.search == nil {
		return SearchContext{}, false
	}
	return *s.search, true
}

// Reset wipes conversation, vision and search memory atomically. It is the
// only mid-session wipe path.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = nil
	s.turnCount = 0
	s.vision = nil
	s.search = nil
}
