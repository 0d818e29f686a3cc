package game

import (
	"errors"
	"fmt"
	"sync"

	"github.com/minaorangina/setgame/deck"
)

var (
	ErrNilSession           = errors.New("session is nil")
	ErrGameNotStarted       = errors.New("game has not started")
	ErrInvalidSelectionSize = errors.New("a selection must be exactly 3 distinct cards")
	ErrUnknownCardReference = errors.New("card is not on the tableau")
	ErrNoRandomSource       = errors.New("no source of randomness")
	ErrInvalidSessionState  = errors.New("invalid session state")
)

const (
	// TableauSize is the number of face-up cards a full tableau holds
	TableauSize  = 12
	setSize      = 3
	pointsPerSet = 3
)

// Source is the randomness used for dealing
type Source = deck.Source

// Stats are passive counters. Nothing in the rules reads them.
type Stats struct {
	SetsFound      int
	Score          int
	HintsRequested int
	Reshuffles     int
}

// ValidateResult is the outcome of ValidateAndReplace
type ValidateResult struct {
	Valid bool
	// Replacements are the cards dealt into the slots of the claimed set.
	// Empty when the selection was invalid or the deck ran low.
	Replacements   []deck.Card
	RemainingCount int
}

// HintResult is the outcome of Hint
type HintResult struct {
	Sets [][3]deck.Card
	// Reshuffled is set when the tableau held no set and was redealt.
	// Tableau then holds the new cards.
	Reshuffled bool
	Tableau    []deck.Card
	// GameOver is set when no set can be formed from the tableau and the
	// deck together. No redeal happens in that case.
	GameOver bool
}

// Snapshot is a consistent read of a session
type Snapshot struct {
	State          State
	Tableau        []deck.Card
	RemainingCount int
	Stats          Stats
	GameOver       bool
}

// Session holds the state of one game: the undealt cards and the tableau.
// It is safe for concurrent use; mutations are serialised.
type Session struct {
	mu        sync.RWMutex
	rng       Source
	remaining deck.Deck
	tableau   []deck.Card
	started   bool
	stats     Stats
}

// SessionOpts configures a session. Leaving Remaining and Tableau nil
// gives a session that has not started; setting either restores an
// existing game.
type SessionOpts struct {
	Source    Source
	Remaining deck.Deck
	Tableau   []deck.Card
	Stats     Stats
}

// NewSession constructs a session
func NewSession(opts SessionOpts) (*Session, error) {
	s := &Session{
		rng:       opts.Source,
		remaining: deck.Deck{},
		tableau:   []deck.Card{},
		stats:     opts.Stats,
	}

	if opts.Remaining == nil && opts.Tableau == nil {
		return s, nil
	}

	for _, group := range [][]deck.Card{opts.Remaining, opts.Tableau} {
		for _, c := range group {
			if !c.Valid() {
				return nil, fmt.Errorf("%w: %+v is not a catalog card", ErrInvalidSessionState, c)
			}
		}
	}

	if !cardsUnique(opts.Remaining, opts.Tableau) {
		return nil, fmt.Errorf("%w: a card appears more than once", ErrInvalidSessionState)
	}

	s.remaining = append(s.remaining, opts.Remaining...)
	s.tableau = append(s.tableau, opts.Tableau...)
	s.started = true

	return s, nil
}

// StartGame shuffles the full deck and deals a new tableau. Any game in
// progress is discarded, along with its stats.
func (s *Session) StartGame() ([]deck.Card, error) {
	if s == nil {
		return nil, ErrNilSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rng == nil {
		return nil, ErrNoRandomSource
	}

	remaining := deck.New()
	remaining.Shuffle(s.rng)

	s.tableau = remaining.Draw(s.rng, TableauSize)
	s.remaining = remaining
	s.started = true
	s.stats = Stats{}

	return copyCards(s.tableau), nil
}

// ValidateAndReplace checks whether the cards with the given IDs form a
// set. A valid set is removed from the tableau and, while the deck holds
// at least three cards, replaced in the same slots. An invalid set
// changes nothing.
func (s *Session) ValidateAndReplace(cardIDs []int) (ValidateResult, error) {
	if s == nil {
		return ValidateResult{}, ErrNilSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return ValidateResult{}, ErrGameNotStarted
	}

	slots, err := s.resolveSelection(cardIDs)
	if err != nil {
		return ValidateResult{}, err
	}

	valid, err := Validate([]deck.Card{s.tableau[slots[0]], s.tableau[slots[1]], s.tableau[slots[2]]})
	if err != nil {
		return ValidateResult{}, err
	}
	if !valid {
		return ValidateResult{Valid: false, Replacements: []deck.Card{}, RemainingCount: len(s.remaining)}, nil
	}

	replacements := []deck.Card{}
	if len(s.remaining) >= setSize {
		if s.rng == nil {
			return ValidateResult{}, ErrNoRandomSource
		}
		replacements = s.remaining.Draw(s.rng, setSize)
		for i, slot := range slots {
			s.tableau[slot] = replacements[i]
		}
	} else {
		s.tableau = removeSlots(s.tableau, slots)
	}

	s.stats.SetsFound++
	s.stats.Score += pointsPerSet

	return ValidateResult{
		Valid:          true,
		Replacements:   copyCards(replacements),
		RemainingCount: len(s.remaining),
	}, nil
}

// Hint returns every set on the tableau.
//
// When there is none, Hint has a side effect: the tableau is dealt
// afresh from the deck and the dead cards go back into the deck. The new
// cards are reported in the result. If no set can be made from the deck
// and tableau together, redealing cannot help and the result reports game
// over instead.
func (s *Session) Hint() (HintResult, error) {
	if s == nil {
		return HintResult{}, ErrNilSession
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return HintResult{}, ErrGameNotStarted
	}

	s.stats.HintsRequested++

	sets := FindSets(s.tableau)
	if len(sets) > 0 {
		return HintResult{Sets: sets, Tableau: copyCards(s.tableau)}, nil
	}

	if !s.setPossible() {
		return HintResult{Sets: sets, Tableau: copyCards(s.tableau), GameOver: true}, nil
	}

	if s.rng == nil {
		return HintResult{}, ErrNoRandomSource
	}

	s.reshuffle()

	return HintResult{
		Sets:       sets,
		Reshuffled: true,
		Tableau:    copyCards(s.tableau),
		GameOver:   s.gameOver(),
	}, nil
}

// reshuffle replaces a dead tableau. New cards are drawn before the old
// ones are returned, so a deck with enough cards never deals the dead
// cards straight back.
func (s *Session) reshuffle() {
	dead := s.tableau

	fresh := s.remaining.Draw(s.rng, TableauSize)
	s.remaining = append(s.remaining, dead...)
	if len(fresh) < TableauSize {
		fresh = append(fresh, s.remaining.Draw(s.rng, TableauSize-len(fresh))...)
	}

	s.tableau = fresh
	s.stats.Reshuffles++
}

// resolveSelection maps card IDs to tableau slots, in selection order
func (s *Session) resolveSelection(cardIDs []int) ([]int, error) {
	if len(cardIDs) != setSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSelectionSize, len(cardIDs))
	}

	seen := map[int]struct{}{}
	for _, id := range cardIDs {
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: card %d selected twice", ErrInvalidSelectionSize, id)
		}
		seen[id] = struct{}{}
	}

	slots := make([]int, 0, setSize)
	for _, id := range cardIDs {
		card, err := deck.Lookup(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnknownCardReference, err)
		}

		slot := indexOf(s.tableau, card)
		if slot < 0 {
			return nil, fmt.Errorf("%w: card %d", ErrUnknownCardReference, id)
		}
		slots = append(slots, slot)
	}

	return slots, nil
}

// Tableau returns the cards currently dealt
func (s *Session) Tableau() []deck.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCards(s.tableau)
}

// RemainingCount returns the number of undealt cards
func (s *Session) RemainingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.remaining)
}

// Stats returns the session's counters
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// State returns where the session is in its lifecycle
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state()
}

// GameOver reports whether no set is left to find: the tableau holds none
// and none can be formed from the cards still in play
func (s *Session) GameOver() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameOver()
}

// Snapshot reads the whole session under one lock
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Snapshot{
		State:          s.state(),
		Tableau:        copyCards(s.tableau),
		RemainingCount: len(s.remaining),
		Stats:          s.stats,
		GameOver:       s.gameOver(),
	}
}

func (s *Session) state() State {
	if !s.started {
		return NotStarted
	}
	if len(s.remaining) < setSize && len(s.tableau) < TableauSize {
		return Exhausted
	}
	return Active
}

// gameOver is true once the tableau holds no set and no redeal could
// produce one
func (s *Session) gameOver() bool {
	return s.started && !HasSet(s.tableau) && !s.setPossible()
}

// setPossible reports whether any set exists among all cards still in play
func (s *Session) setPossible() bool {
	if len(s.remaining) == 0 {
		return HasSet(s.tableau)
	}
	all := make([]deck.Card, 0, len(s.remaining)+len(s.tableau))
	all = append(all, s.tableau...)
	all = append(all, s.remaining...)
	return HasSet(all)
}
