package game

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/minaorangina/setgame/deck"
	utils "github.com/minaorangina/setgame/internal"
)

// lastSource always picks the last candidate, so shuffles leave the deck
// untouched and draws come off the end in order
type lastSource struct{}

func (lastSource) Intn(n int) int { return n - 1 }

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// deadTableau returns 12 cards without a set. Every attribute only takes
// its first two values, so no attribute can ever be all different.
func deadTableau() []deck.Card {
	cards := []deck.Card{}
	for _, color := range []deck.Color{deck.Red, deck.Green} {
		for _, shape := range []deck.Shape{deck.Oval, deck.Squiggle} {
			for _, count := range []deck.Count{deck.One, deck.Two} {
				for _, fill := range []deck.Fill{deck.Open, deck.Striped} {
					cards = append(cards, deck.NewCard(color, shape, count, fill))
				}
			}
		}
	}
	return cards[:TableauSize]
}

// redOvalSolids is a set that differs only by count
func redOvalSolids() []deck.Card {
	return []deck.Card{
		deck.NewCard(deck.Red, deck.Oval, deck.One, deck.Solid),
		deck.NewCard(deck.Red, deck.Oval, deck.Two, deck.Solid),
		deck.NewCard(deck.Red, deck.Oval, deck.Three, deck.Solid),
	}
}

// oneSetTableau returns 12 cards holding exactly one set, in the last
// three slots
func oneSetTableau() []deck.Card {
	return append(deadTableau()[:9],
		deck.NewCard(deck.Green, deck.Oval, deck.One, deck.Solid),
		deck.NewCard(deck.Green, deck.Oval, deck.Two, deck.Solid),
		deck.NewCard(deck.Green, deck.Oval, deck.Three, deck.Solid),
	)
}

// without returns the full deck minus the given cards
func without(cards ...[]deck.Card) deck.Deck {
	d := deck.Deck{}
	for _, c := range deck.New() {
		found := false
		for _, group := range cards {
			if containsCard(group, c) {
				found = true
			}
		}
		if !found {
			d = append(d, c)
		}
	}
	return d
}

func containsCard(s []deck.Card, targets ...deck.Card) bool {
	for _, c := range s {
		for _, tg := range targets {
			if c == tg {
				return true
			}
		}
	}
	return false
}

func cardIDs(cards []deck.Card) []int {
	ids := []int{}
	for _, c := range cards {
		ids = append(ids, c.ID())
	}
	sort.Ints(ids)
	return ids
}

func assertSessionInvariants(t *testing.T, s *Session) {
	t.Helper()

	s.mu.RLock()
	defer s.mu.RUnlock()

	utils.AssertUnique(t, s.remaining, s.tableau)
	utils.AssertTrue(t, len(s.remaining)+len(s.tableau) <= deck.Size)
}

func newTestSession(t *testing.T, opts SessionOpts) *Session {
	t.Helper()

	s, err := NewSession(opts)
	utils.AssertNoError(t, err)
	return s
}
