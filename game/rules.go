package game

import (
	"fmt"

	"github.com/minaorangina/setgame/deck"
)

// IsSet reports whether three cards form a set: for every attribute the
// values are either all the same or all different. A triple that repeats
// a card is never a set.
func IsSet(a, b, c deck.Card) bool {
	if a == b || b == c || a == c {
		return false
	}

	av, bv, cv := a.Attributes(), b.Attributes(), c.Attributes()
	for i := range av {
		// with three options, all-same and all-different are exactly
		// the triples whose values sum to a multiple of three
		if (av[i]+bv[i]+cv[i])%3 != 0 {
			return false
		}
	}

	return true
}

// Validate checks a selection of cards, which must hold exactly three
func Validate(cards []deck.Card) (bool, error) {
	if len(cards) != setSize {
		return false, fmt.Errorf("%w: got %d cards", ErrInvalidSelectionSize, len(cards))
	}
	return IsSet(cards[0], cards[1], cards[2]), nil
}

// Complete returns the only card that forms a set with a and b.
// If a and b are the same card, it returns that card.
func Complete(a, b deck.Card) deck.Card {
	av, bv := a.Attributes(), b.Attributes()
	var cv [4]int
	for i := range av {
		if av[i] == bv[i] {
			cv[i] = av[i]
		} else {
			cv[i] = 3 - av[i] - bv[i]
		}
	}

	c, err := deck.NewCardFromInts(cv[0], cv[1], cv[2], cv[3])
	if err != nil {
		panic(err) // not reachable for in-range inputs
	}
	return c
}
