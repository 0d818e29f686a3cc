package game

import "github.com/minaorangina/setgame/deck"

// FindSets returns every set among cards. Sets are ordered by the
// positions of their cards in the input, lexicographically, and each
// set lists its cards in input order.
//
// For each pair the third card is computed rather than searched for, so
// the cost is quadratic in len(cards).
func FindSets(cards []deck.Card) [][3]deck.Card {
	position := make(map[deck.Card]int, len(cards))
	for i, c := range cards {
		if _, ok := position[c]; !ok {
			position[c] = i
		}
	}

	sets := [][3]deck.Card{}
	for i := 0; i < len(cards); i++ {
		for j := i + 1; j < len(cards); j++ {
			if cards[i] == cards[j] {
				continue
			}
			k, ok := position[Complete(cards[i], cards[j])]
			if !ok || k <= j {
				continue
			}
			sets = append(sets, [3]deck.Card{cards[i], cards[j], cards[k]})
		}
	}

	return sets
}

// HasSet reports whether at least one set exists among cards
func HasSet(cards []deck.Card) bool {
	return len(FindSets(cards)) > 0
}
