package game

import "github.com/minaorangina/setgame/deck"

func cardsUnique(groups ...[]deck.Card) bool {
	seen := map[deck.Card]struct{}{}
	for _, cards := range groups {
		for _, c := range cards {
			if _, ok := seen[c]; ok {
				return false
			}
			seen[c] = struct{}{}
		}
	}
	return true
}

func copyCards(cards []deck.Card) []deck.Card {
	c := make([]deck.Card, len(cards))
	copy(c, cards)
	return c
}

func indexOf(cards []deck.Card, target deck.Card) int {
	for i, c := range cards {
		if c == target {
			return i
		}
	}
	return -1
}

// removeSlots removes the cards at the given indices, keeping the order
// of the rest
func removeSlots(cards []deck.Card, slots []int) []deck.Card {
	remove := map[int]struct{}{}
	for _, s := range slots {
		remove[s] = struct{}{}
	}

	kept := []deck.Card{}
	for i, c := range cards {
		if _, ok := remove[i]; !ok {
			kept = append(kept, c)
		}
	}
	return kept
}
