package deck

import (
	"errors"
	"fmt"
)

// Size is the number of distinct cards
const Size = numOptions * numOptions * numOptions * numOptions

var ErrUnknownCard = errors.New("unknown card")

// Source is the randomness a deck needs to shuffle and draw.
// *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Deck represents a collection of cards
type Deck []Card

var catalog = build()

func build() Deck {
	cards := make(Deck, 0, Size)
	for color := range colorNames {
		for shape := range shapeNames {
			for count := range countWords {
				for fill := range fillNames {
					cards = append(cards, Card{Color(color), Shape(shape), Count(count), Fill(fill)})
				}
			}
		}
	}
	return cards
}

// New returns a fresh copy of the full deck in catalog order
func New() Deck {
	d := make(Deck, len(catalog))
	copy(d, catalog)
	return d
}

// Lookup returns the catalog card with the given ID
func Lookup(id int) (Card, error) {
	if id < 1 || id > len(catalog) {
		return Card{}, fmt.Errorf("%w: id %d", ErrUnknownCard, id)
	}
	return catalog[id-1], nil
}

// Shuffle shuffles the deck in place
func (d Deck) Shuffle(src Source) {
	for i := len(d) - 1; i > 0; i-- {
		j := src.Intn(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw removes n cards chosen uniformly at random from the deck.
// It returns fewer than n cards if the deck runs out.
func (d *Deck) Draw(src Source, n int) []Card {
	drawn := []Card{}
	for i := 0; i < n && len(*d) > 0; i++ {
		last := len(*d) - 1
		j := src.Intn(len(*d))
		(*d)[j], (*d)[last] = (*d)[last], (*d)[j]
		drawn = append(drawn, (*d)[last])
		*d = (*d)[:last]
	}
	return drawn
}
