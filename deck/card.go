package deck

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrAttributeOutOfRange = errors.New("attribute out of range")

// Color is the colour of the symbols on a card
type Color int

var colorNames = []string{"red", "green", "purple"}

const (
	Red Color = iota
	Green
	Purple
)

// Shape is the symbol printed on a card
type Shape int

var shapeNames = []string{"oval", "squiggle", "diamond"}

const (
	Oval Shape = iota
	Squiggle
	Diamond
)

// Count is the number of symbols on a card
type Count int

var countWords = []string{"One", "Two", "Three"}

const (
	One Count = iota
	Two
	Three
)

// Fill is the shading of the symbols on a card
type Fill int

var fillNames = []string{"open", "striped", "solid"}

const (
	Open Fill = iota
	Striped
	Solid
)

// numOptions is the number of values each attribute can take
const numOptions = 3

func (c Color) String() string { return nameOf(colorNames, int(c)) }
func (s Shape) String() string { return nameOf(shapeNames, int(s)) }
func (f Fill) String() string  { return nameOf(fillNames, int(f)) }

// Int returns the number of symbols, 1 to 3
func (n Count) Int() int { return int(n) + 1 }

func (n Count) String() string { return strconv.Itoa(n.Int()) }

func nameOf(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return "unknown"
	}
	return names[v]
}

// Card is one member of the deck. Cards are values: two cards with the
// same attributes are the same card. The zero Card is Red Oval One Open;
// any other card comes from NewCard, NewCardFromInts or the catalog.
type Card struct {
	color Color
	shape Shape
	count Count
	fill  Fill
}

func (c Card) Color() Color { return c.color }
func (c Card) Shape() Shape { return c.shape }
func (c Card) Count() Count { return c.count }
func (c Card) Fill() Fill   { return c.fill }

// NewCard constructs a card, panicking on an out-of-range attribute
func NewCard(color Color, shape Shape, count Count, fill Fill) Card {
	c, err := NewCardFromInts(int(color), int(shape), int(count), int(fill))
	if err != nil {
		panic(err)
	}
	return c
}

// NewCardFromInts constructs a card from zero-based attribute indices
func NewCardFromInts(color, shape, count, fill int) (Card, error) {
	for _, v := range []int{color, shape, count, fill} {
		if v < 0 || v >= numOptions {
			return Card{}, fmt.Errorf("%w: %d", ErrAttributeOutOfRange, v)
		}
	}
	return Card{Color(color), Shape(shape), Count(count), Fill(fill)}, nil
}

// Attributes returns the four attributes as zero-based indices,
// in the order color, shape, count, fill
func (c Card) Attributes() [4]int {
	return [4]int{int(c.color), int(c.shape), int(c.count), int(c.fill)}
}

// ID returns the card's catalog identifier, 1 to 81
func (c Card) ID() int {
	a := c.Attributes()
	idx := 0
	for _, v := range a {
		idx = idx*numOptions + v
	}
	return idx + 1
}

// Valid reports whether the card is one of the catalog cards
func (c Card) Valid() bool {
	found, err := Lookup(c.ID())
	return err == nil && found == c
}

// Name returns a display name such as "Red Oval One Solid"
func (c Card) Name() string {
	return fmt.Sprintf("%s %s %s %s",
		title(c.color.String()), title(c.shape.String()), nameOf(countWords, int(c.count)), title(c.fill.String()))
}

// ImageKey returns the sprite lookup key, e.g. "red_oval_1_solid"
func (c Card) ImageKey() string {
	return fmt.Sprintf("%s_%s_%s_%s", c.color, c.shape, c.count, c.fill)
}

func (c Card) String() string {
	return c.Name()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
