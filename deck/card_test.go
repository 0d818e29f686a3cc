package deck

import (
	"testing"

	utils "github.com/minaorangina/setgame/internal"
	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		wantName string
		wantKey  string
		wantID   int
	}{
		{"first card in the catalog", NewCard(Red, Oval, One, Open), "Red Oval One Open", "red_oval_1_open", 1},
		{"specific card", NewCard(Green, Squiggle, Two, Striped), "Green Squiggle Two Striped", "green_squiggle_2_striped", 41},
		{"last card in the catalog", NewCard(Purple, Diamond, Three, Solid), "Purple Diamond Three Solid", "purple_diamond_3_solid", 81},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			utils.AssertEqual(t, c.card.Name(), c.wantName)
			utils.AssertEqual(t, c.card.ImageKey(), c.wantKey)
			utils.AssertEqual(t, c.card.ID(), c.wantID)
		})
	}

	t.Run("out of range (should panic)", func(t *testing.T) {
		assert.Panics(t, func() { NewCard(Color(3), Oval, One, Open) })
		assert.Panics(t, func() { NewCard(Red, Oval, Count(-1), Open) })
	})

	t.Run("out of range from ints", func(t *testing.T) {
		_, err := NewCardFromInts(0, 0, 0, 3)
		assert.ErrorIs(t, err, ErrAttributeOutOfRange)

		c, err := NewCardFromInts(2, 1, 0, 2)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, c, NewCard(Purple, Squiggle, One, Solid))
	})

	t.Run("cards are values", func(t *testing.T) {
		a := NewCard(Red, Diamond, Three, Striped)
		b := NewCard(Red, Diamond, Three, Striped)
		utils.AssertEqual(t, a, b)
	})

	t.Run("count reports the number of symbols", func(t *testing.T) {
		utils.AssertEqual(t, Three.Int(), 3)
		utils.AssertEqual(t, One.String(), "1")
	})

	t.Run("only catalog cards are valid", func(t *testing.T) {
		for _, c := range New() {
			utils.AssertTrue(t, c.Valid())
		}
		utils.AssertTrue(t, Card{}.Valid())

		bad := []Card{
			{color: 5, shape: -1},
			{color: Red, shape: Oval, count: One, fill: Fill(3)},
			{color: Color(-1), shape: Diamond, count: Three, fill: Solid},
		}
		for _, c := range bad {
			assert.False(t, c.Valid(), "%+v", c)
		}
	})

	t.Run("out of range attributes still print", func(t *testing.T) {
		bad := Card{color: 5, shape: -1, fill: 7}
		assert.NotPanics(t, func() { _ = bad.ImageKey() + bad.String() })
		utils.AssertEqual(t, Color(5).String(), "unknown")
		utils.AssertEqual(t, Shape(-1).String(), "unknown")
	})

	t.Run("accessors", func(t *testing.T) {
		c := NewCard(Purple, Squiggle, Two, Striped)
		utils.AssertEqual(t, c.Color(), Purple)
		utils.AssertEqual(t, c.Shape(), Squiggle)
		utils.AssertEqual(t, c.Count(), Two)
		utils.AssertEqual(t, c.Fill(), Striped)
	})
}
