package deck

import (
	"math/rand"
	"testing"

	utils "github.com/minaorangina/setgame/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeck(t *testing.T) {
	t.Run("full deck has 81 distinct cards", func(t *testing.T) {
		d := New()
		require.Len(t, d, Size)
		require.Equal(t, 81, Size)
		utils.AssertUnique(t, d)
	})

	t.Run("card IDs follow catalog order", func(t *testing.T) {
		for i, c := range New() {
			utils.AssertEqual(t, c.ID(), i+1)

			found, err := Lookup(c.ID())
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, found, c)
		}
	})

	t.Run("lookup rejects unknown IDs", func(t *testing.T) {
		for _, id := range []int{0, -4, 82} {
			_, err := Lookup(id)
			assert.ErrorIs(t, err, ErrUnknownCard)
		}
	})

	t.Run("New returns an independent copy", func(t *testing.T) {
		d := New()
		d[0] = NewCard(Purple, Diamond, Three, Solid)

		first, err := Lookup(1)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, first, NewCard(Red, Oval, One, Open))
	})
}

func TestDeckShuffle(t *testing.T) {
	d := New()
	d.Shuffle(rand.New(rand.NewSource(7)))

	require.Len(t, d, Size)
	utils.AssertUnique(t, d)
	assert.NotEqual(t, New(), d)
}

func TestDeckDraw(t *testing.T) {
	t.Run("draws without replacement", func(t *testing.T) {
		d := New()
		drawn := d.Draw(rand.New(rand.NewSource(1)), 12)

		require.Len(t, drawn, 12)
		require.Len(t, d, Size-12)
		utils.AssertUnique(t, drawn, d)
	})

	t.Run("stops when the deck runs out", func(t *testing.T) {
		d := Deck(New()[:2])
		drawn := d.Draw(rand.New(rand.NewSource(1)), 3)

		assert.Len(t, drawn, 2)
		assert.Empty(t, d)
	})
}
