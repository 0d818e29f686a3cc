package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/minaorangina/setgame/deck"
)

var (
	welcomeText          = "Welcome to Set! Find three cards where every attribute is all the same or all different.\n"
	promptText           = "\nPick three slots (e.g. 1 5 9), h for a hint, n for a new game or q to quit: "
	retryThreeCardsText  = "You need to choose 3 cards\n"
	retryUniqueCardsText = "Please select 3 unique cards\n"
	retryRangeText       = "Slots run from 1 to %d\n"
	setFoundText         = "Set! You have %d points.\n"
	notASetText          = "Not a set, try again.\n"
	hintText             = "There are %d sets on the table. Try slots %s\n"
	redealText           = "No set on the table, so here is a fresh deal.\n"
	newGameText          = "\nNew game!\n"
	gameOverText         = "\nNo sets left. Game over! You found %d sets for %d points.\n"
	goodbyeText          = "Bye!\n"
)

var palette = map[deck.Color]*color.Color{
	deck.Red:    color.New(color.FgRed, color.Bold),
	deck.Green:  color.New(color.FgGreen, color.Bold),
	deck.Purple: color.New(color.FgMagenta, color.Bold),
}

func SendText(w io.Writer, text string, a ...interface{}) {
	fmt.Fprintf(w, text, a...)
}

// Paint renders a card's name in its own color
func Paint(c deck.Card) string {
	return palette[c.Color()].Sprint(c.Name())
}

// BuildTableauText numbers the tableau from 1, in slot order
func BuildTableauText(tableau []deck.Card, remaining int) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, c := range tableau {
		fmt.Fprintf(&b, "%2d) %s\n", i+1, Paint(c))
	}
	fmt.Fprintf(&b, "%s\n", color.HiBlackString("%d cards left in the deck", remaining))
	return b.String()
}

// BuildCatalogText lists cards with their IDs
func BuildCatalogText(cards []deck.Card) string {
	var b strings.Builder
	for _, c := range cards {
		fmt.Fprintf(&b, "%2d  %-28s %s\n", c.ID(), Paint(c), color.HiBlackString(c.ImageKey()))
	}
	return b.String()
}

func slotsText(slots []int) string {
	words := make([]string, 0, len(slots))
	for _, s := range slots {
		words = append(words, fmt.Sprint(s+1))
	}
	return strings.Join(words, " ")
}
