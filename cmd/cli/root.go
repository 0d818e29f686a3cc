package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "setgame",
	Short: "Play Set in the terminal",
	Long: `setgame deals a game of Set in the terminal.
Each card has a color, shape, count and fill. Three cards form a set when
every attribute is all the same or all different across them.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(playCmd)
}
