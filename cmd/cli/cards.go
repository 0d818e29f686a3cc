package main

import (
	"fmt"
	"strconv"

	"github.com/minaorangina/setgame/cli"
	"github.com/minaorangina/setgame/deck"
	"github.com/spf13/cobra"
)

var cardsCmd = &cobra.Command{
	Use:   "cards [card_id]",
	Short: "List the deck, or show one card",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			fmt.Fprint(cmd.OutOrStdout(), cli.BuildCatalogText(deck.New()))
			return nil
		}

		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid card ID %q", args[0])
		}
		c, err := deck.Lookup(id)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), cli.BuildCatalogText([]deck.Card{c}))
		return nil
	},
}
