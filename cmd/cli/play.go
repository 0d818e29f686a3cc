package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/minaorangina/setgame/cli"
	"github.com/minaorangina/setgame/game"
	"github.com/minaorangina/setgame/internal/config"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Play deals twelve cards. Claim a set by typing the slot numbers of
its three cards, for example "1 5 9".

Examples:
  setgame play
  setgame play --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, _ := cmd.Flags().GetInt64("seed")
		if seed == 0 {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			seed = cfg.Seed
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		session, err := game.NewSession(game.SessionOpts{
			Source: rand.New(rand.NewSource(seed)),
		})
		if err != nil {
			return fmt.Errorf("could not create a game: %v", err)
		}

		return cli.Play(session, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	playCmd.Flags().Int64P("seed", "s", 0, "Seed the shuffle to replay a deal (defaults to SETGAME_SEED)")
}
