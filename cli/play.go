package cli

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/minaorangina/setgame/deck"
	"github.com/minaorangina/setgame/game"
)

var (
	ErrThreeCards  = errors.New("need three cards")
	ErrUniqueCards = errors.New("cards must be unique")
	ErrSlotRange   = errors.New("slot out of range")
)

type conn struct {
	In  io.Reader
	Out io.Writer
}

// Play runs an interactive game on a session until the player quits, the
// input ends or no set is left. A session that has not started is dealt
// first.
func Play(session *game.Session, in io.Reader, out io.Writer) error {
	c := conn{In: in, Out: out}
	reader := bufio.NewScanner(c.In)

	if session.State() == game.NotStarted {
		if _, err := session.StartGame(); err != nil {
			return err
		}
	}

	SendText(c.Out, welcomeText)
	showTableau(c, session)

	for {
		SendText(c.Out, promptText)
		if !reader.Scan() {
			return reader.Err()
		}
		entry := strings.ToLower(strings.TrimSpace(reader.Text()))

		switch entry {
		case "":
			continue

		case "q", "quit":
			SendText(c.Out, goodbyeText)
			return nil

		case "n", "new":
			if _, err := session.StartGame(); err != nil {
				return err
			}
			SendText(c.Out, newGameText)
			showTableau(c, session)

		case "h", "hint":
			over, err := hint(c, session)
			if err != nil {
				return err
			}
			if over {
				return nil
			}

		default:
			over, err := claim(c, session, entry)
			if err != nil {
				return err
			}
			if over {
				return nil
			}
		}
	}
}

func hint(c conn, session *game.Session) (bool, error) {
	res, err := session.Hint()
	if err != nil {
		return false, err
	}

	if res.GameOver {
		showGameOver(c, session)
		return true, nil
	}

	if res.Reshuffled {
		SendText(c.Out, redealText)
		showTableau(c, session)
		return false, nil
	}

	SendText(c.Out, hintText, len(res.Sets), slotsText(slotsOf(res.Tableau, res.Sets[0][:])))
	return false, nil
}

func claim(c conn, session *game.Session, entry string) (bool, error) {
	tableau := session.Tableau()

	slots, err := parseSlots(entry, len(tableau))
	switch {
	case errors.Is(err, ErrThreeCards):
		SendText(c.Out, retryThreeCardsText)
		return false, nil
	case errors.Is(err, ErrUniqueCards):
		SendText(c.Out, retryUniqueCardsText)
		return false, nil
	case errors.Is(err, ErrSlotRange):
		SendText(c.Out, retryRangeText, len(tableau))
		return false, nil
	}

	ids := make([]int, 0, len(slots))
	for _, s := range slots {
		ids = append(ids, tableau[s].ID())
	}

	res, err := session.ValidateAndReplace(ids)
	if err != nil {
		return false, err
	}

	if !res.Valid {
		SendText(c.Out, notASetText)
		return false, nil
	}

	SendText(c.Out, setFoundText, session.Stats().Score)
	if session.GameOver() {
		showGameOver(c, session)
		return true, nil
	}
	showTableau(c, session)
	return false, nil
}

// parseSlots reads three 1-based slot numbers into 0-based slots
func parseSlots(entry string, tableauSize int) ([]int, error) {
	fields := strings.Fields(strings.ReplaceAll(entry, ",", " "))
	if len(fields) != 3 {
		return nil, ErrThreeCards
	}

	slots := []int{}
	seen := map[int]bool{}
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil || n < 1 || n > tableauSize {
			return nil, ErrSlotRange
		}
		if seen[n] {
			return nil, ErrUniqueCards
		}
		seen[n] = true
		slots = append(slots, n-1)
	}

	return slots, nil
}

func slotsOf(tableau, cards []deck.Card) []int {
	slots := []int{}
	for _, want := range cards {
		for i, c := range tableau {
			if c == want {
				slots = append(slots, i)
				break
			}
		}
	}
	return slots
}

func showTableau(c conn, session *game.Session) {
	snap := session.Snapshot()
	SendText(c.Out, "%s", BuildTableauText(snap.Tableau, snap.RemainingCount))
}

func showGameOver(c conn, session *game.Session) {
	stats := session.Stats()
	SendText(c.Out, gameOverText, stats.SetsFound, stats.Score)
}
