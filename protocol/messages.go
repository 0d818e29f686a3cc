package protocol

import (
	"github.com/minaorangina/setgame/deck"
	"github.com/minaorangina/setgame/game"
)

// CardView is a card as it crosses the wire
type CardView struct {
	ID    int    `json:"id"`
	Color string `json:"color"`
	Shape string `json:"shape"`
	Count int    `json:"count"`
	Fill  string `json:"fill"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type StatsView struct {
	SetsFound      int `json:"setsFound"`
	Score          int `json:"score"`
	HintsRequested int `json:"hintsRequested"`
	Reshuffles     int `json:"reshuffles"`
}

type CreateGameRes struct {
	GameID         string     `json:"gameID"`
	Tableau        []CardView `json:"tableau"`
	RemainingCount int        `json:"remainingCount"`
}

type StartRes struct {
	Tableau        []CardView `json:"tableau"`
	RemainingCount int        `json:"remainingCount"`
}

type ValidateReq struct {
	CardIDs []int `json:"cardIDs"`
}

type ValidateRes struct {
	Valid            bool       `json:"valid"`
	ReplacementCards []CardView `json:"replacementCards"`
	RemainingCount   int        `json:"remainingCount"`
	GameOver         bool       `json:"gameOver"`
}

type HintRes struct {
	PossibleSets [][]CardView `json:"possibleSets"`
	// ReplacementTableau is only present after a reshuffle
	ReplacementTableau []CardView `json:"replacementTableau,omitempty"`
	GameOver           bool       `json:"gameOver"`
}

type GameRes struct {
	GameID         string     `json:"gameID"`
	State          string     `json:"state"`
	Tableau        []CardView `json:"tableau"`
	RemainingCount int        `json:"remainingCount"`
	Stats          StatsView  `json:"stats"`
	GameOver       bool       `json:"gameOver"`
}

// InboundMessage is a message from a websocket client
type InboundMessage struct {
	Command Cmd   `json:"command"`
	CardIDs []int `json:"cardIDs,omitempty"`
}

// OutboundMessage is a message to a websocket client. Exactly one of the
// payload fields is set, matching Command.
type OutboundMessage struct {
	Command  Cmd          `json:"command"`
	Start    *StartRes    `json:"start,omitempty"`
	Validate *ValidateRes `json:"validate,omitempty"`
	Hint     *HintRes     `json:"hint,omitempty"`
	State    *GameRes     `json:"state,omitempty"`
	Error    string       `json:"error,omitempty"`
}

func NewCardView(c deck.Card) CardView {
	return CardView{
		ID:    c.ID(),
		Color: c.Color().String(),
		Shape: c.Shape().String(),
		Count: c.Count().Int(),
		Fill:  c.Fill().String(),
		Name:  c.Name(),
		Image: c.ImageKey(),
	}
}

func NewCardViews(cards []deck.Card) []CardView {
	views := make([]CardView, 0, len(cards))
	for _, c := range cards {
		views = append(views, NewCardView(c))
	}
	return views
}

func NewValidateRes(r game.ValidateResult, gameOver bool) ValidateRes {
	return ValidateRes{
		Valid:            r.Valid,
		ReplacementCards: NewCardViews(r.Replacements),
		RemainingCount:   r.RemainingCount,
		GameOver:         gameOver,
	}
}

func NewHintRes(r game.HintResult) HintRes {
	sets := make([][]CardView, 0, len(r.Sets))
	for _, set := range r.Sets {
		sets = append(sets, NewCardViews(set[:]))
	}

	res := HintRes{PossibleSets: sets, GameOver: r.GameOver}
	if r.Reshuffled {
		res.ReplacementTableau = NewCardViews(r.Tableau)
	}
	return res
}

func NewGameRes(gameID string, snap game.Snapshot) GameRes {
	return GameRes{
		GameID:         gameID,
		State:          snap.State.String(),
		Tableau:        NewCardViews(snap.Tableau),
		RemainingCount: snap.RemainingCount,
		Stats: StatsView{
			SetsFound:      snap.Stats.SetsFound,
			Score:          snap.Stats.Score,
			HintsRequested: snap.Stats.HintsRequested,
			Reshuffles:     snap.Stats.Reshuffles,
		},
		GameOver: snap.GameOver,
	}
}
