package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/handlers"
	"github.com/minaorangina/setgame/deck"
	"github.com/minaorangina/setgame/game"
	"github.com/minaorangina/setgame/protocol"
	"github.com/minaorangina/setgame/store"
)

// GameServer is a game server
type GameServer struct {
	store     store.GameStore
	newSource func() game.Source
	origins   []string
	http.Server
}

// ServerOpts configures a GameServer. Only Store is required.
type ServerOpts struct {
	Store store.GameStore
	// NewSource supplies the randomness for each new game
	NewSource      func() game.Source
	AllowedOrigins []string
	StaticDir      string
	// AccessLog receives one line per request when set
	AccessLog io.Writer
}

// NewSourceFactory returns a function handing out independent random
// sources, all derived from seed. A zero seed uses the clock.
func NewSourceFactory(seed int64) func() game.Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var mu sync.Mutex
	master := rand.New(rand.NewSource(seed))

	return func() game.Source {
		mu.Lock()
		defer mu.Unlock()
		return rand.New(rand.NewSource(master.Int63()))
	}
}

// NewServer creates a new GameServer
func NewServer(opts ServerOpts) *GameServer {
	s := &GameServer{
		store:     opts.Store,
		newSource: opts.NewSource,
		origins:   opts.AllowedOrigins,
	}
	if s.newSource == nil {
		s.newSource = NewSourceFactory(0)
	}
	if len(s.origins) == 0 {
		s.origins = []string{"*"}
	}

	router := http.NewServeMux()

	if opts.StaticDir != "" {
		router.Handle("GET /", http.FileServer(http.Dir(opts.StaticDir)))
	}
	router.HandleFunc("GET /cards", s.HandleListCards)
	router.HandleFunc("POST /new", s.HandleNewGame)
	router.HandleFunc("GET /game/{id}", s.HandleFindGame)
	router.HandleFunc("DELETE /game/{id}", s.HandleDeleteGame)
	router.HandleFunc("POST /game/{id}/start", s.HandleStartGame)
	router.HandleFunc("POST /game/{id}/validate", s.HandleValidate)
	router.HandleFunc("GET /game/{id}/hint", s.HandleHint)
	router.HandleFunc("GET /ws", s.HandleWS)

	var handler http.Handler = router
	handler = handlers.CORS(
		handlers.AllowedOrigins(s.origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)
	handler = handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))(handler)
	if opts.AccessLog != nil {
		handler = handlers.LoggingHandler(opts.AccessLog, handler)
	}

	s.Handler = handler

	return s
}

// ServeHTTP serves http
func (g *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.Handler.ServeHTTP(w, r)
}

// HandleListCards lists the whole catalog
func (g *GameServer) HandleListCards(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, protocol.NewCardViews(deck.New()))
}

// HandleNewGame creates a game and deals its first tableau
func (g *GameServer) HandleNewGame(w http.ResponseWriter, r *http.Request) {
	session, err := game.NewSession(game.SessionOpts{Source: g.newSource()})
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := startGame(session)
	if err != nil {
		writeError(w, err)
		return
	}

	gameID := store.NewID()
	if err := g.store.AddGame(gameID, session); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, protocol.CreateGameRes{
		GameID:         gameID,
		Tableau:        res.Tableau,
		RemainingCount: res.RemainingCount,
	})
}

func (g *GameServer) HandleFindGame(w http.ResponseWriter, r *http.Request) {
	gameID := r.PathValue("id")
	session, err := g.store.FindGame(gameID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, protocol.NewGameRes(gameID, session.Snapshot()))
}

func (g *GameServer) HandleDeleteGame(w http.ResponseWriter, r *http.Request) {
	if err := g.store.RemoveGame(r.PathValue("id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleStartGame restarts an existing game
func (g *GameServer) HandleStartGame(w http.ResponseWriter, r *http.Request) {
	session, err := g.store.FindGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := startGame(session)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (g *GameServer) HandleValidate(w http.ResponseWriter, r *http.Request) {
	session, err := g.store.FindGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	var data protocol.ValidateReq
	err = json.NewDecoder(r.Body).Decode(&data)
	defer r.Body.Close()
	if err != nil {
		writeParseError(err, w)
		return
	}

	res, err := validate(session, data.CardIDs)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// HandleHint returns every set on the tableau. A dead tableau is redealt.
func (g *GameServer) HandleHint(w http.ResponseWriter, r *http.Request) {
	session, err := g.store.FindGame(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := hint(session)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func startGame(session *game.Session) (protocol.StartRes, error) {
	tableau, err := session.StartGame()
	if err != nil {
		return protocol.StartRes{}, err
	}
	return protocol.StartRes{
		Tableau:        protocol.NewCardViews(tableau),
		RemainingCount: session.RemainingCount(),
	}, nil
}

func validate(session *game.Session, cardIDs []int) (protocol.ValidateRes, error) {
	res, err := session.ValidateAndReplace(cardIDs)
	if err != nil {
		return protocol.ValidateRes{}, err
	}
	return protocol.NewValidateRes(res, session.GameOver()), nil
}

func hint(session *game.Session) (protocol.HintRes, error) {
	res, err := session.Hint()
	if err != nil {
		return protocol.HintRes{}, err
	}
	return protocol.NewHintRes(res), nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrUnknownGameID):
		return http.StatusNotFound
	case errors.Is(err, game.ErrInvalidSelectionSize),
		errors.Is(err, game.ErrUnknownCardReference):
		return http.StatusBadRequest
	case errors.Is(err, game.ErrGameNotStarted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.Println(err.Error())
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(err.Error()))
}

func writeParseError(err error, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusBadRequest)

	if errors.Is(err, io.EOF) {
		w.Write([]byte("Missing body"))
		return
	}
	w.Write([]byte(fmt.Sprintf("could not parse body: %v", err)))
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		log.Println(err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}
