package server

import (
	"bytes"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/setgame/deck"
	"github.com/minaorangina/setgame/game"
	utils "github.com/minaorangina/setgame/internal"
	"github.com/minaorangina/setgame/store"
	"github.com/stretchr/testify/require"
)

const testGameID = "this-is-a-game-id"

func fixedSources() func() game.Source {
	return NewSourceFactory(42)
}

func newBasicServer() *GameServer {
	return NewServer(ServerOpts{
		Store:     store.NewInMemoryGameStore(),
		NewSource: fixedSources(),
	})
}

// newTestSession holds the first twelve catalog cards, which include the
// set of ids 1, 4 and 7
func newTestSession(t *testing.T) *game.Session {
	t.Helper()

	cards := deck.New()
	session, err := game.NewSession(game.SessionOpts{
		Source:    rand.New(rand.NewSource(1)),
		Tableau:   cards[:game.TableauSize],
		Remaining: cards[game.TableauSize:],
	})
	utils.AssertNoError(t, err)

	return session
}

func newServerWithSession(t *testing.T, session *game.Session) (*GameServer, store.GameStore) {
	t.Helper()

	s := store.NewInMemoryGameStore()
	utils.AssertNoError(t, s.AddGame(testGameID, session))

	return NewServer(ServerOpts{Store: s, NewSource: fixedSources()}), s
}

func mustMakeJson(t *testing.T, input interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(input)
	utils.AssertNoError(t, err)

	return data
}

func mustDecode(t *testing.T, body io.Reader, target interface{}) {
	t.Helper()

	bodyBytes, err := io.ReadAll(body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(bodyBytes, target), string(bodyBytes))
}

func newValidateRequest(gameID string, data []byte) *http.Request {
	request, _ := http.NewRequest(http.MethodPost, "/game/"+gameID+"/validate", bytes.NewBuffer(data))
	return request
}

func serve(server *GameServer, request *http.Request) *httptest.ResponseRecorder {
	response := httptest.NewRecorder()
	server.ServeHTTP(response, request)
	return response
}

func makeWSUrl(serverURL, gameID string) string {
	return "ws" + strings.TrimPrefix(serverURL, "http") + "/ws?game_id=" + gameID
}

func mustDialWS(t *testing.T, url string) *websocket.Conn {
	t.Helper()

	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("could not open a ws connection on %s %v", url, err)
	}

	return ws
}

func assertStatus(t *testing.T, got, want int) {
	t.Helper()
	if got != want {
		t.Errorf("got status %d, want %d", got, want)
	}
}
