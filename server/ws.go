package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/setgame/game"
	"github.com/minaorangina/setgame/protocol"
)

func (g *GameServer) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     g.checkOrigin,
	}
}

func (g *GameServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	for _, o := range g.origins {
		if o == "*" || o == origin {
			return true
		}
	}
	return false
}

// HandleWS plays a game over a websocket. Each inbound command gets
// exactly one reply.
func (g *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game_id")
	if gameID == "" {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte("missing game ID"))
		return
	}

	session, err := g.store.FindGame(gameID)
	if err != nil {
		writeError(w, err)
		return
	}

	upgrader := g.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client
		log.Println(err)
		return
	}
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read for game %s: %v", gameID, err)
			}
			return
		}

		var out protocol.OutboundMessage
		var msg protocol.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			out = protocol.OutboundMessage{Command: protocol.Error, Error: err.Error()}
		} else {
			out = respond(gameID, session, msg)
		}

		if err := conn.WriteJSON(out); err != nil {
			log.Printf("ws write for game %s: %v", gameID, err)
			return
		}
	}
}

// respond runs one websocket command against a session
func respond(gameID string, session *game.Session, msg protocol.InboundMessage) protocol.OutboundMessage {
	out := protocol.OutboundMessage{Command: msg.Command}

	var err error
	switch msg.Command {
	case protocol.Start:
		var res protocol.StartRes
		res, err = startGame(session)
		out.Start = &res

	case protocol.Validate:
		var res protocol.ValidateRes
		res, err = validate(session, msg.CardIDs)
		out.Validate = &res

	case protocol.Hint:
		var res protocol.HintRes
		res, err = hint(session)
		out.Hint = &res

	case protocol.State:
		res := protocol.NewGameRes(gameID, session.Snapshot())
		out.State = &res

	default:
		err = fmt.Errorf("unexpected command %s", msg.Command)
	}

	if err != nil {
		return protocol.OutboundMessage{Command: protocol.Error, Error: err.Error()}
	}
	return out
}
