package game

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/prysms/draw-backend/internal"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HandleWebSocket upgrades the connection and runs its read loop. One
// socket is one player; room membership is driven entirely by the
// message contract, not the URL.
func (e *Engine) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		e.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	player := &internal.Player{
		ID:   uuid.NewString(),
		Conn: conn,
	}
	e.log.Info().Str("player", player.ID).Msg("connection opened")

	go e.readLoop(player, conn)
}

func (e *Engine) readLoop(p *internal.Player, conn *websocket.Conn) {
	defer func() {
		conn.Close()
		e.Disconnect(p)
		e.log.Info().Str("player", p.ID).Msg("connection closed")
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg internal.Message[json.RawMessage]
		if err := json.Unmarshal(raw, &msg); err != nil {
			sendError(p, err)
			continue
		}
		if err := e.dispatch(p, msg); err != nil {
			sendError(p, err)
		}
	}
}

// dispatch routes one decoded envelope to its handler. A returned error
// goes back to the sender only; room state is untouched.
func (e *Engine) dispatch(p *internal.Player, msg internal.Message[json.RawMessage]) error {
	switch msg.Type {
	case "create_room":
		var data internal.CreateRoomData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return e.CreateRoom(p, data.Username)

	case "join_room":
		var data internal.JoinRoomData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return e.JoinRoom(p, data.Room, data.Username)

	case "start_game":
		var data internal.StartGameData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return e.StartGame(p, data.Rounds)

	case "select_word":
		var data internal.SelectWordData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return e.SelectWord(p, data.WordID)

	case "send_drawing":
		var data internal.DrawingData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return e.SendDrawing(p, data.DrawingData)

	case "send_guess":
		var data internal.GuessData
		if err := json.Unmarshal(msg.Data, &data); err != nil {
			return err
		}
		return e.Guess(p, data.Text)

	default:
		e.log.Debug().Str("player", p.ID).Str("type", msg.Type).
			Msg("unknown message type")
		return nil
	}
}
