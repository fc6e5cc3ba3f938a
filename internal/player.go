package internal

import "sync"

// JSONWriter is the write half of a client connection. *websocket.Conn
// satisfies it; tests plug in a recording fake.
type JSONWriter interface {
	WriteJSON(v any) error
}

// Player is one connected participant. ID is the connection id and is
// stable for the connection's lifetime; there is no reconnection, a new
// socket is a new player.
type Player struct {
	ID       string
	Username string
	Score    int

	// IsDrawing marks the current drawer. Exactly one player carries
	// it while a round is active.
	IsDrawing bool

	Conn JSONWriter

	// gorilla websocket connections allow a single concurrent writer,
	// so every write goes through SafeWriteJSON.
	writeMu sync.Mutex
}

func (p *Player) SafeWriteJSON(v any) error {
	if p.Conn == nil {
		return nil
	}
	p.writeMu.Lock()
	defer p.writeMu.Unlock()
	return p.Conn.WriteJSON(v)
}

// PlayerSnapshot is the roster entry broadcast in players_update.
type PlayerSnapshot struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Score     int    `json:"score"`
	IsDrawing bool   `json:"isDrawing"`
}
