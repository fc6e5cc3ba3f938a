package game

import (
	"github.com/prysms/draw-backend/internal"
)

// SendDrawing stores the drawer's latest canvas snapshot and relays it
// verbatim to every other connection in the room. The payload is opaque
// to the server; replaying an identical snapshot changes nothing beyond
// overwriting it with itself.
func (e *Engine) SendDrawing(p *internal.Player, data string) error {
	room, ok := e.reg.RoomFor(p.ID)
	if !ok {
		return ErrRoomNotFound
	}

	room.Mu.Lock()
	if room.State.CurrentDrawer != p.ID {
		room.Mu.Unlock()
		return ErrNotDrawer
	}
	room.DrawingSnapshot = data
	room.Mu.Unlock()

	broadcastToRoomExcept(room, internal.Message[internal.DrawingData]{
		Type: "drawing_update",
		Data: internal.DrawingData{DrawingData: data},
	}, p)
	return nil
}
