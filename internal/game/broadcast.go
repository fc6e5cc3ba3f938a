package game

import (
	"slices"

	"github.com/prysms/draw-backend/internal"
)

// broadcastToRoom fans one event out to every member. The roster is
// snapshotted under the room lock and written to afterwards, so a slow
// connection never stalls the room.
func broadcastToRoom[T any](room *internal.Room, msg internal.Message[T]) {
	room.Mu.Lock()
	players := slices.Clone(room.Players)
	room.Mu.Unlock()

	for _, p := range players {
		_ = p.SafeWriteJSON(msg)
	}
}

func broadcastToRoomExcept[T any](room *internal.Room, msg internal.Message[T], exclude *internal.Player) {
	room.Mu.Lock()
	players := slices.Clone(room.Players)
	room.Mu.Unlock()

	for _, p := range players {
		if exclude != nil && p.ID == exclude.ID {
			continue
		}
		_ = p.SafeWriteJSON(msg)
	}
}

func (e *Engine) broadcastPlayers(room *internal.Room) {
	room.Mu.Lock()
	snapshot := room.Snapshot()
	room.Mu.Unlock()

	broadcastToRoom(room, internal.Message[internal.PlayersUpdateData]{
		Type: "players_update",
		Data: internal.PlayersUpdateData{Players: snapshot},
	})
}

// broadcastState sends each member their projection of the game state:
// the drawer's copy carries the secret word, everyone else only gets
// the hint mask (the word appears for all once the round is over).
func (e *Engine) broadcastState(room *internal.Room) {
	room.Mu.Lock()
	spectator := spectatorView(room)
	drawer := spectator
	drawer.CurrentWord = room.State.CurrentWord
	drawerID := room.State.CurrentDrawer
	players := slices.Clone(room.Players)
	room.Mu.Unlock()

	for _, p := range players {
		view := spectator
		if p.ID == drawerID {
			view = drawer
		}
		_ = p.SafeWriteJSON(internal.Message[internal.GameStateView]{
			Type: "game_state_update",
			Data: view,
		})
	}
}

// spectatorView is the redacted projection. Word options never appear
// in it, and the word itself only once the round has ended. Caller
// holds room.Mu.
func spectatorView(room *internal.Room) internal.GameStateView {
	view := internal.GameStateView{
		Status:        room.State.Status,
		CurrentDrawer: room.State.CurrentDrawer,
		TimeLeft:      room.State.TimeLeft,
		Round:         room.State.Round,
		TotalRounds:   room.State.TotalRounds,
		Hints:         slices.Clone(room.State.Hints),
	}
	if room.State.Status == internal.StatusRoundEnd {
		view.CurrentWord = room.State.CurrentWord
	}
	return view
}

func sendError(p *internal.Player, err error) {
	_ = p.SafeWriteJSON(internal.Message[internal.ErrorData]{
		Type: "error",
		Data: internal.ErrorData{Message: err.Error()},
	})
}
