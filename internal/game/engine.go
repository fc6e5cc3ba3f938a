package game

import (
	"github.com/rs/zerolog"

	"github.com/prysms/draw-backend/internal"
	"github.com/prysms/draw-backend/internal/ledger"
)

// Config holds the phase durations in seconds. Production uses the
// defaults; tests shrink them to drive transitions quickly.
type Config struct {
	SelectSeconds   int
	DrawSeconds     int
	RoundEndSeconds int
}

func DefaultConfig() Config {
	return Config{
		SelectSeconds:   internal.SelectPhaseDuration,
		DrawSeconds:     internal.DrawPhaseDuration,
		RoundEndSeconds: internal.RoundEndPhaseDuration,
	}
}

// Engine coordinates every room of the draw-and-guess minigame. It owns
// the registry for its whole lifetime; there is no process-global room
// table. Each inbound command or timer tick mutates exactly one room
// under that room's lock, so handlers for the same room never
// interleave while different rooms proceed independently.
type Engine struct {
	reg    *Registry
	ledger ledger.Recorder
	cfg    Config
	log    zerolog.Logger
}

func NewEngine(cfg Config, rec ledger.Recorder, log zerolog.Logger) *Engine {
	return &Engine{
		reg:    NewRegistry(),
		ledger: rec,
		cfg:    cfg,
		log:    log,
	}
}

// CreateRoom opens a new room with p as host and first drawer and sends
// the generated code back on p's connection.
func (e *Engine) CreateRoom(p *internal.Player, username string) error {
	if e.reg.InRoom(p.ID) {
		return ErrAlreadyInRoom
	}
	p.Username = usernameOrDefault(username)
	p.Score = 0

	room := e.reg.Create(p)
	e.log.Info().Str("room", room.Code).Str("player", p.ID).
		Str("username", p.Username).Msg("room created")

	_ = p.SafeWriteJSON(internal.Message[internal.RoomCreatedData]{
		Type: "room_created",
		Data: internal.RoomCreatedData{Room: room.Code},
	})
	e.broadcastPlayers(room)
	return nil
}

// JoinRoom appends p to an existing room and replays the current game
// state and drawing snapshot to the joining connection only.
func (e *Engine) JoinRoom(p *internal.Player, code, username string) error {
	if e.reg.InRoom(p.ID) {
		return ErrAlreadyInRoom
	}
	room, ok := e.reg.Get(code)
	if !ok {
		return ErrRoomNotFound
	}
	p.Username = usernameOrDefault(username)
	p.Score = 0
	p.IsDrawing = false

	room.Mu.Lock()
	if room.Closed {
		room.Mu.Unlock()
		return ErrRoomNotFound
	}
	room.Players = append(room.Players, p)
	view := spectatorView(room)
	drawing := room.DrawingSnapshot
	room.Mu.Unlock()

	e.reg.Bind(p.ID, room.Code)
	e.log.Info().Str("room", room.Code).Str("player", p.ID).
		Str("username", p.Username).Msg("player joined")

	e.broadcastPlayers(room)
	_ = p.SafeWriteJSON(internal.Message[internal.GameStateView]{
		Type: "game_state_update",
		Data: view,
	})
	if drawing != "" {
		_ = p.SafeWriteJSON(internal.Message[internal.DrawingData]{
			Type: "drawing_update",
			Data: internal.DrawingData{DrawingData: drawing},
		})
	}
	return nil
}

// Disconnect removes p from its room. The last player leaving destroys
// the room (timer first); the drawer leaving mid-round forces the next
// round immediately with no award.
func (e *Engine) Disconnect(p *internal.Player) {
	room, ok := e.reg.RoomFor(p.ID)
	e.reg.Unbind(p.ID)
	if !ok {
		return
	}

	room.Mu.Lock()
	idx := room.IndexOf(p.ID)
	if idx == -1 {
		room.Mu.Unlock()
		return
	}
	wasDrawer := room.State.CurrentDrawer == p.ID
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)

	if len(room.Players) == 0 {
		room.CancelTimer()
		room.Closed = true
		room.Mu.Unlock()
		e.reg.Remove(room.Code)
		e.log.Info().Str("room", room.Code).Msg("room destroyed, roster empty")
		return
	}

	// Realign rotation with the shrunken roster. Removing the drawer
	// steps the index back one so the next advance lands on the player
	// who followed them in join order.
	if idx < room.DrawerIdx {
		room.DrawerIdx--
	} else if idx == room.DrawerIdx {
		room.DrawerIdx--
		if room.DrawerIdx < 0 {
			room.DrawerIdx = len(room.Players) - 1
		}
	}

	roundActive := room.State.Status == internal.StatusSelecting ||
		room.State.Status == internal.StatusDrawing ||
		room.State.Status == internal.StatusRoundEnd

	var rs roundStart
	forced := false
	switch {
	case wasDrawer && roundActive:
		room.CancelTimer()
		rs = e.startNextRoundLocked(room)
		forced = true
	case wasDrawer && room.State.Status == internal.StatusWaiting:
		// the host left before the game started; the new host
		// inherits the drawer slot
		host := room.Players[0]
		host.IsDrawing = true
		room.State.CurrentDrawer = host.ID
		room.DrawerIdx = 0
	}
	room.Mu.Unlock()

	e.log.Info().Str("room", room.Code).Str("player", p.ID).
		Bool("was_drawer", wasDrawer).Msg("player left")

	if forced {
		e.finishRoundStart(room, rs)
		return
	}
	e.broadcastPlayers(room)
}

func usernameOrDefault(username string) string {
	if username == "" {
		return "Anonymous"
	}
	return username
}
