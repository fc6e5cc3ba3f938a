package game

import (
	"context"

	"github.com/prysms/draw-backend/internal"
)

// roundStart carries what finishRoundStart needs once the room lock is
// released: the drawer to receive the private word options, the token
// of the selection countdown armed with the transition, or the fact
// that the game just ended.
type roundStart struct {
	gameEnded bool
	drawer    *internal.Player
	options   []internal.WordOption
	timerCtx  context.Context
}

// StartGame begins the round loop. Only the host may issue it, only
// from the waiting phase; the total round count is rounds per player.
func (e *Engine) StartGame(p *internal.Player, rounds int) error {
	room, ok := e.reg.RoomFor(p.ID)
	if !ok {
		return ErrRoomNotFound
	}

	room.Mu.Lock()
	if host := room.Host(); host == nil || host.ID != p.ID {
		room.Mu.Unlock()
		return ErrNotHost
	}
	if room.State.Status != internal.StatusWaiting {
		room.Mu.Unlock()
		return ErrGameInProgress
	}
	if rounds <= 0 {
		room.Mu.Unlock()
		return ErrInvalidRounds
	}
	room.State.TotalRounds = rounds * len(room.Players)
	room.State.Round = 0
	totalRounds := room.State.TotalRounds
	rs := e.startNextRoundLocked(room)
	room.Mu.Unlock()

	e.log.Info().Str("room", room.Code).Int("total_rounds", totalRounds).
		Msg("game started")
	e.finishRoundStart(room, rs)
	return nil
}

// SelectWord moves the room from selecting to drawing once the drawer
// picks one of the offered options.
func (e *Engine) SelectWord(p *internal.Player, wordID string) error {
	room, ok := e.reg.RoomFor(p.ID)
	if !ok {
		return ErrRoomNotFound
	}

	room.Mu.Lock()
	if room.State.Status != internal.StatusSelecting {
		room.Mu.Unlock()
		return ErrWrongPhase
	}
	if room.State.CurrentDrawer != p.ID {
		room.Mu.Unlock()
		return ErrNotDrawer
	}
	opt, ok := room.OptionByID(wordID)
	if !ok {
		room.Mu.Unlock()
		return ErrUnknownWord
	}
	e.beginDrawingLocked(room, opt)
	ctx := e.armTimerLocked(room, e.cfg.DrawSeconds)
	room.Mu.Unlock()

	e.log.Info().Str("room", room.Code).Str("drawer", p.ID).
		Str("tier", string(opt.Tier)).Msg("word selected")
	e.broadcastState(room)
	go e.runCountdown(room.Code, ctx)
	return nil
}

// beginDrawingLocked flips the room into the drawing phase for opt.
// Caller holds room.Mu and arms the drawing timer in the same critical
// section.
func (e *Engine) beginDrawingLocked(room *internal.Room, opt internal.WordOption) {
	room.State.CurrentWord = opt.Word
	room.Revealed = make(map[int]bool)
	room.State.Hints = HintMask(opt.Word, 0, room.Revealed)
	room.State.WordOptions = nil
	room.State.Status = internal.StatusDrawing
}

// startNextRoundLocked advances the room to the next selecting phase,
// or to game end once every round has been played. Caller holds
// room.Mu. The previous timer is always cancelled before any new state
// is armed, so at most one countdown is ever live per room.
func (e *Engine) startNextRoundLocked(room *internal.Room) roundStart {
	room.CancelTimer()

	if room.State.Round >= room.State.TotalRounds {
		room.State.Status = internal.StatusGameEnd
		room.State.CurrentDrawer = ""
		room.State.CurrentWord = ""
		room.State.WordOptions = nil
		room.State.Hints = nil
		room.State.TimeLeft = 0
		room.Revealed = nil
		for _, p := range room.Players {
			p.IsDrawing = false
		}
		return roundStart{gameEnded: true}
	}

	room.State.Round++

	// Round-robin by join order, wrapping around; the host draws the
	// opening round.
	n := len(room.Players)
	idx := room.DrawerIdx % n
	if room.State.Round > 1 {
		idx = (room.DrawerIdx + 1) % n
	}
	room.DrawerIdx = idx
	for i, p := range room.Players {
		p.IsDrawing = i == idx
	}
	drawer := room.Players[idx]

	room.State.CurrentDrawer = drawer.ID
	room.State.CurrentWord = ""
	room.State.Hints = nil
	room.Revealed = nil
	room.State.WordOptions = GenerateWordOptions()
	room.State.Status = internal.StatusSelecting
	room.DrawingSnapshot = ""

	return roundStart{
		drawer:   drawer,
		options:  room.State.WordOptions,
		timerCtx: e.armTimerLocked(room, e.cfg.SelectSeconds),
	}
}

// finishRoundStart performs the I/O half of a round transition: state
// and roster broadcasts, the drawer's private options, and the tick
// goroutine for the already-armed selection countdown. Never called
// with room.Mu held.
func (e *Engine) finishRoundStart(room *internal.Room, rs roundStart) {
	e.broadcastState(room)
	e.broadcastPlayers(room)

	if rs.gameEnded {
		e.log.Info().Str("room", room.Code).Msg("game over")
		return
	}

	if err := rs.drawer.SafeWriteJSON(internal.Message[internal.WordOptionsData]{
		Type: "word_options",
		Data: internal.WordOptionsData{Options: rs.options},
	}); err != nil {
		e.log.Warn().Str("room", room.Code).Str("drawer", rs.drawer.ID).
			Err(err).Msg("failed to deliver word options")
	}
	go e.runCountdown(room.Code, rs.timerCtx)
}
