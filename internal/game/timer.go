package game

import (
	"context"
	"time"

	"github.com/prysms/draw-backend/internal"
)

// armTimerLocked replaces the room's countdown with a fresh one of the
// given length. Caller holds room.Mu, so the new timer comes into
// existence in the same critical section as the phase transition it
// times and no other handler can slip in between. The returned context
// is the liveness token the caller hands to runCountdown after
// unlocking.
func (e *Engine) armTimerLocked(room *internal.Room, seconds int) context.Context {
	room.CancelTimer()
	ctx, cancel := context.WithCancel(context.Background())
	room.Timer = &internal.RoundTimer{Context: ctx, Cancel: cancel}
	room.State.TimeLeft = seconds
	return ctx
}

// runCountdown delivers one tick per second until the timer's context
// is cancelled.
func (e *Engine) runCountdown(code string, ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.tick(code, ctx)
		}
	}
}

// tick advances one room's countdown by a second. A tick whose room is
// gone, or whose context is no longer the room's live timer, aborts
// silently: destruction and replacement are expected concurrent
// outcomes, not failures.
func (e *Engine) tick(code string, ctx context.Context) {
	room, ok := e.reg.Get(code)
	if !ok {
		return
	}

	room.Mu.Lock()
	if room.Timer == nil || room.Timer.Context != ctx {
		room.Mu.Unlock()
		return
	}
	if room.State.TimeLeft > 0 {
		room.State.TimeLeft--
	}

	switch room.State.Status {
	case internal.StatusDrawing:
		if room.State.TimeLeft > 0 {
			elapsed := e.cfg.DrawSeconds - room.State.TimeLeft
			fraction := float64(elapsed) / float64(e.cfg.DrawSeconds)
			if room.Revealed == nil {
				room.Revealed = make(map[int]bool)
			}
			room.State.Hints = HintMask(room.State.CurrentWord, fraction, room.Revealed)
			room.Mu.Unlock()
			e.broadcastState(room)
			return
		}
		// time ran out with no correct guess: no award
		room.State.Status = internal.StatusRoundEnd
		next := e.armTimerLocked(room, e.cfg.RoundEndSeconds)
		room.Mu.Unlock()

		e.log.Info().Str("room", code).Msg("drawing time expired")
		e.broadcastState(room)
		go e.runCountdown(code, next)

	case internal.StatusSelecting:
		if room.State.TimeLeft > 0 {
			room.Mu.Unlock()
			return
		}
		if len(room.State.WordOptions) == 0 {
			room.CancelTimer()
			room.Mu.Unlock()
			return
		}
		// drawer never picked; fall back to the easy option rather
		// than stalling the room
		opt := room.State.WordOptions[0]
		e.beginDrawingLocked(room, opt)
		next := e.armTimerLocked(room, e.cfg.DrawSeconds)
		room.Mu.Unlock()

		e.log.Info().Str("room", code).Str("tier", string(opt.Tier)).
			Msg("selection timed out, word auto-picked")
		e.broadcastState(room)
		go e.runCountdown(code, next)

	case internal.StatusRoundEnd:
		if room.State.TimeLeft > 0 {
			room.Mu.Unlock()
			return
		}
		rs := e.startNextRoundLocked(room)
		room.Mu.Unlock()
		e.finishRoundStart(room, rs)

	default:
		// waiting or ended rooms have nothing to count down
		room.CancelTimer()
		room.Mu.Unlock()
	}
}
