package game

import (
	"context"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/prysms/draw-backend/internal"
)

// closeGuessDistance is the edit-distance ceiling for the private
// "you're close" hint on a wrong guess.
const closeGuessDistance = 2

// Guess handles a send_guess command. Outside the drawing phase, or on
// a miss, the text is relayed as plain chat. A guess matching the
// current word (trimmed, case-folded) ends the round and awards points.
func (e *Engine) Guess(p *internal.Player, text string) error {
	room, ok := e.reg.RoomFor(p.ID)
	if !ok {
		return ErrRoomNotFound
	}

	room.Mu.Lock()
	if room.State.CurrentDrawer == p.ID {
		room.Mu.Unlock()
		return ErrDrawerCannotGuess
	}
	if room.State.Status != internal.StatusDrawing {
		room.Mu.Unlock()
		broadcastToRoom(room, internal.Message[internal.ChatMessageData]{
			Type: "chat_message",
			Data: internal.ChatMessageData{Sender: p.Username, Text: text},
		})
		return nil
	}

	guess := strings.ToLower(strings.TrimSpace(text))
	target := strings.ToLower(strings.TrimSpace(room.State.CurrentWord))

	if guess != target {
		room.Mu.Unlock()
		broadcastToRoom(room, internal.Message[internal.ChatMessageData]{
			Type: "chat_message",
			Data: internal.ChatMessageData{Sender: p.Username, Text: text},
		})
		if guess != "" && levenshtein.ComputeDistance(guess, target) <= closeGuessDistance {
			_ = p.SafeWriteJSON(internal.Message[internal.ChatMessageData]{
				Type: "chat_message",
				Data: internal.ChatMessageData{Sender: "system", Text: "You're close!"},
			})
		}
		return nil
	}

	// Correct guess: score, end the round, freeze the scoreboard.
	points := GuessPoints(e.cfg.DrawSeconds, room.State.TimeLeft)
	p.Score += points
	drawer := room.Drawer()
	if drawer != nil {
		drawer.Score += DrawerBonus
	}

	room.State.Status = internal.StatusRoundEnd
	timerCtx := e.armTimerLocked(room, e.cfg.RoundEndSeconds)
	room.Mu.Unlock()

	e.log.Info().Str("room", room.Code).Str("player", p.ID).
		Int("points", points).Msg("correct guess")

	broadcastToRoom(room, internal.Message[internal.ChatMessageData]{
		Type: "chat_message",
		Data: internal.ChatMessageData{Sender: p.Username, Text: text, IsCorrect: true},
	})
	e.broadcastPlayers(room)
	e.broadcastState(room)

	e.reward(p, GuesserReward(points), "draw_guess")
	if drawer != nil {
		e.reward(drawer, DrawerReward, "draw_round")
	}

	go e.runCountdown(room.Code, timerCtx)
	return nil
}

// reward sends the private prysms_earned notice and forwards the same
// credit to the external ledger. The engine never stores balances.
func (e *Engine) reward(p *internal.Player, amount int, reason string) {
	_ = p.SafeWriteJSON(internal.Message[internal.PrysmsEarnedData]{
		Type: "prysms_earned",
		Data: internal.PrysmsEarnedData{Amount: amount},
	})
	go e.ledger.Credit(context.Background(), p.ID, amount, reason)
}
