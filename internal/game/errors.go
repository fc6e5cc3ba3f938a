package game

import "errors"

// Command rejections. Each maps to a private error event for the sender
// and never mutates room state.
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrAlreadyInRoom     = errors.New("already in a room")
	ErrNotHost           = errors.New("only the host can start the game")
	ErrGameInProgress    = errors.New("game has already started")
	ErrInvalidRounds     = errors.New("rounds must be a positive number")
	ErrNotDrawer         = errors.New("you are not the current drawer")
	ErrWrongPhase        = errors.New("not in the word selection phase")
	ErrUnknownWord       = errors.New("word not found")
	ErrDrawerCannotGuess = errors.New("the drawer cannot send guesses")
)
