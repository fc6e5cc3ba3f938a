package internal

import (
	"context"
	"sync"
)

const (
	SelectPhaseDuration   = 15 // seconds
	DrawPhaseDuration     = 60
	RoundEndPhaseDuration = 5

	RoomCodeLength = 6
	MaxHintReveal  = 0.75
)

type GameStatus string

const (
	StatusWaiting   GameStatus = "waiting"
	StatusSelecting GameStatus = "selecting"
	StatusDrawing   GameStatus = "drawing"
	StatusRoundEnd  GameStatus = "roundEnd"
	StatusGameEnd   GameStatus = "gameEnd"
)

type Tier string

const (
	TierEasy   Tier = "easy"
	TierMedium Tier = "medium"
	TierHard   Tier = "hard"
)

// WordOption is one of the three choices offered privately to the drawer
// each selecting phase. Options are generated fresh per round and never
// leave the drawer's connection.
type WordOption struct {
	ID   string `json:"id"`
	Word string `json:"word"`
	Tier Tier   `json:"difficulty"`
}

// GameState is the per-room round lifecycle state. CurrentWord and
// WordOptions are secret: they are never serialized directly, the relay
// decides per recipient what each projection contains.
type GameState struct {
	Status        GameStatus
	CurrentDrawer string // connection id, empty when no round is active
	CurrentWord   string
	WordOptions   []WordOption
	TimeLeft      int
	Round         int
	TotalRounds   int
	Hints         []string
}

// RoundTimer is the handle for the single live countdown of a room.
// Cancelling the context stops the tick goroutine; the Context pointer
// doubles as a liveness token so a stale goroutine can detect it has
// been replaced.
type RoundTimer struct {
	Context context.Context
	Cancel  context.CancelFunc
}

// Room owns one roster, one game state and the last drawing snapshot.
// Players keeps join order; index 0 is the host. All fields are guarded
// by Mu; handlers mutate under the lock and broadcast from snapshots
// after releasing it.
type Room struct {
	Code            string
	Players         []*Player
	State           GameState
	DrawingSnapshot string
	Timer           *RoundTimer

	// DrawerIdx is the roster index of the current drawer, kept in
	// sync as players leave so rotation survives roster shrinkage.
	DrawerIdx int

	// Revealed holds the rune indices of CurrentWord already shown to
	// guessers. The set only grows during a round.
	Revealed map[int]bool

	// Closed is set just before the registry drops the room so a
	// racing join can tell it is appending to a dead roster.
	Closed bool

	Mu sync.Mutex
}
