package internal

// Message is the wire envelope for every client and server event.
type Message[T any] struct {
	Type string `json:"type"`
	Data T      `json:"data"`
}

// Client -> server payloads.

type CreateRoomData struct {
	Username string `json:"username"`
}

type JoinRoomData struct {
	Room     string `json:"room"`
	Username string `json:"username"`
}

type StartGameData struct {
	Rounds int `json:"rounds"`
}

type SelectWordData struct {
	WordID string `json:"wordId"`
}

type DrawingData struct {
	DrawingData string `json:"drawingData"`
}

type GuessData struct {
	Text string `json:"text"`
}

// Server -> client payloads.

type RoomCreatedData struct {
	Room string `json:"room"`
}

type PlayersUpdateData struct {
	Players []PlayerSnapshot `json:"players"`
}

// GameStateView is the projection of GameState a client receives. The
// drawer's copy carries CurrentWord; everyone else only ever sees the
// hint mask until the round is over.
type GameStateView struct {
	Status        GameStatus `json:"status"`
	CurrentDrawer string     `json:"currentDrawer,omitempty"`
	CurrentWord   string     `json:"currentWord,omitempty"`
	TimeLeft      int        `json:"timeLeft"`
	Round         int        `json:"round"`
	TotalRounds   int        `json:"totalRounds"`
	Hints         []string   `json:"hints"`
}

type WordOptionsData struct {
	Options []WordOption `json:"options"`
}

type ChatMessageData struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	IsCorrect bool   `json:"isCorrect,omitempty"`
}

type PrysmsEarnedData struct {
	Amount int `json:"amount"`
}

type ErrorData struct {
	Message string `json:"message"`
}
