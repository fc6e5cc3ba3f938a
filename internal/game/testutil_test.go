package game

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/prysms/draw-backend/internal"
)

// fakeConn records every payload written to it, in order.
type fakeConn struct {
	mu   sync.Mutex
	msgs []any
}

func (c *fakeConn) WriteJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, v)
	return nil
}

// messagesOf filters the recorded payloads down to one envelope type.
func messagesOf[T any](c *fakeConn) []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []T
	for _, v := range c.msgs {
		if m, ok := v.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

func lastOf[T any](t *testing.T, c *fakeConn) T {
	t.Helper()
	msgs := messagesOf[T](c)
	require.NotEmpty(t, msgs)
	return msgs[len(msgs)-1]
}

type credit struct {
	player string
	amount int
	reason string
}

type fakeLedger struct {
	mu      sync.Mutex
	credits []credit
}

func (l *fakeLedger) Credit(_ context.Context, playerID string, amount int, reason string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.credits = append(l.credits, credit{playerID, amount, reason})
}

func (l *fakeLedger) all() []credit {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]credit, len(l.credits))
	copy(out, l.credits)
	return out
}

// slowConfig keeps every countdown far from expiring so phases only
// change through explicit commands or forceExpire.
func slowConfig() Config {
	return Config{SelectSeconds: 600, DrawSeconds: 600, RoundEndSeconds: 600}
}

func newTestEngine(cfg Config) (*Engine, *fakeLedger) {
	led := &fakeLedger{}
	return NewEngine(cfg, led, zerolog.Nop()), led
}

func newTestPlayer() (*internal.Player, *fakeConn) {
	conn := &fakeConn{}
	return &internal.Player{ID: uuid.NewString(), Conn: conn}, conn
}

func createRoom(t *testing.T, e *Engine, username string) (*internal.Player, *fakeConn, string) {
	t.Helper()
	p, conn := newTestPlayer()
	require.NoError(t, e.CreateRoom(p, username))
	created := messagesOf[internal.Message[internal.RoomCreatedData]](conn)
	require.Len(t, created, 1)
	return p, conn, created[0].Data.Room
}

func joinRoom(t *testing.T, e *Engine, code, username string) (*internal.Player, *fakeConn) {
	t.Helper()
	p, conn := newTestPlayer()
	require.NoError(t, e.JoinRoom(p, code, username))
	return p, conn
}

func roomState(t *testing.T, e *Engine, code string) internal.GameState {
	t.Helper()
	room, ok := e.reg.Get(code)
	require.True(t, ok)
	room.Mu.Lock()
	defer room.Mu.Unlock()
	return room.State
}

func currentOptions(t *testing.T, e *Engine, code string) []internal.WordOption {
	t.Helper()
	state := roomState(t, e, code)
	require.Len(t, state.WordOptions, 3)
	return state.WordOptions
}

// forceExpire drops the live countdown to its final second and delivers
// that tick synchronously, so timer-driven transitions can be tested
// without waiting out real phase durations.
func forceExpire(t *testing.T, e *Engine, code string) {
	t.Helper()
	room, ok := e.reg.Get(code)
	require.True(t, ok)
	room.Mu.Lock()
	require.NotNil(t, room.Timer)
	ctx := room.Timer.Context
	room.State.TimeLeft = 1
	room.Mu.Unlock()
	e.tick(room.Code, ctx)
}

// setupDrawing builds a two-player room already in the drawing phase
// and returns the word the host picked.
func setupDrawing(t *testing.T, e *Engine) (host, guest *internal.Player, hostConn, guestConn *fakeConn, code, word string) {
	t.Helper()
	host, hostConn, code = createRoom(t, e, "Ana")
	guest, guestConn = joinRoom(t, e, code, "Bruno")
	require.NoError(t, e.StartGame(host, 1))
	opts := currentOptions(t, e, code)
	require.NoError(t, e.SelectWord(host, opts[0].ID))
	return host, guest, hostConn, guestConn, code, opts[0].Word
}
