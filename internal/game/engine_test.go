package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prysms/draw-backend/internal"
)

func TestCreateRoom(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	host, hostConn, code := createRoom(t, e, "Ana")

	assert.Len(t, code, internal.RoomCodeLength)
	assert.Regexp(t, "^[A-Z0-9]{6}$", code)

	roster := lastOf[internal.Message[internal.PlayersUpdateData]](t, hostConn)
	require.Len(t, roster.Data.Players, 1)
	assert.Equal(t, "Ana", roster.Data.Players[0].Username)
	assert.Equal(t, 0, roster.Data.Players[0].Score)
	assert.True(t, roster.Data.Players[0].IsDrawing)

	state := roomState(t, e, code)
	assert.Equal(t, internal.StatusWaiting, state.Status)
	assert.Equal(t, host.ID, state.CurrentDrawer)
}

func TestCreateRoomDefaultsUsername(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	_, hostConn, _ := createRoom(t, e, "")

	roster := lastOf[internal.Message[internal.PlayersUpdateData]](t, hostConn)
	require.Len(t, roster.Data.Players, 1)
	assert.Equal(t, "Anonymous", roster.Data.Players[0].Username)
}

func TestCreateRoomWhileInRoom(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	host, _, _ := createRoom(t, e, "Ana")
	assert.ErrorIs(t, e.CreateRoom(host, "Ana"), ErrAlreadyInRoom)
}

func TestJoinRoomUnknownCode(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	p, _ := newTestPlayer()
	assert.ErrorIs(t, e.JoinRoom(p, "NOPE00", "Bruno"), ErrRoomNotFound)
}

func TestJoinRoomBroadcastsRoster(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	_, hostConn, code := createRoom(t, e, "Ana")
	guest, guestConn := joinRoom(t, e, code, "Bruno")

	for _, conn := range []*fakeConn{hostConn, guestConn} {
		roster := lastOf[internal.Message[internal.PlayersUpdateData]](t, conn)
		require.Len(t, roster.Data.Players, 2)
		assert.Equal(t, "Ana", roster.Data.Players[0].Username)
		assert.Equal(t, "Bruno", roster.Data.Players[1].Username)
	}

	state := lastOf[internal.Message[internal.GameStateView]](t, guestConn)
	assert.Equal(t, internal.StatusWaiting, state.Data.Status)

	assert.ErrorIs(t, e.JoinRoom(guest, code, "Bruno"), ErrAlreadyInRoom)
}

func TestJoinMidRoundReplaysDrawing(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	host, _, _, _, code, _ := setupDrawing(t, e)
	require.NoError(t, e.SendDrawing(host, "canvas-blob"))

	_, lateConn := joinRoom(t, e, code, "Caio")

	state := lastOf[internal.Message[internal.GameStateView]](t, lateConn)
	assert.Equal(t, internal.StatusDrawing, state.Data.Status)
	assert.Empty(t, state.Data.CurrentWord)

	drawing := lastOf[internal.Message[internal.DrawingData]](t, lateConn)
	assert.Equal(t, "canvas-blob", drawing.Data.DrawingData)
}

func TestLastPlayerLeavingDestroysRoom(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	host, _, code := createRoom(t, e, "Ana")

	e.Disconnect(host)
	assert.Equal(t, 0, e.reg.Count())

	p, _ := newTestPlayer()
	assert.ErrorIs(t, e.JoinRoom(p, code, "Bruno"), ErrRoomNotFound)
}

func TestHostLeavingBeforeStartPromotesNextPlayer(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	host, _, code := createRoom(t, e, "Ana")
	guest, guestConn := joinRoom(t, e, code, "Bruno")

	e.Disconnect(host)

	roster := lastOf[internal.Message[internal.PlayersUpdateData]](t, guestConn)
	require.Len(t, roster.Data.Players, 1)
	assert.Equal(t, "Bruno", roster.Data.Players[0].Username)
	assert.True(t, roster.Data.Players[0].IsDrawing)

	state := roomState(t, e, code)
	assert.Equal(t, guest.ID, state.CurrentDrawer)

	// the promoted host can start the game
	require.NoError(t, e.StartGame(guest, 1))
	assert.Equal(t, internal.StatusSelecting, roomState(t, e, code).Status)
}

func TestDrawerLeavingMidRoundForcesNextRound(t *testing.T) {
	e, _ := newTestEngine(slowConfig())
	host, _, code := createRoom(t, e, "Ana")
	second, secondConn := joinRoom(t, e, code, "Bruno")
	joinRoom(t, e, code, "Caio")

	require.NoError(t, e.StartGame(host, 1))
	opts := currentOptions(t, e, code)
	require.NoError(t, e.SelectWord(host, opts[0].ID))

	e.Disconnect(host)

	state := roomState(t, e, code)
	assert.Equal(t, internal.StatusSelecting, state.Status)
	assert.Equal(t, 2, state.Round)
	assert.Equal(t, second.ID, state.CurrentDrawer)

	// no award for either side of the abandoned round
	roster := lastOf[internal.Message[internal.PlayersUpdateData]](t, secondConn)
	require.Len(t, roster.Data.Players, 2)
	for _, p := range roster.Data.Players {
		assert.Equal(t, 0, p.Score)
	}

	// the next player in join order got the fresh options
	assert.NotEmpty(t, messagesOf[internal.Message[internal.WordOptionsData]](secondConn))
}
