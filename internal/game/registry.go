package game

import (
	"math/rand"
	"sync"

	"github.com/prysms/draw-backend/internal"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Registry owns the live room table. Its lifetime is tied to the engine
// that created it; there are no package-level rooms. It also keeps a
// connection->room index so commands never have to scan every room.
type Registry struct {
	mu     sync.RWMutex
	rooms  map[string]*internal.Room
	byConn map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]*internal.Room),
		byConn: make(map[string]string),
	}
}

// Create registers a new room with host as its only player and drawer.
// Codes are regenerated until unused among live rooms.
func (reg *Registry) Create(host *internal.Player) *internal.Room {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	var code string
	for {
		code = generateRoomCode()
		if _, taken := reg.rooms[code]; !taken {
			break
		}
	}

	host.IsDrawing = true
	room := &internal.Room{
		Code:    code,
		Players: []*internal.Player{host},
		State: internal.GameState{
			Status:        internal.StatusWaiting,
			CurrentDrawer: host.ID,
		},
	}
	reg.rooms[code] = room
	reg.byConn[host.ID] = code
	return room
}

func (reg *Registry) Get(code string) (*internal.Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	room, ok := reg.rooms[code]
	return room, ok
}

// RoomFor resolves the room a connection currently belongs to.
func (reg *Registry) RoomFor(connID string) (*internal.Room, bool) {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	code, ok := reg.byConn[connID]
	if !ok {
		return nil, false
	}
	room, ok := reg.rooms[code]
	return room, ok
}

func (reg *Registry) InRoom(connID string) bool {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	_, ok := reg.byConn[connID]
	return ok
}

func (reg *Registry) Bind(connID, code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.byConn[connID] = code
}

func (reg *Registry) Unbind(connID string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.byConn, connID)
}

// Remove drops a room from the table. The caller is responsible for
// cancelling its timer first.
func (reg *Registry) Remove(code string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, code)
}

func (reg *Registry) Count() int {
	reg.mu.RLock()
	defer reg.mu.RUnlock()
	return len(reg.rooms)
}

func generateRoomCode() string {
	code := make([]byte, internal.RoomCodeLength)
	for i := range code {
		code[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}
	return string(code)
}
