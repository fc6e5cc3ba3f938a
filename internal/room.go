package internal

// Methods below assume the caller holds r.Mu.

func (r *Room) PlayerByID(id string) *Player {
	for _, p := range r.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (r *Room) IndexOf(id string) int {
	for i, p := range r.Players {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Host is the first-joined player, the only one allowed to start a game.
func (r *Room) Host() *Player {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[0]
}

func (r *Room) Drawer() *Player {
	if r.State.CurrentDrawer == "" {
		return nil
	}
	return r.PlayerByID(r.State.CurrentDrawer)
}

func (r *Room) OptionByID(id string) (WordOption, bool) {
	for _, opt := range r.State.WordOptions {
		if opt.ID == id {
			return opt, true
		}
	}
	return WordOption{}, false
}

// CancelTimer stops and clears the live countdown, if any. Clearing
// the handle means a tick already past its select when the cancel
// lands fails the liveness check and can never fire again. Safe to
// call with no timer armed.
func (r *Room) CancelTimer() {
	if r.Timer != nil && r.Timer.Cancel != nil {
		r.Timer.Cancel()
	}
	r.Timer = nil
}

// Snapshot returns the roster in join order as broadcastable entries.
func (r *Room) Snapshot() []PlayerSnapshot {
	players := make([]PlayerSnapshot, 0, len(r.Players))
	for _, p := range r.Players {
		players = append(players, PlayerSnapshot{
			ID:        p.ID,
			Username:  p.Username,
			Score:     p.Score,
			IsDrawing: p.IsDrawing,
		})
	}
	return players
}
