package room

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

type Store interface {
	GetRoom(id string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(id string)
}

// Manager is the registry and state machine for all live rooms. Every
// mutation and status read goes through its mutex, which is what keeps the
// single-threaded-handler property intact under Go's concurrent websocket
// reads.
type Manager struct {
	mu    sync.Mutex
	store Store
	rng   *rand.Rand
}

func NewManager(s Store) *Manager {
	return &Manager{
		store: s,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// CreateRoom registers a new room with the host seated at slot 1. It always
// succeeds.
func (m *Manager) CreateRoom(hostConnID, hostName string) *Room {
	if hostName == "" {
		hostName = "Player"
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.randCode(6)
	for _, taken := m.store.GetRoom(id); taken; _, taken = m.store.GetRoom(id) {
		id = m.randCode(6)
	}

	r := &Room{
		ID:        id,
		HostID:    hostConnID,
		State:     StateWaiting,
		CreatedAt: time.Now(),
		Players: []Player{
			{ID: hostConnID, Name: hostName, Num: 1},
		},
	}
	m.store.SaveRoom(r)
	return r
}

func (m *Manager) Get(id string) (*Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.store.GetRoom(id)
}

// Remove deletes a room from the registry. Idempotent.
func (m *Manager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.DeleteRoom(id)
}

// Join seats a new player in the room. Seats are handed out densely in join
// order and never renumbered afterwards.
func (m *Manager) Join(roomID, connID, name string) (JoinResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return JoinResult{}, ErrRoomNotFound
	}
	if len(r.Players) >= MaxPlayers {
		return JoinResult{}, ErrRoomFull
	}

	num := len(r.Players) + 1
	if name == "" {
		name = fmt.Sprintf("Player %d", num)
	}
	p := Player{ID: connID, Name: name, Num: num}
	r.Players = append(r.Players, p)
	m.store.SaveRoom(r)

	return JoinResult{Player: p, Players: r.playersCopy()}, nil
}

// SetReady marks the connection's player ready. A ready event from a
// connection that is not in the room is swallowed, so stale events from a
// flaky client cannot disturb room state. The game starts exactly once, when
// the third ready arrives with all seats filled.
func (m *Manager) SetReady(roomID, connID string) (ReadyResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return ReadyResult{}, false
	}
	p := r.findPlayer(connID)
	if p == nil {
		return ReadyResult{}, true
	}
	p.Ready = true

	allReady := len(r.Players) == MaxPlayers
	for _, pl := range r.Players {
		allReady = allReady && pl.Ready
	}

	res := ReadyResult{Player: p, Players: r.playersCopy()}
	if allReady && r.State == StateWaiting {
		r.State = StatePlaying
		r.CurrentTurn = 1
		res.Started = true
		res.CurrentTurn = 1
	}
	m.store.SaveRoom(r)
	return res, true
}

// Attack resolves an attack while the room is playing and advances the turn.
// Outside StatePlaying the event is ignored and the second return is false.
// The hit outcome is an even coin flip; real board resolution lives with the
// clients.
func (m *Manager) Attack(roomID string, attacker, target, row, col int) (AttackResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok || r.State != StatePlaying {
		return AttackResult{}, false
	}

	res := AttackResult{
		Attacker:  attacker,
		Target:    target,
		Row:       row,
		Col:       col,
		IsHit:     m.rng.Intn(2) == 0,
		Timestamp: time.Now().UnixMilli(),
	}
	r.advanceTurn()
	res.NextTurn = r.CurrentTurn
	m.store.SaveRoom(r)
	return res, true
}

// Leave removes the connection's player from the room, keeping the remaining
// seats as they are. It never touches State or CurrentTurn: a mid-game
// departure neither pauses nor forfeits the game. A room emptied by the
// departure is deleted before the lock is released, so no other handler can
// ever see (or join) a zero-player room.
func (m *Manager) Leave(roomID, connID string) LeaveResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return LeaveResult{}
	}
	for i := range r.Players {
		if r.Players[i].ID == connID {
			r.Players = append(r.Players[:i], r.Players[i+1:]...)
			if len(r.Players) == 0 {
				m.store.DeleteRoom(r.ID)
				return LeaveResult{Removed: true, Empty: true}
			}
			m.store.SaveRoom(r)
			return LeaveResult{
				Removed: true,
				Players: r.playersCopy(),
			}
		}
	}
	return LeaveResult{}
}

// Status reports existence and occupancy for the HTTP lookup endpoint.
func (m *Manager) Status(roomID string) (Status, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return Status{}, false
	}
	return Status{PlayerCount: len(r.Players), MaxPlayers: MaxPlayers, State: r.State}, true
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func (m *Manager) randCode(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[m.rng.Intn(len(letters))]
	}
	return string(b)
}
