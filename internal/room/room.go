package room

import (
	"errors"
	"time"
)

// MaxPlayers is the seat capacity of a room.
const MaxPlayers = 3

type State string

const (
	StateWaiting State = "waiting"
	StatePlaying State = "playing"
)

var (
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomFull     = errors.New("room full")
)

type Player struct {
	ID    string `json:"id"` // owning connection id
	Name  string `json:"name"`
	Num   int    `json:"playerNum"` // seat number, fixed at join time
	Ready bool   `json:"ready"`
}

type Room struct {
	ID          string    `json:"id"`
	HostID      string    `json:"hostId"`
	Players     []Player  `json:"players"`
	State       State     `json:"state"`
	CurrentTurn int       `json:"currentTurn"` // seat number, meaningful only in StatePlaying
	CreatedAt   time.Time `json:"createdAt"`
}

func (r *Room) findPlayer(connID string) *Player {
	for i := range r.Players {
		if r.Players[i].ID == connID {
			return &r.Players[i]
		}
	}
	return nil
}

// advanceTurn rotates the turn over seat numbers 1->2->3->1. It is slot
// arithmetic on purpose: a departed player's seat stays in the cycle
// (see DESIGN.md, "ghost seats").
func (r *Room) advanceTurn() {
	r.CurrentTurn = r.CurrentTurn%MaxPlayers + 1
}

// playersCopy returns a snapshot safe to hand to broadcast payloads after
// the registry lock is released.
func (r *Room) playersCopy() []Player {
	return append([]Player(nil), r.Players...)
}

// JoinResult reports a successful join: the new player and the room's
// player list as of the join.
type JoinResult struct {
	Player  Player
	Players []Player
}

// ReadyResult reports the outcome of a ready event. Player is nil when the
// connection is not in the room (stale event, ignored). Started is true only
// on the single waiting->playing transition.
type ReadyResult struct {
	Player      *Player
	Players     []Player
	Started     bool
	CurrentTurn int
}

// AttackResult reports a resolved attack and the seat whose turn is next.
type AttackResult struct {
	Attacker  int
	Target    int
	Row       int
	Col       int
	IsHit     bool
	Timestamp int64 // unix milliseconds
	NextTurn  int
}

// LeaveResult reports the outcome of a departure. Removed is false when the
// connection was not in the room. Empty means the caller must delete the room.
type LeaveResult struct {
	Removed bool
	Empty   bool
	Players []Player
}

// Status is a read-only snapshot taken under the registry lock, served by
// the HTTP status endpoint.
type Status struct {
	PlayerCount int
	MaxPlayers  int
	State       State
}
