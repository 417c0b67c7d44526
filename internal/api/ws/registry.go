package ws

import "sea-strike/internal/room"

// Registry is the slice of the room manager the gateway drives. Declared
// here so the hub can be exercised against a fake in tests.
type Registry interface {
	CreateRoom(hostConnID, hostName string) *room.Room
	Join(roomID, connID, name string) (room.JoinResult, error)
	SetReady(roomID, connID string) (room.ReadyResult, bool)
	Attack(roomID string, attacker, target, row, col int) (room.AttackResult, bool)
	Leave(roomID, connID string) room.LeaveResult
}
