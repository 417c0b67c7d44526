package ws

import "encoding/json"

// Inbound client events.
const (
	EventCreateRoom  = "create-room"
	EventJoinRoom    = "join-room"
	EventPlayerReady = "player-ready"
	EventAttack      = "attack"
)

// Outbound events, unicast or room-broadcast.
const (
	EventRoomCreated        = "room-created"
	EventRoomJoined         = "room-joined"
	EventPlayerJoined       = "player-joined"
	EventPlayerReadyChanged = "player-ready-changed"
	EventGameStarted        = "game-started"
	EventAttackResult       = "attack-result"
	EventTurnChanged        = "turn-changed"
	EventPlayerLeft         = "player-left"
	EventError              = "error"
)

// Envelope is the wire frame for every message in either direction.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type createRoomPayload struct {
	PlayerName string `json:"playerName"`
}

type joinRoomPayload struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type playerReadyPayload struct {
	RoomID string `json:"roomId"`
}

type attackPayload struct {
	RoomID       string `json:"roomId"`
	TargetPlayer int    `json:"targetPlayer"`
	Row          int    `json:"row"`
	Col          int    `json:"col"`
	PlayerNum    int    `json:"playerNum"`
}
