package http

// StatusResponse is the payload for the room status lookup.
type StatusResponse struct {
	Success     bool   `json:"success"`
	RoomID      string `json:"roomId,omitempty"`
	PlayerCount int    `json:"playerCount,omitempty"`
	MaxPlayers  int    `json:"maxPlayers,omitempty"`
	JoinURL     string `json:"joinUrl,omitempty"`
	Message     string `json:"message,omitempty"`
}
