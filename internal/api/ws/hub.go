package ws

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"

	"sea-strike/internal/joinlink"
	"sea-strike/internal/room"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins
	},
}

// client is one websocket connection with its server-assigned identity.
type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex // serializes writes; broadcasts run on other goroutines
}

func (c *client) emit(event string, data interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(map[string]interface{}{
		"event": event,
		"data":  data,
	})
}

// Hub is the session gateway: it owns the broadcast groups and the
// connection-to-room reverse lookup, translates inbound events into registry
// calls, and fans results back out.
type Hub struct {
	mu       sync.RWMutex
	registry Registry
	baseURL  string
	rooms    map[string]map[*client]struct{} // room id -> broadcast group
	joined   map[*client]map[string]struct{} // reverse lookup for disconnects
}

func NewHub(registry Registry, baseURL string) *Hub {
	return &Hub{
		registry: registry,
		baseURL:  baseURL,
		rooms:    make(map[string]map[*client]struct{}),
		joined:   make(map[*client]map[string]struct{}),
	}
}

func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	cl := &client{id: uuid.NewString(), conn: conn}
	log.Printf("Connection established: %s", cl.id)

	defer h.disconnect(cl)

	for {
		var msg Envelope
		if err := conn.ReadJSON(&msg); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Printf("Connection %s read error: %v", cl.id, err)
			}
			return
		}

		switch msg.Event {
		case EventCreateRoom:
			h.handleCreateRoom(cl, msg.Data)
		case EventJoinRoom:
			h.handleJoinRoom(cl, msg.Data)
		case EventPlayerReady:
			h.handlePlayerReady(cl, msg.Data)
		case EventAttack:
			h.handleAttack(cl, msg.Data)
		default:
			log.Printf("Unknown event from %s: %q", cl.id, msg.Event)
		}
	}
}

// Broadcast sends an event to every connection in the room's group.
func (h *Hub) Broadcast(roomID, event string, data interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for cl := range h.rooms[roomID] {
		if err := cl.emit(event, data); err != nil {
			log.Printf("Failed to send %s to %s: %v", event, cl.id, err)
		}
	}
}

func (h *Hub) addToGroup(roomID string, cl *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*client]struct{})
	}
	h.rooms[roomID][cl] = struct{}{}
	if _, ok := h.joined[cl]; !ok {
		h.joined[cl] = make(map[string]struct{})
	}
	h.joined[cl][roomID] = struct{}{}
}

func (h *Hub) handleCreateRoom(cl *client, data json.RawMessage) {
	var req createRoomPayload
	if len(data) > 0 {
		if err := json.Unmarshal(data, &req); err != nil {
			log.Printf("Invalid create-room data from %s: %v", cl.id, err)
			return
		}
	}

	r := h.registry.CreateRoom(cl.id, req.PlayerName)
	h.addToGroup(r.ID, cl)

	joinURL := joinlink.URL(h.baseURL, r.ID)
	image, err := joinlink.Image(joinURL)
	if err != nil {
		log.Printf("Failed to render join link for room %s: %v", r.ID, err)
	}

	if err := cl.emit(EventRoomCreated, gin.H{
		"roomId":        r.ID,
		"playerNum":     1,
		"joinLinkImage": image,
		"joinUrl":       joinURL,
		"players":       r.Players,
	}); err != nil {
		log.Printf("Failed to send room-created to %s: %v", cl.id, err)
	}
	log.Printf("Room created: %s by %s", r.ID, cl.id)
}

func (h *Hub) handleJoinRoom(cl *client, data json.RawMessage) {
	var req joinRoomPayload
	if err := json.Unmarshal(data, &req); err != nil {
		log.Printf("Invalid join-room data from %s: %v", cl.id, err)
		return
	}

	res, err := h.registry.Join(req.RoomID, cl.id, req.PlayerName)
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		h.sendError(cl, "room not found")
		return
	case errors.Is(err, room.ErrRoomFull):
		h.sendError(cl, "room full")
		return
	case err != nil:
		log.Printf("Join failed for %s: %v", cl.id, err)
		return
	}

	h.addToGroup(req.RoomID, cl)
	h.Broadcast(req.RoomID, EventPlayerJoined, gin.H{
		"player":  res.Player,
		"players": res.Players,
	})
	if err := cl.emit(EventRoomJoined, gin.H{
		"roomId":    req.RoomID,
		"playerNum": res.Player.Num,
		"players":   res.Players,
	}); err != nil {
		log.Printf("Failed to send room-joined to %s: %v", cl.id, err)
	}
	log.Printf("%s joined room %s as player %d", res.Player.Name, req.RoomID, res.Player.Num)
}

func (h *Hub) handlePlayerReady(cl *client, data json.RawMessage) {
	var req playerReadyPayload
	if err := json.Unmarshal(data, &req); err != nil {
		log.Printf("Invalid player-ready data from %s: %v", cl.id, err)
		return
	}

	res, ok := h.registry.SetReady(req.RoomID, cl.id)
	if !ok || res.Player == nil {
		// Stale or misaddressed event, nothing to report.
		return
	}

	h.Broadcast(req.RoomID, EventPlayerReadyChanged, gin.H{
		"playerId":  cl.id,
		"playerNum": res.Player.Num,
		"ready":     true,
		"players":   res.Players,
	})
	if res.Started {
		h.Broadcast(req.RoomID, EventGameStarted, gin.H{
			"currentPlayer": res.CurrentTurn,
			"players":       res.Players,
		})
		log.Printf("Game started in room %s", req.RoomID)
	}
}

func (h *Hub) handleAttack(cl *client, data json.RawMessage) {
	var req attackPayload
	if err := json.Unmarshal(data, &req); err != nil {
		log.Printf("Invalid attack data from %s: %v", cl.id, err)
		return
	}

	res, ok := h.registry.Attack(req.RoomID, req.PlayerNum, req.TargetPlayer, req.Row, req.Col)
	if !ok {
		// Attacks outside an active game are dropped silently.
		return
	}

	h.Broadcast(req.RoomID, EventAttackResult, gin.H{
		"attacker":  res.Attacker,
		"target":    res.Target,
		"row":       res.Row,
		"col":       res.Col,
		"isHit":     res.IsHit,
		"timestamp": res.Timestamp,
	})
	h.Broadcast(req.RoomID, EventTurnChanged, gin.H{
		"currentPlayer": res.NextTurn,
	})
}

// disconnect tears a connection out of every room it joined, deleting rooms
// it leaves empty and notifying the rest.
func (h *Hub) disconnect(cl *client) {
	h.mu.Lock()
	roomIDs := make([]string, 0, len(h.joined[cl]))
	for id := range h.joined[cl] {
		roomIDs = append(roomIDs, id)
		delete(h.rooms[id], cl)
		if len(h.rooms[id]) == 0 {
			delete(h.rooms, id)
		}
	}
	delete(h.joined, cl)
	h.mu.Unlock()

	for _, id := range roomIDs {
		res := h.registry.Leave(id, cl.id)
		if !res.Removed {
			continue
		}
		if res.Empty {
			log.Printf("Room %s removed (last player left)", id)
			continue
		}
		h.Broadcast(id, EventPlayerLeft, gin.H{
			"playerId": cl.id,
		})
	}

	_ = cl.conn.Close()
	log.Printf("Connection closed: %s", cl.id)
}

func (h *Hub) sendError(cl *client, message string) {
	if err := cl.emit(EventError, gin.H{"message": message}); err != nil {
		log.Printf("Failed to send error to %s: %v", cl.id, err)
	}
}
