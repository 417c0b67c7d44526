package http

import (
	"net/http"

	"sea-strike/internal/joinlink"
	"sea-strike/internal/room"

	"github.com/gin-gonic/gin"
)

// @Summary Room status lookup
// @Description Returns existence, occupancy and the join URL for a room
// @Tags Room
// @Produce json
// @Param roomId query string true "Room ID"
// @Success 200 {object} http.StatusResponse
// @Router /room/status [get]
func RoomStatusHandler(rm *room.Manager, baseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		roomID := c.Query("roomId")
		if roomID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "roomId required"})
			return
		}

		st, ok := rm.Status(roomID)
		if !ok {
			c.JSON(http.StatusOK, StatusResponse{Success: false, Message: "room not found"})
			return
		}
		c.JSON(http.StatusOK, StatusResponse{
			Success:     true,
			RoomID:      roomID,
			PlayerCount: st.PlayerCount,
			MaxPlayers:  st.MaxPlayers,
			JoinURL:     joinlink.URL(baseURL, roomID),
		})
	}
}
