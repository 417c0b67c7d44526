package http

import (
	"net/http"
	"os"
	"path/filepath"

	"sea-strike/internal/api/ws"
	"sea-strike/internal/config"
	"sea-strike/internal/room"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rm *room.Manager, hub *ws.Hub, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Realtime channel for game clients
	r.GET("/ws", hub.HandleWS)

	// --- ROOM ENDPOINTS ---
	r.GET("/room/status", RoomStatusHandler(rm, cfg.PublicBaseURL))

	// Static assets with index.html fallback at the root
	fs := http.FileServer(http.Dir(cfg.StaticDir))
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Status(http.StatusNotFound)
			return
		}
		path := filepath.Join(cfg.StaticDir, filepath.Clean(c.Request.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fs.ServeHTTP(c.Writer, c.Request)
			return
		}
		c.File(filepath.Join(cfg.StaticDir, "index.html"))
	})

	return r
}
