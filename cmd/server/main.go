package main

import (
	"log"

	httpapi "sea-strike/internal/api/http"
	"sea-strike/internal/api/ws"
	"sea-strike/internal/config"
	"sea-strike/internal/room"
	"sea-strike/internal/store"
)

// @title Sea Strike Session API
// @version 1.0
// @description Realtime session server for a 3-player naval attack game (Go + Gin)
// @BasePath /
func main() {
	cfg := config.Load()
	mem := store.NewMemoryStore()
	rm := room.NewManager(mem)
	hub := ws.NewHub(rm, cfg.PublicBaseURL)
	r := httpapi.SetupRouter(rm, hub, cfg)

	log.Printf("listening on %s", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
