package handler

import (
	"context"
	"log"
	"makkanya_dashboard/database"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

var (
	clients = make(map[string]*websocket.Conn)
	mu      sync.Mutex
)

// StatusWebsocket pushes dataset load events to the dashboard.
func StatusWebsocket(c *websocket.Conn) {
	ctx, cancel := context.WithCancel(context.Background())
	id, events, unsubscribe := database.SubscribeStatus(ctx)

	defer func() {
		cancel()
		unsubscribe()
		mu.Lock()
		delete(clients, id)
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	clients[id] = c
	mu.Unlock()

	if err := c.WriteJSON(database.LastStatus()); err != nil {
		return
	}

	// the client never sends anything useful, reading only detects close
	go func() {
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case status, ok := <-events:
			if !ok {
				return
			}
			if err := c.WriteJSON(status); err != nil {
				log.Printf("[WS] client %s: %v", id, err)
				return
			}
		}
	}
}
