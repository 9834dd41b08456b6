package handler

import (
	"context"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

// DashboardChannel is the redis pub/sub channel carrying dashboard snapshots.
const DashboardChannel = "metroll:dashboard"

// DashboardWebsocket fans out published dashboard snapshots to every
// connected admin client.
type DashboardWebsocket struct {
	Redis *redis.Client

	mu      sync.Mutex
	clients map[*websocket.Conn]bool
	once    sync.Once
}

func NewDashboardWebsocket(rdb *redis.Client) *DashboardWebsocket {
	return &DashboardWebsocket{
		Redis:   rdb,
		clients: make(map[*websocket.Conn]bool),
	}
}

// Serve registers the connection and keeps it open until the client
// disconnects. The first connection starts the redis subscriber.
func (w *DashboardWebsocket) Serve(c *websocket.Conn) {
	defer func() {
		w.mu.Lock()
		delete(w.clients, c)
		w.mu.Unlock()
		c.Close()
	}()

	w.mu.Lock()
	w.clients[c] = true
	w.mu.Unlock()

	w.once.Do(func() { go w.listen() })

	// Reading keeps the connection alive and detects disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

func (w *DashboardWebsocket) listen() {
	pubsub := w.Redis.Subscribe(context.Background(), DashboardChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		w.broadcast([]byte(msg.Payload))
	}
}

func (w *DashboardWebsocket) broadcast(payload []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for conn := range w.clients {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			conn.Close()
			delete(w.clients, conn)
		}
	}
}
