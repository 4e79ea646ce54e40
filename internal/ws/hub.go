package ws

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"Distillery-Tracker/domain"

	"github.com/gofiber/websocket/v2"
)

type (
	// BatchLister feeds the hub's getBatches replies. Satisfied by
	// batch.BatchService.
	BatchLister interface {
		GetBatches(ctx context.Context, status string, page, limit int) ([]domain.BatchResponse, int64, error)
	}

	clientMessage struct {
		Type string `json:"type"`
	}

	outboundMessage struct {
		Type    string `json:"type"`
		Payload any    `json:"payload"`
	}

	Hub struct {
		mu      sync.Mutex
		clients map[*websocket.Conn]struct{}
		batches BatchLister
	}
)

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// SetBatchLister wires the batch source after construction. The hub is
// created before the batch service because the service publishes
// through the hub.
func (h *Hub) SetBatchLister(batches BatchLister) {
	h.batches = batches
}

// Handler serves one WebSocket client. It registers the connection,
// answers getBatches requests and unregisters on any read error.
func (h *Hub) Handler() func(*websocket.Conn) {
	return func(c *websocket.Conn) {
		h.register(c)
		defer h.unregister(c)

		for {
			_, raw, err := c.ReadMessage()
			if err != nil {
				return
			}

			var msg clientMessage
			if err := json.Unmarshal(raw, &msg); err != nil {
				continue
			}

			switch msg.Type {
			case "getBatches":
				h.sendBatchList(c)
			}
		}
	}
}

// PublishBatchUpdate broadcasts a batch mutation to every connected
// client. Slow or broken clients are dropped rather than blocking the
// writer.
func (h *Hub) PublishBatchUpdate(update domain.BatchUpdateEvent) {
	h.broadcast(outboundMessage{Type: "batchUpdate", Payload: update})
}

func (h *Hub) broadcast(msg outboundMessage) {
	raw, err := json.Marshal(msg)
	if err != nil {
		log.Printf("ws: marshal broadcast: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if err := c.WriteMessage(websocket.TextMessage, raw); err != nil {
			c.Close()
			delete(h.clients, c)
		}
	}
}

func (h *Hub) sendBatchList(c *websocket.Conn) {
	if h.batches == nil {
		return
	}
	batches, _, err := h.batches.GetBatches(context.Background(), "all", 1, 100)
	if err != nil {
		log.Printf("ws: list batches: %v", err)
		return
	}

	raw, err := json.Marshal(outboundMessage{Type: "batchList", Payload: batches})
	if err != nil {
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	if err := c.WriteMessage(websocket.TextMessage, raw); err != nil {
		c.Close()
		delete(h.clients, c)
	}
}

func (h *Hub) register(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

func (h *Hub) unregister(c *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, c)
	c.Close()
}
