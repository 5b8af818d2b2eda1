package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Message types
const (
	MsgNewMedia    = "newMedia"
	MsgGuestJoined = "guest.joined"
	MsgGuestLeft   = "guest.left"
)

// Message bir etkinlik odasına yayınlanan gerçek zamanlı mesaj
type Message struct {
	Type      string          `json:"type"`
	EventID   uint            `json:"event_id"`
	Data      json.RawMessage `json:"data,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Hub etkinlik bazlı abone odalarını ve yayınları yönetir.
// Teslimat en-fazla-bir-kez ve best-effort: yavaş istemcinin kanalı
// doluysa mesaj düşer, sonradan katılanlara replay yoktur.
type Hub struct {
	clients    map[uint]map[*Client]bool // eventID -> clients
	broadcast  chan *Message
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	logger     *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[uint]map[*Client]bool),
		broadcast:  make(chan *Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Publish mesajı etkinliğin odasına kuyruklar. Hub kuyruğu doluysa
// mesaj sessizce düşer, yükleme akışı asla bloklanmaz.
func (h *Hub) Publish(eventID uint, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Warn("failed to marshal realtime payload", zap.Uint("event_id", eventID), zap.Error(err))
		return
	}

	msg := &Message{
		Type:      msgType,
		EventID:   eventID,
		Data:      data,
		Timestamp: time.Now(),
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("realtime broadcast queue full, dropping message", zap.Uint("event_id", eventID))
	}
}

// SubscriberCount testler ve sağlık ucu için oda büyüklüğünü döner
func (h *Hub) SubscriberCount(eventID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[eventID])
}

// Run hub'ın mesaj döngüsünü başlatır, main içinde goroutine olarak çağrılır
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if h.clients[client.EventID] == nil {
				h.clients[client.EventID] = make(map[*Client]bool)
			}
			h.clients[client.EventID][client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.EventID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.Send)
					if len(clients) == 0 {
						delete(h.clients, client.EventID)
					}
				}
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			data, err := json.Marshal(message)
			if err != nil {
				continue
			}

			h.mu.Lock()
			for client := range h.clients[message.EventID] {
				select {
				case client.Send <- data:
				default:
					// Yavaş istemci: kanalı kapat ve odadan düşür
					close(client.Send)
					delete(h.clients[message.EventID], client)
				}
			}
			h.mu.Unlock()
		}
	}
}
