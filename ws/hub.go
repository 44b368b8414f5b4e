package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

type Hub struct {
	Clients       map[string]map[*websocket.Conn]*Client // per ingest job
	GlobalClients map[*websocket.Conn]*Client            // for the shared status feed
	Mutex         sync.RWMutex
}

var H = Hub{
	Clients:       make(map[string]map[*websocket.Conn]*Client),
	GlobalClients: make(map[*websocket.Conn]*Client),
}

// IngestStatusUpdate is the progress payload pushed for one ingest job.
type IngestStatusUpdate struct {
	JobID    string  `json:"job_id"`
	Status   string  `json:"status"`
	Progress float64 `json:"progress"`
	Error    string  `json:"error,omitempty"`
}

// Register a client for a specific job id
func (h *Hub) Register(jobID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if _, ok := h.Clients[jobID]; !ok {
		h.Clients[jobID] = make(map[*websocket.Conn]*Client)
	}

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.Clients[jobID][conn] = client

	// the route handler owns the read loop
	go h.writePump(client, conn)
}

// Register a global client (dashboard status feed)
func (h *Hub) RegisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	client := &Client{
		Conn: conn,
		Send: make(chan []byte, 256),
	}

	h.GlobalClients[conn] = client

	go h.writePump(client, conn)
}

// Broadcast to all clients watching one job
func (h *Hub) Broadcast(jobID string, messageType int, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	if clients, ok := h.Clients[jobID]; ok {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
			}
		}
	}
}

// Broadcast to every global client
func (h *Hub) BroadcastGlobal(messageType int, data []byte) {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	for _, client := range h.GlobalClients {
		select {
		case client.Send <- data:
		default:
		}
	}
}

// SendIngestStatus pushes a progress update for an ingest job.
func SendIngestStatus(jobID, status string, progress float64, errorMsg string) {
	update := IngestStatusUpdate{
		JobID:    jobID,
		Status:   status,
		Progress: progress,
		Error:    errorMsg,
	}
	data, err := json.Marshal(update)
	if err != nil {
		log.Println("JSON marshal error:", err)
		return
	}
	H.Broadcast(jobID, websocket.TextMessage, data)
}

// BroadcastContentChanged signals list views to refetch.
func BroadcastContentChanged() {
	data := []byte(`{"type": "content_changed"}`)
	H.BroadcastGlobal(websocket.TextMessage, data)
}

// Unregister a client from a job
func (h *Hub) Unregister(jobID string, conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if clients, ok := h.Clients[jobID]; ok {
		if client, ok := clients[conn]; ok {
			close(client.Send)
			delete(clients, conn)
		}
		if len(clients) == 0 {
			delete(h.Clients, jobID)
		}
	}
}

// Unregister a global client
func (h *Hub) UnregisterGlobal(conn *websocket.Conn) {
	h.Mutex.Lock()
	defer h.Mutex.Unlock()

	if client, ok := h.GlobalClients[conn]; ok {
		close(client.Send)
		delete(h.GlobalClients, conn)
	}
}

// GetStats reports connection counts for the health endpoint.
func (h *Hub) GetStats() map[string]interface{} {
	h.Mutex.RLock()
	defer h.Mutex.RUnlock()

	jobConnections := 0
	for _, clients := range h.Clients {
		jobConnections += len(clients)
	}

	return map[string]interface{}{
		"jobs":               len(h.Clients),
		"job_connections":    jobConnections,
		"global_connections": len(h.GlobalClients),
	}
}

func (h *Hub) writePump(client *Client, conn *websocket.Conn) {
	for msg := range client.Send {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			break
		}
	}
}
