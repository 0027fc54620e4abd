package ws

import (
	"encoding/json"
	"log"
	"sync"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgQuestionAdvanced    MessageType = "question_advanced"
	MsgDeepDiveStarted     MessageType = "deep_dive_started"
	MsgAssessmentCompleted MessageType = "assessment_completed"
	MsgPlanReady           MessageType = "plan_ready"
	MsgPlanFailed          MessageType = "plan_failed"
	MsgError               MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages WebSocket subscribers per assessment
type Hub struct {
	// assessmentID -> connections
	conns map[string]map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *event
}

// Connection represents a WebSocket subscriber for one assessment
type Connection struct {
	AssessmentID string
	Send         chan []byte
	Hub          *Hub
}

type event struct {
	AssessmentID string
	Message      *Message
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[string]map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *event, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.conns[conn.AssessmentID] == nil {
				h.conns[conn.AssessmentID] = make(map[*Connection]bool)
			}
			h.conns[conn.AssessmentID][conn] = true
			h.mu.Unlock()
			log.Printf("Subscriber connected to assessment %s", conn.AssessmentID)

		case conn := <-h.unregister:
			h.mu.Lock()
			if subs, ok := h.conns[conn.AssessmentID]; ok {
				if subs[conn] {
					delete(subs, conn)
					close(conn.Send)
					log.Printf("Subscriber disconnected from assessment %s", conn.AssessmentID)
				}
				if len(subs) == 0 {
					delete(h.conns, conn.AssessmentID)
				}
			}
			h.mu.Unlock()

		case ev := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(ev.Message)
			for conn := range h.conns[ev.AssessmentID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// Notify sends an event to every subscriber of an assessment (implements
// service.Notifier)
func (h *Hub) Notify(assessmentID string, msgType string, payload interface{}) {
	data, _ := json.Marshal(payload)
	h.broadcast <- &event{
		AssessmentID: assessmentID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}
}
