package ws

import (
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"careercompass/internal/metrics"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgSnapshot MessageType = "progress_snapshot"
	MsgError    MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Connection represents a WebSocket connection
type Connection struct {
	SessionID   string // empty for counselor connections
	CounselorID string
	Send        chan []byte
}

// IsCounselor reports whether the connection watches every session
func (c *Connection) IsCounselor() bool { return c.SessionID == "" }

// BroadcastMessage is a message to broadcast. Disconnect closes the
// session's subscriptions instead; it travels on the same queue so every
// message sent before it is delivered first.
type BroadcastMessage struct {
	SessionID   string // empty means counselors
	ToCounselor bool
	Disconnect  bool
	Message     *Message
}

// Hub fans assessment events out to the student's open tabs and to counselors
type Hub struct {
	sessionConns   map[string]map[*Connection]bool
	counselorConns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	done       chan struct{}
	closeOnce  sync.Once

	log zerolog.Logger
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(log zerolog.Logger) *Hub {
	h := &Hub{
		sessionConns:   make(map[string]map[*Connection]bool),
		counselorConns: make(map[*Connection]bool),
		register:       make(chan *Connection),
		unregister:     make(chan *Connection),
		broadcast:      make(chan *BroadcastMessage, 256),
		done:           make(chan struct{}),
		log:            log,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.sessionConns {
				for c := range conns {
					close(c.Send)
				}
			}
			for c := range h.counselorConns {
				close(c.Send)
			}
			h.sessionConns = map[string]map[*Connection]bool{}
			h.counselorConns = map[*Connection]bool{}
			h.mu.Unlock()
			return

		case conn := <-h.register:
			h.mu.Lock()
			if conn.IsCounselor() {
				h.counselorConns[conn] = true
				h.log.Debug().Str("counselor_id", conn.CounselorID).Msg("counselor connected")
			} else {
				if h.sessionConns[conn.SessionID] == nil {
					h.sessionConns[conn.SessionID] = make(map[*Connection]bool)
				}
				h.sessionConns[conn.SessionID][conn] = true
				h.log.Debug().Str("session_id", conn.SessionID).Msg("session subscriber connected")
			}
			h.mu.Unlock()
			metrics.WSConnections.Inc()

		case conn := <-h.unregister:
			h.mu.Lock()
			h.remove(conn)
			h.mu.Unlock()

		case msg := <-h.broadcast:
			if msg.Disconnect {
				h.mu.Lock()
				for c := range h.sessionConns[msg.SessionID] {
					h.remove(c)
				}
				h.mu.Unlock()
				continue
			}

			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.log.Error().Err(err).Str("type", string(msg.Message.Type)).Msg("failed to encode event")
				continue
			}

			h.mu.RLock()
			targets := h.counselorConns
			if !msg.ToCounselor {
				targets = h.sessionConns[msg.SessionID]
			}
			for conn := range targets {
				select {
				case conn.Send <- data:
					metrics.WSMessagesSent.WithLabelValues(string(msg.Message.Type)).Inc()
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

// remove must be called with h.mu held
func (h *Hub) remove(conn *Connection) {
	if conn.IsCounselor() {
		if !h.counselorConns[conn] {
			return
		}
		delete(h.counselorConns, conn)
	} else {
		conns := h.sessionConns[conn.SessionID]
		if !conns[conn] {
			return
		}
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.sessionConns, conn.SessionID)
		}
	}
	close(conn.Send)
	metrics.WSConnections.Dec()
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Close disconnects every subscriber and stops the hub
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

func (h *Hub) send(msg *BroadcastMessage) {
	select {
	case h.broadcast <- msg:
	case <-h.done:
	}
}

// envelope wraps payload; one that cannot be encoded becomes an error message
func envelope(msgType string, payload interface{}) *Message {
	data, err := json.Marshal(payload)
	if err != nil {
		reason, _ := json.Marshal("could not encode " + msgType)
		return &Message{Type: MsgError, Payload: reason}
	}
	return &Message{Type: MessageType(msgType), Payload: data}
}

// BroadcastToSession sends a message to a session's subscribers (implements service.Broadcaster)
func (h *Hub) BroadcastToSession(sessionID string, msgType string, payload interface{}) {
	h.send(&BroadcastMessage{SessionID: sessionID, Message: envelope(msgType, payload)})
}

// BroadcastToCounselors sends a message to every counselor (implements service.Broadcaster)
func (h *Hub) BroadcastToCounselors(msgType string, payload interface{}) {
	h.send(&BroadcastMessage{ToCounselor: true, Message: envelope(msgType, payload)})
}

// DisconnectSession closes every subscription to one session (implements service.Broadcaster)
func (h *Hub) DisconnectSession(sessionID string) {
	h.send(&BroadcastMessage{SessionID: sessionID, Disconnect: true})
}
