package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"importduty/internal/calculator"
	"importduty/internal/metrics"
	"importduty/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "websocket")

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 16
)

// Reply statuses
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// LiveRequest is one calculator form snapshot. RequestID is echoed back so
// the client can discard stale replies.
type LiveRequest struct {
	RequestID string `json:"request_id"`
	service.CalculateRequest
}

// LiveReply answers one LiveRequest
type LiveReply struct {
	RequestID string                       `json:"request_id,omitempty"`
	Status    string                       `json:"status"`
	Error     string                       `json:"error,omitempty"`
	Fields    map[string]string            `json:"fields,omitempty"`
	Data      *service.CalculationResponse `json:"data,omitempty"`
}

// Client represents a single connected WebSocket client
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn
	Send chan []byte
}

// Hub tracks connected live calculator clients
type Hub struct {
	calc       service.CalculationService
	metrics    *metrics.Metrics
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mu         sync.Mutex
}

// NewHub initializes a new WS Hub instance
func NewHub(calc service.CalculationService, m *metrics.Metrics) *Hub {
	if m == nil {
		m = metrics.NewNop()
	}
	return &Hub{
		calc:       calc,
		metrics:    m,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[*Client]bool),
	}
}

// Run dispatches register and unregister events until ctx is done, then
// closes every remaining connection. Run must only be called once.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.metrics.LiveClients.Inc()
			h.mu.Unlock()
			log.Debug("live calculator client connected")
		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.metrics.LiveClients.Dec()
				log.Debug("live calculator client disconnected")
			}
			h.mu.Unlock()
		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for client := range h.clients {
				delete(h.clients, client)
				_ = client.Conn.Close()
				h.metrics.LiveClients.Dec()
			}
			h.mu.Unlock()
			return
		}
	}
}

// Len reports the number of connected clients
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Answer computes the reply for one raw form message
func (h *Hub) Answer(ctx context.Context, message []byte) LiveReply {
	var req LiveRequest
	if err := json.Unmarshal(message, &req); err != nil {
		return LiveReply{Status: StatusError, Error: "Invalid request payload: " + err.Error()}
	}

	resp, err := h.calc.Calculate(ctx, req.CalculateRequest)
	if err == nil {
		return LiveReply{RequestID: req.RequestID, Status: StatusOK, Data: &resp}
	}

	var verrs calculator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return LiveReply{RequestID: req.RequestID, Status: StatusInvalid, Fields: verrs}
	case errors.Is(err, service.ErrUnknownCategory):
		return LiveReply{
			RequestID: req.RequestID,
			Status:    StatusInvalid,
			Fields:    map[string]string{calculator.FieldCategory: "Select item type"},
		}
	default:
		return LiveReply{RequestID: req.RequestID, Status: StatusError, Error: err.Error()}
	}
}

// writePump writes replies queued on Send, one frame per reply
func (c *Client) writePump() {
	defer func() {
		_ = c.Conn.Close()
	}()
	for message := range c.Send {
		_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
	_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
	_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
}

// readPump answers every inbound form message on the client's Send queue
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		select {
		case c.Hub.unregister <- c:
		case <-c.Hub.done:
			// hub is gone; this goroutine is the only sender on Send
			close(c.Send)
		}
		_ = c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.WithError(err).Warn("live calculator connection closed unexpectedly")
			}
			break
		}

		reply, err := json.Marshal(c.Hub.Answer(ctx, message))
		if err != nil {
			log.WithError(err).Error("failed to encode live reply")
			continue
		}
		select {
		case c.Send <- reply:
		default:
			log.Warn("live calculator client too slow, dropping connection")
			return
		}
	}
}

// ServeWs godoc
// @Summary      Live calculator
// @Description  Upgrades to a websocket. Each text frame is a websocket.LiveRequest and is answered by one websocket.LiveReply
// @Tags         calculations
// @Success      101  {object}  websocket.LiveReply  "Switching Protocols"
// @Router       /api/ws [get]
func ServeWs(hub *Hub, c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade failed")
		return
	}
	client := &Client{Hub: hub, Conn: conn, Send: make(chan []byte, sendBuffer)}
	select {
	case hub.register <- client:
	case <-hub.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump(context.WithoutCancel(c.Request.Context()))
}

// CheckOrigin restricts upgrades to the given origins; an empty list allows all
func CheckOrigin(origins []string) func(r *http.Request) bool {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return len(allowed) == 0 || origin == "" || allowed[origin]
	}
}

// SetAllowedOrigins configures the upgrader's origin check
func SetAllowedOrigins(origins []string) {
	upgrader.CheckOrigin = CheckOrigin(origins)
}
