package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/alfagnish/userlist/internal/users"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allow all origins (CORS is handled at the middleware level).
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WatchHandler streams newly created users to WebSocket clients.
type WatchHandler struct {
	reg    *users.Registry
	logger *slog.Logger
}

// NewWatchHandler creates a new WatchHandler.
func NewWatchHandler(reg *users.Registry, logger *slog.Logger) *WatchHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WatchHandler{reg: reg, logger: logger}
}

// Routes registers the WebSocket endpoint.
func (h *WatchHandler) Routes(r chi.Router) {
	r.Get("/", h.HandleWS)
}

// wsEvent is the JSON frame sent to WebSocket clients.
type wsEvent struct {
	Type string      `json:"type"`
	User *users.User `json:"user,omitempty"`
}

// HandleWS upgrades the connection and writes one "user_created" frame per
// user created afterwards. Client messages are discarded; the stream ends
// when the client disconnects.
func (h *WatchHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade", "error", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Reading is the only way to notice a closed connection.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					h.logger.Debug("websocket read", "error", err)
				}
				return
			}
		}
	}()

	for u := range h.reg.Watch(ctx) {
		data, _ := json.Marshal(wsEvent{Type: "user_created", User: &u})
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.logger.Debug("websocket write", "error", err)
			return
		}
	}
}
