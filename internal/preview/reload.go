package preview

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/vango-dev/daisy/pkg/middleware"
)

// Message types sent to browsers.
const (
	MessageReload = "reload"
	MessageError  = "error"
)

// writeTimeout bounds a single WebSocket write.
const writeTimeout = 2 * time.Second

// Message is sent to browsers over the reload WebSocket.
type Message struct {
	Type  string `json:"type"`
	Error string `json:"error,omitempty"`
}

// Hub tracks live reload connections and broadcasts to them.
type Hub struct {
	mu       sync.Mutex
	clients  map[*websocket.Conn]struct{}
	writeMu  sync.Mutex
	upgrader websocket.Upgrader
	log      zerolog.Logger
	metrics  *middleware.Metrics
}

// NewHub creates an empty hub. metrics may be nil.
func NewHub(log zerolog.Logger, metrics *middleware.Metrics) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]struct{}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		log:     log,
		metrics: metrics,
	}
}

// ServeHTTP upgrades the request and holds the connection until the
// browser goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("reload upgrade failed")
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	count := len(h.clients)
	h.mu.Unlock()
	h.metrics.SetReloadClients(count)
	h.log.Debug().Int("clients", count).Msg("reload client connected")

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.remove(conn)
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	count := len(h.clients)
	h.mu.Unlock()

	if ok {
		conn.Close()
		h.metrics.SetReloadClients(count)
	}
}

// NotifyReload asks every browser to reload the page.
func (h *Hub) NotifyReload() int {
	h.metrics.RecordReload()
	return h.Broadcast(Message{Type: MessageReload})
}

// NotifyError shows msg in an overlay on every browser.
func (h *Hub) NotifyError(msg string) int {
	return h.Broadcast(Message{Type: MessageError, Error: msg})
}

// Broadcast sends msg to all clients and returns how many received it.
// Clients that fail to receive are dropped.
func (h *Hub) Broadcast(msg Message) int {
	data, err := json.Marshal(msg)
	if err != nil {
		return 0
	}

	h.mu.Lock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	h.writeMu.Lock()
	defer h.writeMu.Unlock()

	sent := 0
	for _, c := range clients {
		_ = c.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Debug().Err(err).Msg("dropping reload client")
			h.remove(c)
			continue
		}
		sent++
	}
	return sent
}

// ClientCount returns the number of connected clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		c.Close()
		delete(h.clients, c)
	}
	h.metrics.SetReloadClients(0)
}

// ReloadPath is the WebSocket endpoint the client script connects to.
const ReloadPath = "/_daisy/reload"

// ReloadScript is the inline client injected into preview pages.
const ReloadScript = `(function () {
  var delay = 1000;
  function overlay(text) {
    var el = document.getElementById('daisy-error');
    if (!el) {
      el = document.createElement('pre');
      el.id = 'daisy-error';
      el.className = 'alert alert-error fixed bottom-4 left-4 right-4 z-50 whitespace-pre-wrap';
      document.body.appendChild(el);
    }
    el.textContent = text;
  }
  function connect() {
    var proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
    var ws = new WebSocket(proto + '//' + location.host + '` + ReloadPath + `');
    ws.onopen = function () { delay = 1000; };
    ws.onmessage = function (e) {
      var msg;
      try { msg = JSON.parse(e.data); } catch (err) { return; }
      if (msg.type === 'reload') { location.reload(); }
      if (msg.type === 'error') { overlay(msg.error); }
    };
    ws.onclose = function () {
      setTimeout(connect, delay);
      delay = Math.min(delay * 2, 30000);
    };
  }
  connect();
})();`
