package websocket

import (
	"sync"

	"github.com/gorilla/websocket"

	"huduma/pkg/logger"
)

// Client represents one live push connection for one user.
type Client struct {
	UserID string
	Conn   *websocket.Conn
	Send   chan []byte
}

// TrySend queues payload on the client's send channel without blocking.
// A full channel means the connection is stalled; the caller treats that
// as a failed delivery.
func (c *Client) TrySend(payload []byte) bool {
	select {
	case c.Send <- payload:
		return true
	default:
		return false
	}
}

// Manager is the process-wide connection registry: at most one live client
// per user identity. It is purely a delivery index; dropping its entire
// state loses no data, since every event is persisted before delivery.
type Manager struct {
	clients map[string]*Client
	mutex   sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients: make(map[string]*Client),
	}
}

// Register records the live client for its user. A newer connection for the
// same user supersedes the older one (last write wins); the superseded
// client is returned so the caller can close its transport.
func (m *Manager) Register(client *Client) *Client {
	m.mutex.Lock()
	old := m.clients[client.UserID]
	m.clients[client.UserID] = client
	m.mutex.Unlock()

	if old != nil {
		logger.Info("Client %s reconnected, superseding previous connection", client.UserID)
	} else {
		logger.Info("Client registered: %s", client.UserID)
	}
	return old
}

// Unregister removes the client's entry. Safe to call when no entry exists,
// and safe to call for a superseded client: the entry is only removed if it
// still points at this exact client, so a stale close can never evict a
// newer connection.
func (m *Manager) Unregister(client *Client) {
	m.mutex.Lock()
	if current, ok := m.clients[client.UserID]; ok && current == client {
		delete(m.clients, client.UserID)
	}
	m.mutex.Unlock()

	logger.Info("Client unregistered: %s", client.UserID)
}

// Lookup returns the current live client for userID, if any. Absence is not
// an error.
func (m *Manager) Lookup(userID string) (*Client, bool) {
	m.mutex.RLock()
	client, ok := m.clients[userID]
	m.mutex.RUnlock()
	return client, ok
}

// SendToUser pushes payload to the user's live channel if one exists.
// Returns false when the user is offline or the channel is stalled.
func (m *Manager) SendToUser(userID string, payload []byte) bool {
	client, ok := m.Lookup(userID)
	if !ok {
		return false
	}
	return client.TrySend(payload)
}

// ReadPump drains the connection until it closes. The push channel is
// one-directional; inbound frames are discarded, reading only serves to
// detect the close.
func (c *Client) ReadPump(m *Manager) {
	defer func() {
		m.Unregister(c)
		c.Conn.Close()
	}()

	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				logger.Warn("Client %s read error: %v", c.UserID, err)
			}
			return
		}
	}
}

// WritePump flushes the send channel to the connection.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for {
		payload, ok := <-c.Send
		if !ok {
			c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}

		if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			logger.Warn("Client %s write error: %v", c.UserID, err)
			return
		}
	}
}
