package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(userID string) *Client {
	return &Client{
		UserID: userID,
		Send:   make(chan []byte, 8),
	}
}

func TestRegisterFirstConnection(t *testing.T) {
	m := NewManager()
	client := newTestClient("user-1")

	old := m.Register(client)

	assert.Nil(t, old)
	got, ok := m.Lookup("user-1")
	assert.True(t, ok)
	assert.Same(t, client, got)
}

func TestRegisterSupersedesPreviousConnection(t *testing.T) {
	m := NewManager()
	first := newTestClient("user-1")
	second := newTestClient("user-1")

	m.Register(first)
	old := m.Register(second)

	assert.Same(t, first, old)

	got, ok := m.Lookup("user-1")
	assert.True(t, ok)
	assert.Same(t, second, got)
}

func TestUnregisterRemovesClient(t *testing.T) {
	m := NewManager()
	client := newTestClient("user-1")

	m.Register(client)
	m.Unregister(client)

	_, ok := m.Lookup("user-1")
	assert.False(t, ok)
}

func TestUnregisterStaleClientKeepsNewerConnection(t *testing.T) {
	m := NewManager()
	first := newTestClient("user-1")
	second := newTestClient("user-1")

	m.Register(first)
	m.Register(second)

	// The superseded connection closes late; its unregister must not evict
	// the connection that replaced it.
	m.Unregister(first)

	got, ok := m.Lookup("user-1")
	assert.True(t, ok)
	assert.Same(t, second, got)
}

func TestUnregisterUnknownClientIsNoop(t *testing.T) {
	m := NewManager()

	m.Unregister(newTestClient("ghost"))

	_, ok := m.Lookup("ghost")
	assert.False(t, ok)
}

func TestSendToUserOffline(t *testing.T) {
	m := NewManager()

	assert.False(t, m.SendToUser("nobody", []byte("hello")))
}

func TestSendToUserDelivers(t *testing.T) {
	m := NewManager()
	client := newTestClient("user-1")
	m.Register(client)

	assert.True(t, m.SendToUser("user-1", []byte("hello")))
	assert.Equal(t, []byte("hello"), <-client.Send)
}

func TestTrySendFullChannelFails(t *testing.T) {
	client := &Client{
		UserID: "user-1",
		Send:   make(chan []byte, 1),
	}

	assert.True(t, client.TrySend([]byte("first")))
	assert.False(t, client.TrySend([]byte("second")))
}
