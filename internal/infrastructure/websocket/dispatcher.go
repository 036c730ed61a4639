package websocket

import (
	"encoding/json"

	"huduma/pkg/logger"
)

// Dispatcher routes an event to a user's live channel if one is registered.
// Delivery is strictly best-effort: the caller has already persisted the
// underlying fact, so an offline receiver or a failed push is logged and
// dropped, never retried and never surfaced.
type Dispatcher struct {
	manager *Manager
}

func NewDispatcher(manager *Manager) *Dispatcher {
	return &Dispatcher{manager: manager}
}

// Deliver serializes event and pushes it to userID's channel. It never
// blocks beyond the local buffered send.
func (d *Dispatcher) Deliver(userID string, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.Error("Dispatcher: failed to marshal %s event for user %s: %v", event.Type, userID, err)
		return
	}

	client, ok := d.manager.Lookup(userID)
	if !ok {
		logger.Debug("Dispatcher: user %s offline, dropping %s event", userID, event.Type)
		return
	}

	if !client.TrySend(payload) {
		logger.Warn("Dispatcher: channel for user %s stalled, dropping %s event", userID, event.Type)
	}
}
