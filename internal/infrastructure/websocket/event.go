package websocket

import (
	"huduma/internal/domain/entity"
)

// Event types pushed to connected clients. The set is closed: every pushed
// frame is one of these three shapes.
const (
	EventNewMessage    = "new_message"
	EventNewJobRequest = "new_job_request"
	EventJobUpdated    = "job_updated"
)

// Event is the wire shape of a push notification. Exactly one of Message or
// Job is set, matching Type. Events are never persisted; a receiver that is
// offline simply sees the underlying record on its next fetch.
type Event struct {
	Type    string          `json:"type"`
	Message *entity.Message `json:"message,omitempty"`
	Job     *entity.Job     `json:"job,omitempty"`
}

func NewMessageEvent(message *entity.Message) Event {
	return Event{Type: EventNewMessage, Message: message}
}

func NewJobRequestEvent(job *entity.Job) Event {
	return Event{Type: EventNewJobRequest, Job: job}
}

func JobUpdatedEvent(job *entity.Job) Event {
	return Event{Type: EventJobUpdated, Job: job}
}
