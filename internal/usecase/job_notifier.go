package usecase

import (
	"huduma/internal/domain/entity"
	"huduma/internal/infrastructure/websocket"
)

// JobNotifier fans job lifecycle events out to the affected parties. It runs
// after the job write has committed, so every push reflects durable state.
type JobNotifier struct {
	dispatcher *websocket.Dispatcher
}

func NewJobNotifier(dispatcher *websocket.Dispatcher) *JobNotifier {
	return &JobNotifier{dispatcher: dispatcher}
}

// JobCreated notifies the targeted provider of a fresh request. Jobs created
// without a provider notify nobody; the provider learns of the job when it
// is assigned via an update.
func (n *JobNotifier) JobCreated(job *entity.Job) {
	if job.ProviderID == "" {
		return
	}
	n.dispatcher.Deliver(job.ProviderID, websocket.NewJobRequestEvent(job))
}

// JobUpdated notifies both sides of the job, whichever of them are online.
func (n *JobNotifier) JobUpdated(job *entity.Job) {
	for _, userID := range job.Participants() {
		n.dispatcher.Deliver(userID, websocket.JobUpdatedEvent(job))
	}
}
