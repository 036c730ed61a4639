package repository

import (
	"context"

	"huduma/internal/domain/entity"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error

	// ListByJob returns the job's full message history in ascending
	// creation-time order, ties broken by insertion order. It reflects the
	// durable state at call time and is safe to call repeatedly.
	ListByJob(ctx context.Context, jobID string) ([]*entity.Message, error)

	// MarkReadByReceiver flips isRead to true on every unread message in the
	// job addressed to userID. Idempotent.
	MarkReadByReceiver(ctx context.Context, jobID, userID string) error
}
