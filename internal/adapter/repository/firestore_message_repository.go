package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/pkg/errors"
)

// Messages live in a subcollection under their job, so a job's history is a
// single ordered range read and never scans other jobs' traffic.
type firestoreMessageRepository struct {
	client *firestore.Client
}

func NewFirestoreMessageRepository(client *firestore.Client) repository.MessageRepository {
	return &firestoreMessageRepository{
		client: client,
	}
}

func (r *firestoreMessageRepository) messages(jobID string) *firestore.CollectionRef {
	return r.client.Collection("jobs").Doc(jobID).Collection("messages")
}

func (r *firestoreMessageRepository) Create(ctx context.Context, message *entity.Message) error {
	_, err := r.messages(message.JobID).Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}
	return nil
}

func (r *firestoreMessageRepository) ListByJob(ctx context.Context, jobID string) ([]*entity.Message, error) {
	iter := r.messages(jobID).OrderBy("createdAt", firestore.Asc).Documents(ctx)

	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreMessageRepository) MarkReadByReceiver(ctx context.Context, jobID, userID string) error {
	iter := r.messages(jobID).
		Where("receiverId", "==", userID).
		Where("isRead", "==", false).
		Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to query unread messages", err)
		}

		if _, err := doc.Ref.Update(ctx, []firestore.Update{
			{Path: "isRead", Value: true},
		}); err != nil {
			return errors.Internal("Failed to mark message as read", err)
		}
	}

	return nil
}
