package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/internal/infrastructure/ratelimit"
	"huduma/internal/infrastructure/websocket"
	"huduma/pkg/errors"
	"huduma/pkg/logger"
)

type ChatUseCase struct {
	messageRepo repository.MessageRepository
	jobRepo     repository.JobRepository
	userRepo    repository.UserRepository
	dispatcher  *websocket.Dispatcher
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(
	messageRepo repository.MessageRepository,
	jobRepo repository.JobRepository,
	userRepo repository.UserRepository,
	dispatcher *websocket.Dispatcher,
	rateLimiter *ratelimit.RateLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		messageRepo: messageRepo,
		jobRepo:     jobRepo,
		userRepo:    userRepo,
		dispatcher:  dispatcher,
		rateLimiter: rateLimiter,
	}
}

type SendMessageInput struct {
	JobID         string `json:"job_id" validate:"required"`
	ReceiverID    string `json:"receiver_id" validate:"required"`
	Content       string `json:"content" validate:"required,max=2000"`
	Type          string `json:"type" validate:"omitempty,oneof=text image file"`
	AttachmentURL string `json:"attachment_url" validate:"omitempty,url"`
}

// MessageResponse is a message joined with both resolved parties. Sender and
// receiver are looked up independently; one missing account never hides the
// other side of the exchange.
type MessageResponse struct {
	*entity.Message
	Sender   *entity.User `json:"sender,omitempty"`
	Receiver *entity.User `json:"receiver,omitempty"`
}

// SendMessage persists the message, then pushes it to the receiver only.
// The sender already holds the content; echoing it back would force every
// client to dedupe its own sends.
func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if allowed, wait := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		logger.Warn("SendMessage rate limited for user %s, retry in %v", senderID, wait)
		return nil, errors.TooManyRequests("Too many messages, slow down")
	}

	job, err := uc.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	if senderID == input.ReceiverID {
		return nil, errors.BadRequest("Cannot send a message to yourself", nil)
	}

	if !job.IsParticipant(senderID) || !job.IsParticipant(input.ReceiverID) {
		return nil, errors.BadRequest("Sender and receiver must both belong to this job", nil)
	}

	messageType := input.Type
	if messageType == "" {
		messageType = entity.MessageTypeText
	}

	message := &entity.Message{
		ID:            uuid.New().String(),
		JobID:         input.JobID,
		SenderID:      senderID,
		ReceiverID:    input.ReceiverID,
		Content:       input.Content,
		Type:          messageType,
		AttachmentURL: input.AttachmentURL,
		IsRead:        false,
		CreatedAt:     time.Now(),
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		logger.Error("SendMessage Error: failed to persist message for job %s: %v", input.JobID, err)
		return nil, errors.Internal("Failed to send message", err)
	}

	uc.dispatcher.Deliver(input.ReceiverID, websocket.NewMessageEvent(message))

	return message, nil
}

// GetJobMessages returns the job's full history, oldest first, with sender
// and receiver details attached per message.
func (uc *ChatUseCase) GetJobMessages(ctx context.Context, userID, jobID string) ([]*MessageResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !job.IsParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this job", nil)
	}

	messages, err := uc.messageRepo.ListByJob(ctx, jobID)
	if err != nil {
		logger.Error("GetJobMessages Error: failed to list messages for job %s: %v", jobID, err)
		return nil, errors.Internal("Failed to load messages", err)
	}

	// A job chat only ever involves two users, so cache lookups per call.
	users := make(map[string]*entity.User)
	resolve := func(id string) *entity.User {
		if user, ok := users[id]; ok {
			return user
		}
		user, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			logger.Warn("GetJobMessages: failed to resolve user %s: %v", id, err)
			user = nil
		}
		users[id] = user
		return user
	}

	responses := make([]*MessageResponse, 0, len(messages))
	for _, message := range messages {
		responses = append(responses, &MessageResponse{
			Message:  message,
			Sender:   resolve(message.SenderID),
			Receiver: resolve(message.ReceiverID),
		})
	}

	return responses, nil
}

// MarkMessagesRead flips every unread message in the job addressed to userID.
// Calling it again, or when nothing is unread, is a no-op.
func (uc *ChatUseCase) MarkMessagesRead(ctx context.Context, userID, jobID string) error {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return err
	}

	if !job.IsParticipant(userID) {
		return errors.Forbidden("You are not part of this job", nil)
	}

	if err := uc.messageRepo.MarkReadByReceiver(ctx, jobID, userID); err != nil {
		logger.Error("MarkMessagesRead Error: job %s user %s: %v", jobID, userID, err)
		return errors.Internal("Failed to mark messages as read", err)
	}

	return nil
}
