package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huduma/internal/domain/entity"
	"huduma/internal/infrastructure/ratelimit"
	"huduma/internal/infrastructure/websocket"
	"huduma/pkg/errors"
)

type chatFixture struct {
	uc       *ChatUseCase
	users    *memUserRepo
	jobs     *memJobRepo
	messages *memMessageRepo
	manager  *websocket.Manager
}

func newChatFixture() *chatFixture {
	users := newMemUserRepo()
	jobs := newMemJobRepo()
	messages := newMemMessageRepo()
	manager := websocket.NewManager()
	dispatcher := websocket.NewDispatcher(manager)

	return &chatFixture{
		uc:       NewChatUseCase(messages, jobs, users, dispatcher, ratelimit.NewRateLimiter()),
		users:    users,
		jobs:     jobs,
		messages: messages,
		manager:  manager,
	}
}

func (f *chatFixture) seedJob(t *testing.T, customerID, providerID string) *entity.Job {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &entity.User{ID: customerID, FirstName: "Asha", UserType: entity.UserTypeCustomer}))
	require.NoError(t, f.users.Create(ctx, &entity.User{ID: providerID, FirstName: "Juma", UserType: entity.UserTypeProvider}))

	job := &entity.Job{
		ID:         "job-1",
		CustomerID: customerID,
		ProviderID: providerID,
		Title:      "Fix leaking tap",
		Status:     entity.JobStatusAccepted,
	}
	require.NoError(t, f.jobs.Create(ctx, job))
	return job
}

func (f *chatFixture) connect(userID string) *websocket.Client {
	client := &websocket.Client{
		UserID: userID,
		Send:   make(chan []byte, 8),
	}
	f.manager.Register(client)
	return client
}

func TestSendMessagePersistsAndPushesToReceiverOnly(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")

	sender := f.connect("customer")
	receiver := f.connect("provider")

	message, err := f.uc.SendMessage(context.Background(), "customer", SendMessageInput{
		JobID:      job.ID,
		ReceiverID: "provider",
		Content:    "Uko wapi?",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.MessageTypeText, message.Type)
	assert.False(t, message.IsRead)

	// Receiver gets exactly one push.
	require.Len(t, receiver.Send, 1)
	var event websocket.Event
	require.NoError(t, json.Unmarshal(<-receiver.Send, &event))
	assert.Equal(t, websocket.EventNewMessage, event.Type)
	require.NotNil(t, event.Message)
	assert.Equal(t, message.ID, event.Message.ID)

	// The sender's own channel stays silent.
	assert.Len(t, sender.Send, 0)

	history, err := f.messages.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "Uko wapi?", history[0].Content)
}

func TestSendMessageToOfflineReceiverStillPersists(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")

	_, err := f.uc.SendMessage(context.Background(), "customer", SendMessageInput{
		JobID:      job.ID,
		ReceiverID: "provider",
		Content:    "Nitafika saa nne",
	})
	require.NoError(t, err)

	history, err := f.messages.ListByJob(context.Background(), job.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestSendMessageToSelfRejected(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")

	_, err := f.uc.SendMessage(context.Background(), "customer", SendMessageInput{
		JobID:      job.ID,
		ReceiverID: "customer",
		Content:    "note to self",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSendMessageByOutsiderRejected(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")

	_, err := f.uc.SendMessage(context.Background(), "stranger", SendMessageInput{
		JobID:      job.ID,
		ReceiverID: "provider",
		Content:    "hello",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSendMessageUnknownJobRejected(t *testing.T) {
	f := newChatFixture()
	f.seedJob(t, "customer", "provider")

	_, err := f.uc.SendMessage(context.Background(), "customer", SendMessageInput{
		JobID:      "no-such-job",
		ReceiverID: "provider",
		Content:    "hello",
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetJobMessagesReturnsHistoryInOrderWithParties(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")
	ctx := context.Background()

	contents := []string{"Hujambo", "Sijambo", "Je, unaweza kuja kesho?"}
	senders := []string{"customer", "provider", "customer"}
	receivers := []string{"provider", "customer", "provider"}
	for i := range contents {
		_, err := f.uc.SendMessage(ctx, senders[i], SendMessageInput{
			JobID:      job.ID,
			ReceiverID: receivers[i],
			Content:    contents[i],
		})
		require.NoError(t, err)
	}

	history, err := f.uc.GetJobMessages(ctx, "provider", job.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)

	for i, msg := range history {
		assert.Equal(t, contents[i], msg.Content)
		require.NotNil(t, msg.Sender)
		require.NotNil(t, msg.Receiver)
		assert.Equal(t, senders[i], msg.Sender.ID)
		assert.Equal(t, receivers[i], msg.Receiver.ID)
	}
}

func TestGetJobMessagesForbiddenForOutsider(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")

	_, err := f.uc.GetJobMessages(context.Background(), "stranger", job.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkMessagesReadIsScopedAndIdempotent(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")
	ctx := context.Background()

	_, err := f.uc.SendMessage(ctx, "customer", SendMessageInput{JobID: job.ID, ReceiverID: "provider", Content: "one"})
	require.NoError(t, err)
	_, err = f.uc.SendMessage(ctx, "provider", SendMessageInput{JobID: job.ID, ReceiverID: "customer", Content: "two"})
	require.NoError(t, err)

	require.NoError(t, f.uc.MarkMessagesRead(ctx, "provider", job.ID))

	history, err := f.messages.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)

	for _, message := range history {
		if message.ReceiverID == "provider" {
			assert.True(t, message.IsRead)
		} else {
			// The other direction stays unread.
			assert.False(t, message.IsRead)
		}
	}

	// A repeat call changes nothing.
	require.NoError(t, f.uc.MarkMessagesRead(ctx, "provider", job.ID))
	again, err := f.messages.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, history, again)
}

func TestChatSessionSeesHistoryThenLiveEvents(t *testing.T) {
	f := newChatFixture()
	job := f.seedJob(t, "customer", "provider")
	ctx := context.Background()

	// Messages sent while the provider was offline.
	_, err := f.uc.SendMessage(ctx, "customer", SendMessageInput{JobID: job.ID, ReceiverID: "provider", Content: "earlier"})
	require.NoError(t, err)

	// Provider comes online: seeds from history, then receives live pushes.
	providerConn := f.connect("provider")
	history, err := f.uc.GetJobMessages(ctx, "provider", job.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "earlier", history[0].Content)

	sent, err := f.uc.SendMessage(ctx, "customer", SendMessageInput{JobID: job.ID, ReceiverID: "provider", Content: "live"})
	require.NoError(t, err)

	var event websocket.Event
	select {
	case payload := <-providerConn.Send:
		require.NoError(t, json.Unmarshal(payload, &event))
	case <-time.After(time.Second):
		t.Fatal("expected a live push")
	}
	assert.Equal(t, sent.ID, event.Message.ID)
	assert.Equal(t, "live", event.Message.Content)
}
