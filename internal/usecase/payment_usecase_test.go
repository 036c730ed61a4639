package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/service"
	"huduma/internal/infrastructure/websocket"
	"huduma/pkg/errors"
)

type stubPaymentService struct {
	lastRequest service.STKPushRequest
	err         error
}

func (s *stubPaymentService) InitiateSTKPush(ctx context.Context, req service.STKPushRequest) (*service.STKPushResponse, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return &service.STKPushResponse{
		CheckoutRequestID: "checkout-1",
		ResponseCode:      "0",
		CustomerMessage:   "Request accepted",
	}, nil
}

func newPaymentFixture(t *testing.T) (*PaymentUseCase, *memJobRepo, *stubPaymentService, *websocket.Manager) {
	t.Helper()
	ctx := context.Background()

	users := newMemUserRepo()
	jobs := newMemJobRepo()
	manager := websocket.NewManager()
	notifier := NewJobNotifier(websocket.NewDispatcher(manager))
	stub := &stubPaymentService{}

	require.NoError(t, users.Create(ctx, &entity.User{ID: "customer"}))
	require.NoError(t, users.Create(ctx, &entity.User{ID: "fundi"}))
	require.NoError(t, jobs.Create(ctx, &entity.Job{
		ID:            "job-1",
		CustomerID:    "customer",
		ProviderID:    "fundi",
		Title:         "Fix leaking tap",
		Status:        entity.JobStatusCompleted,
		PaymentStatus: entity.PaymentStatusPending,
	}))

	return NewPaymentUseCase(jobs, stub, notifier), jobs, stub, manager
}

func TestInitiateMpesaPaymentMarksJobPaidAndNotifies(t *testing.T) {
	uc, jobs, stub, manager := newPaymentFixture(t)
	ctx := context.Background()

	providerConn := &websocket.Client{UserID: "fundi", Send: make(chan []byte, 8)}
	customerConn := &websocket.Client{UserID: "customer", Send: make(chan []byte, 8)}
	manager.Register(providerConn)
	manager.Register(customerConn)

	result, err := uc.InitiateMpesaPayment(ctx, "customer", InitiatePaymentInput{
		JobID:       "job-1",
		PhoneNumber: "+254712345678",
		Amount:      2000,
	})
	require.NoError(t, err)
	assert.Equal(t, "checkout-1", result.CheckoutRequestID)
	assert.Equal(t, "job-1", stub.lastRequest.JobID)

	job, err := jobs.GetByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, job.PaymentStatus)
	assert.InDelta(t, 2000.0, job.FinalPrice, 0.001)

	// Both sides hear about the payment.
	assert.Len(t, providerConn.Send, 1)
	assert.Len(t, customerConn.Send, 1)
}

func TestInitiateMpesaPaymentOnlyByCustomer(t *testing.T) {
	uc, _, _, _ := newPaymentFixture(t)

	_, err := uc.InitiateMpesaPayment(context.Background(), "fundi", InitiatePaymentInput{
		JobID:       "job-1",
		PhoneNumber: "+254712345678",
		Amount:      2000,
	})
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestInitiateMpesaPaymentRejectsAlreadyPaidJob(t *testing.T) {
	uc, jobs, _, _ := newPaymentFixture(t)
	ctx := context.Background()

	job, err := jobs.GetByID(ctx, "job-1")
	require.NoError(t, err)
	job.PaymentStatus = entity.PaymentStatusPaid
	require.NoError(t, jobs.Update(ctx, job))

	_, err = uc.InitiateMpesaPayment(ctx, "customer", InitiatePaymentInput{
		JobID:       "job-1",
		PhoneNumber: "+254712345678",
		Amount:      2000,
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestInitiateMpesaPaymentServiceFailureLeavesJobPending(t *testing.T) {
	uc, jobs, stub, _ := newPaymentFixture(t)
	ctx := context.Background()

	stub.err = errors.Internal("gateway down", nil)

	_, err := uc.InitiateMpesaPayment(ctx, "customer", InitiatePaymentInput{
		JobID:       "job-1",
		PhoneNumber: "+254712345678",
		Amount:      2000,
	})
	require.Error(t, err)

	job, err := jobs.GetByID(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, job.PaymentStatus)
}
