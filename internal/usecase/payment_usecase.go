package usecase

import (
	"context"
	"time"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/internal/domain/service"
	"huduma/pkg/errors"
	"huduma/pkg/logger"
)

type PaymentUseCase struct {
	jobRepo        repository.JobRepository
	paymentService service.PaymentService
	notifier       *JobNotifier
}

func NewPaymentUseCase(
	jobRepo repository.JobRepository,
	paymentService service.PaymentService,
	notifier *JobNotifier,
) *PaymentUseCase {
	return &PaymentUseCase{
		jobRepo:        jobRepo,
		paymentService: paymentService,
		notifier:       notifier,
	}
}

type InitiatePaymentInput struct {
	JobID       string  `json:"job_id" validate:"required"`
	PhoneNumber string  `json:"phone_number" validate:"required,e164"`
	Amount      float64 `json:"amount" validate:"required,gt=0"`
}

type InitiatePaymentResponse struct {
	Job               *entity.Job `json:"job"`
	CheckoutRequestID string      `json:"checkout_request_id"`
	CustomerMessage   string      `json:"customer_message"`
}

// InitiateMpesaPayment pushes an STK prompt to the customer's phone and
// records the job as paid, then notifies both parties of the change.
func (uc *PaymentUseCase) InitiateMpesaPayment(ctx context.Context, customerID string, input InitiatePaymentInput) (*InitiatePaymentResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	if job.CustomerID != customerID {
		return nil, errors.Forbidden("Only the job's customer can pay for it", nil)
	}
	if job.PaymentStatus == entity.PaymentStatusPaid {
		return nil, errors.BadRequest("This job is already paid", nil)
	}

	result, err := uc.paymentService.InitiateSTKPush(ctx, service.STKPushRequest{
		PhoneNumber: input.PhoneNumber,
		Amount:      input.Amount,
		JobID:       job.ID,
		Description: job.Title,
	})
	if err != nil {
		logger.Error("InitiateMpesaPayment Error: %v", err)
		return nil, errors.Internal("Failed to initiate M-Pesa payment", err)
	}

	job.PaymentStatus = entity.PaymentStatusPaid
	if job.FinalPrice == 0 {
		job.FinalPrice = input.Amount
	}
	job.UpdatedAt = time.Now()

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		logger.Error("InitiateMpesaPayment Error: failed to update job %s: %v", job.ID, err)
		return nil, errors.Internal("Failed to record payment", err)
	}

	uc.notifier.JobUpdated(job)

	return &InitiatePaymentResponse{
		Job:               job,
		CheckoutRequestID: result.CheckoutRequestID,
		CustomerMessage:   result.CustomerMessage,
	}, nil
}
