package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/pkg/errors"
	"huduma/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo   repository.ReviewRepository
	jobRepo      repository.JobRepository
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	jobRepo repository.JobRepository,
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:   reviewRepo,
		jobRepo:      jobRepo,
		providerRepo: providerRepo,
		userRepo:     userRepo,
	}
}

type CreateReviewInput struct {
	JobID   string `json:"job_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// ReviewResponse is a review joined with the reviewing customer.
type ReviewResponse struct {
	*entity.Review
	Customer *entity.User `json:"customer,omitempty"`
}

// CreateReview records the customer's rating for a completed job and
// recomputes the provider's aggregate. One review per job.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, customerID string, input CreateReviewInput) (*entity.Review, error) {
	job, err := uc.jobRepo.GetByID(ctx, input.JobID)
	if err != nil {
		return nil, err
	}

	if job.CustomerID != customerID {
		return nil, errors.Forbidden("Only the job's customer can leave a review", nil)
	}
	if job.Status != entity.JobStatusCompleted {
		return nil, errors.BadRequest("Only completed jobs can be reviewed", nil)
	}
	if job.ProviderID == "" {
		return nil, errors.BadRequest("This job has no provider to review", nil)
	}

	if existing, err := uc.reviewRepo.GetByJobID(ctx, input.JobID); err == nil && existing != nil {
		return nil, errors.Conflict("This job has already been reviewed")
	}

	provider, err := uc.providerRepo.GetByUserID(ctx, job.ProviderID)
	if err != nil {
		return nil, errors.NotFound("Provider profile", err)
	}

	review := &entity.Review{
		ID:         uuid.New().String(),
		JobID:      input.JobID,
		CustomerID: customerID,
		ProviderID: provider.ID,
		Rating:     input.Rating,
		Comment:    input.Comment,
		CreatedAt:  time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		logger.Error("CreateReview Error: %v", err)
		return nil, errors.Internal("Failed to create review", err)
	}

	uc.recomputeRating(ctx, provider)

	return review, nil
}

// ListForProvider returns a provider's reviews, newest first, each joined
// with the reviewing customer.
func (uc *ReviewUseCase) ListForProvider(ctx context.Context, providerID string) ([]*ReviewResponse, error) {
	reviews, err := uc.reviewRepo.ListByProvider(ctx, providerID)
	if err != nil {
		logger.Error("ListForProvider Error: %v", err)
		return nil, errors.Internal("Failed to list reviews", err)
	}

	responses := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp := &ReviewResponse{Review: review}
		if customer, err := uc.userRepo.GetByID(ctx, review.CustomerID); err == nil {
			resp.Customer = customer
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// recomputeRating rebuilds the denormalized aggregate from the full review
// list. Failure is logged; the review itself already committed.
func (uc *ReviewUseCase) recomputeRating(ctx context.Context, provider *entity.ServiceProvider) {
	reviews, err := uc.reviewRepo.ListByProvider(ctx, provider.ID)
	if err != nil {
		logger.Warn("recomputeRating: failed to list reviews for provider %s: %v", provider.ID, err)
		return
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}

	provider.TotalReviews = len(reviews)
	if provider.TotalReviews > 0 {
		provider.Rating = float64(sum) / float64(provider.TotalReviews)
	} else {
		provider.Rating = 0
	}
	provider.UpdatedAt = time.Now()

	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		logger.Warn("recomputeRating: failed to update provider %s: %v", provider.ID, err)
	}
}
