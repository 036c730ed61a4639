package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/internal/infrastructure/ratelimit"
	"huduma/pkg/errors"
	"huduma/pkg/logger"
)

type JobUseCase struct {
	jobRepo      repository.JobRepository
	providerRepo repository.ProviderRepository
	categoryRepo repository.CategoryRepository
	userRepo     repository.UserRepository
	notifier     *JobNotifier
	rateLimiter  *ratelimit.RateLimiter
}

func NewJobUseCase(
	jobRepo repository.JobRepository,
	providerRepo repository.ProviderRepository,
	categoryRepo repository.CategoryRepository,
	userRepo repository.UserRepository,
	notifier *JobNotifier,
	rateLimiter *ratelimit.RateLimiter,
) *JobUseCase {
	return &JobUseCase{
		jobRepo:      jobRepo,
		providerRepo: providerRepo,
		categoryRepo: categoryRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		rateLimiter:  rateLimiter,
	}
}

type CreateJobInput struct {
	ProviderID    string     `json:"provider_id" validate:"omitempty"`
	CategoryID    string     `json:"category_id" validate:"required"`
	Title         string     `json:"title" validate:"required,max=120"`
	Description   string     `json:"description" validate:"required,max=4000"`
	Location      string     `json:"location" validate:"required"`
	PreferredDate *time.Time `json:"preferred_date" validate:"omitempty"`
	PreferredTime string     `json:"preferred_time" validate:"omitempty"`
	BudgetMin     float64    `json:"budget_min" validate:"omitempty,gte=0"`
	BudgetMax     float64    `json:"budget_max" validate:"omitempty,gte=0"`
}

type UpdateJobInput struct {
	Status     string  `json:"status" validate:"omitempty,oneof=pending accepted in_progress completed cancelled"`
	ProviderID string  `json:"provider_id" validate:"omitempty"`
	FinalPrice float64 `json:"final_price" validate:"omitempty,gte=0"`
}

// JobResponse is a job joined with its resolved parties and category.
type JobResponse struct {
	*entity.Job
	Customer *entity.User            `json:"customer,omitempty"`
	Provider *entity.User            `json:"provider,omitempty"`
	Category *entity.ServiceCategory `json:"category,omitempty"`
}

// CreateJob persists a new request and, when a provider was targeted,
// notifies them. Input.ProviderID is a directory profile id; the job stores
// the provider's user id so the pair can chat and receive pushes directly.
func (uc *JobUseCase) CreateJob(ctx context.Context, customerID string, input CreateJobInput) (*entity.Job, error) {
	if allowed, wait := uc.rateLimiter.Allow(customerID, "create_job"); !allowed {
		logger.Warn("CreateJob rate limited for user %s, retry in %v", customerID, wait)
		return nil, errors.TooManyRequests("Too many job requests, try again later")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Unknown service category", err)
	}

	if input.BudgetMax > 0 && input.BudgetMin > input.BudgetMax {
		return nil, errors.BadRequest("Minimum budget cannot exceed maximum budget", nil)
	}

	var providerUserID string
	if input.ProviderID != "" {
		provider, err := uc.providerRepo.GetByID(ctx, input.ProviderID)
		if err != nil {
			return nil, errors.BadRequest("Unknown service provider", err)
		}
		if !provider.IsActive {
			return nil, errors.BadRequest("This provider is not accepting jobs", nil)
		}
		if provider.UserID == customerID {
			return nil, errors.BadRequest("Cannot request a job from yourself", nil)
		}
		providerUserID = provider.UserID
	}

	now := time.Now()
	job := &entity.Job{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		ProviderID:    providerUserID,
		CategoryID:    input.CategoryID,
		Title:         input.Title,
		Description:   input.Description,
		Location:      input.Location,
		PreferredDate: input.PreferredDate,
		PreferredTime: input.PreferredTime,
		BudgetMin:     input.BudgetMin,
		BudgetMax:     input.BudgetMax,
		Status:        entity.JobStatusPending,
		PaymentStatus: entity.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.jobRepo.Create(ctx, job); err != nil {
		logger.Error("CreateJob Error: %v", err)
		return nil, errors.Internal("Failed to create job", err)
	}

	uc.notifier.JobCreated(job)

	return job, nil
}

func (uc *JobUseCase) GetJob(ctx context.Context, userID, jobID string) (*JobResponse, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !job.IsParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this job", nil)
	}

	return uc.toResponse(ctx, job), nil
}

// UpdateJob applies a partial update by either participant and notifies both
// sides afterwards. Zero-valued fields in the input are left untouched.
func (uc *JobUseCase) UpdateJob(ctx context.Context, userID, jobID string, input UpdateJobInput) (*entity.Job, error) {
	job, err := uc.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}

	if !job.IsParticipant(userID) {
		return nil, errors.Forbidden("You are not part of this job", nil)
	}

	if input.Status != "" {
		job.Status = input.Status
	}
	if input.FinalPrice > 0 {
		job.FinalPrice = input.FinalPrice
	}
	if input.ProviderID != "" {
		provider, err := uc.providerRepo.GetByID(ctx, input.ProviderID)
		if err != nil {
			return nil, errors.BadRequest("Unknown service provider", err)
		}
		job.ProviderID = provider.UserID
	}
	job.UpdatedAt = time.Now()

	if err := uc.jobRepo.Update(ctx, job); err != nil {
		logger.Error("UpdateJob Error: %v", err)
		return nil, errors.Internal("Failed to update job", err)
	}

	if job.Status == entity.JobStatusCompleted {
		uc.recordCompletion(ctx, job)
	}

	uc.notifier.JobUpdated(job)

	return job, nil
}

// ListForUser returns the jobs where the user is the customer or, for
// provider accounts, the targeted provider.
func (uc *JobUseCase) ListForUser(ctx context.Context, userID string) ([]*JobResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var jobs []*entity.Job
	if user.UserType == entity.UserTypeProvider {
		jobs, err = uc.jobRepo.ListByProvider(ctx, userID)
	} else {
		jobs, err = uc.jobRepo.ListByCustomer(ctx, userID)
	}
	if err != nil {
		logger.Error("ListForUser Error: %v", err)
		return nil, errors.Internal("Failed to list jobs", err)
	}

	responses := make([]*JobResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, uc.toResponse(ctx, job))
	}
	return responses, nil
}

func (uc *JobUseCase) toResponse(ctx context.Context, job *entity.Job) *JobResponse {
	resp := &JobResponse{Job: job}

	if customer, err := uc.userRepo.GetByID(ctx, job.CustomerID); err == nil {
		resp.Customer = customer
	}
	if job.ProviderID != "" {
		if provider, err := uc.userRepo.GetByID(ctx, job.ProviderID); err == nil {
			resp.Provider = provider
		}
	}
	if category, err := uc.categoryRepo.GetByID(ctx, job.CategoryID); err == nil {
		resp.Category = category
	}
	return resp
}

// recordCompletion bumps the provider's completed job counter. Failure here
// never fails the job update itself.
func (uc *JobUseCase) recordCompletion(ctx context.Context, job *entity.Job) {
	if job.ProviderID == "" {
		return
	}

	provider, err := uc.providerRepo.GetByUserID(ctx, job.ProviderID)
	if err != nil {
		logger.Warn("recordCompletion: no provider profile for user %s: %v", job.ProviderID, err)
		return
	}

	provider.CompletedJobs++
	provider.UpdatedAt = time.Now()
	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		logger.Warn("recordCompletion: failed to update provider %s: %v", provider.ID, err)
	}
}
