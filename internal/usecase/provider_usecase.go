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

type ProviderUseCase struct {
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

func NewProviderUseCase(
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
) *ProviderUseCase {
	return &ProviderUseCase{
		providerRepo: providerRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

type CreateProviderInput struct {
	CategoryID      string  `json:"category_id" validate:"required"`
	YearsExperience int     `json:"years_experience" validate:"omitempty,gte=0"`
	PriceRangeMin   float64 `json:"price_range_min" validate:"omitempty,gte=0"`
	PriceRangeMax   float64 `json:"price_range_max" validate:"omitempty,gte=0"`
	Bio             string  `json:"bio" validate:"omitempty,max=2000"`
	BioSwahili      string  `json:"bio_swahili" validate:"omitempty,max=2000"`
}

type UpdateProviderInput struct {
	CategoryID      string   `json:"category_id" validate:"omitempty"`
	YearsExperience int      `json:"years_experience" validate:"omitempty,gte=0"`
	PriceRangeMin   float64  `json:"price_range_min" validate:"omitempty,gte=0"`
	PriceRangeMax   float64  `json:"price_range_max" validate:"omitempty,gte=0"`
	Bio             string   `json:"bio" validate:"omitempty,max=2000"`
	BioSwahili      string   `json:"bio_swahili" validate:"omitempty,max=2000"`
	IsActive        *bool    `json:"is_active" validate:"omitempty"`
}

// ProviderResponse is a directory profile joined with its user and category.
type ProviderResponse struct {
	*entity.ServiceProvider
	User     *entity.User            `json:"user,omitempty"`
	Category *entity.ServiceCategory `json:"category,omitempty"`
}

// CreateProfile publishes a directory profile for a provider-type user.
// One profile per user.
func (uc *ProviderUseCase) CreateProfile(ctx context.Context, userID string, input CreateProviderInput) (*entity.ServiceProvider, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.UserType != entity.UserTypeProvider {
		return nil, errors.Forbidden("Only provider accounts can publish a profile", nil)
	}

	if existing, err := uc.providerRepo.GetByUserID(ctx, userID); err == nil && existing != nil {
		return nil, errors.Conflict("Provider profile already exists")
	}

	if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
		return nil, errors.BadRequest("Unknown service category", err)
	}

	if input.PriceRangeMax > 0 && input.PriceRangeMin > input.PriceRangeMax {
		return nil, errors.BadRequest("Minimum price cannot exceed maximum price", nil)
	}

	now := time.Now()
	provider := &entity.ServiceProvider{
		ID:              uuid.New().String(),
		UserID:          userID,
		CategoryID:      input.CategoryID,
		YearsExperience: input.YearsExperience,
		PriceRangeMin:   input.PriceRangeMin,
		PriceRangeMax:   input.PriceRangeMax,
		Bio:             input.Bio,
		BioSwahili:      input.BioSwahili,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.providerRepo.Create(ctx, provider); err != nil {
		logger.Error("CreateProfile Error: %v", err)
		return nil, errors.Internal("Failed to create provider profile", err)
	}

	return provider, nil
}

func (uc *ProviderUseCase) GetByID(ctx context.Context, id string) (*ProviderResponse, error) {
	provider, err := uc.providerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, provider), nil
}

func (uc *ProviderUseCase) GetByUserID(ctx context.Context, userID string) (*ProviderResponse, error) {
	provider, err := uc.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, provider), nil
}

// List returns active directory profiles matching the filter, joined with
// user and category details.
func (uc *ProviderUseCase) List(ctx context.Context, filter repository.ProviderFilter, limit, offset int) ([]*ProviderResponse, int64, error) {
	providers, total, err := uc.providerRepo.List(ctx, filter, limit, offset)
	if err != nil {
		logger.Error("List Providers Error: %v", err)
		return nil, 0, errors.Internal("Failed to list providers", err)
	}

	responses := make([]*ProviderResponse, 0, len(providers))
	for _, provider := range providers {
		responses = append(responses, uc.toResponse(ctx, provider))
	}
	return responses, total, nil
}

func (uc *ProviderUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProviderInput) (*entity.ServiceProvider, error) {
	provider, err := uc.providerRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.CategoryID != "" {
		if _, err := uc.categoryRepo.GetByID(ctx, input.CategoryID); err != nil {
			return nil, errors.BadRequest("Unknown service category", err)
		}
		provider.CategoryID = input.CategoryID
	}
	if input.YearsExperience > 0 {
		provider.YearsExperience = input.YearsExperience
	}
	if input.PriceRangeMin > 0 {
		provider.PriceRangeMin = input.PriceRangeMin
	}
	if input.PriceRangeMax > 0 {
		provider.PriceRangeMax = input.PriceRangeMax
	}
	if input.Bio != "" {
		provider.Bio = input.Bio
	}
	if input.BioSwahili != "" {
		provider.BioSwahili = input.BioSwahili
	}
	if input.IsActive != nil {
		provider.IsActive = *input.IsActive
	}
	provider.UpdatedAt = time.Now()

	if err := uc.providerRepo.Update(ctx, provider); err != nil {
		logger.Error("UpdateProfile Error: %v", err)
		return nil, errors.Internal("Failed to update provider profile", err)
	}

	return provider, nil
}

func (uc *ProviderUseCase) toResponse(ctx context.Context, provider *entity.ServiceProvider) *ProviderResponse {
	resp := &ProviderResponse{ServiceProvider: provider}

	if user, err := uc.userRepo.GetByID(ctx, provider.UserID); err == nil {
		resp.User = user
	}
	if category, err := uc.categoryRepo.GetByID(ctx, provider.CategoryID); err == nil {
		resp.Category = category
	}
	return resp
}
