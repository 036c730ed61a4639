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

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	providerRepo repository.ProviderRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	providerRepo repository.ProviderRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		providerRepo: providerRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
	}
}

// FavoriteResponse is a favorite joined with the saved provider's profile.
type FavoriteResponse struct {
	*entity.Favorite
	Provider *ProviderResponse `json:"provider,omitempty"`
}

// Add saves a provider to the customer's list. Saving an already saved
// provider returns the existing entry unchanged.
func (uc *FavoriteUseCase) Add(ctx context.Context, customerID, providerID string) (*entity.Favorite, error) {
	if _, err := uc.providerRepo.GetByID(ctx, providerID); err != nil {
		return nil, err
	}

	if existing, err := uc.favoriteRepo.GetByCustomerAndProvider(ctx, customerID, providerID); err == nil && existing != nil {
		return existing, nil
	}

	favorite := &entity.Favorite{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ProviderID: providerID,
		CreatedAt:  time.Now(),
	}

	if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
		logger.Error("Add Favorite Error: %v", err)
		return nil, errors.Internal("Failed to save favorite", err)
	}

	return favorite, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, customerID, providerID string) error {
	if err := uc.favoriteRepo.Delete(ctx, customerID, providerID); err != nil {
		logger.Error("Remove Favorite Error: %v", err)
		return errors.Internal("Failed to remove favorite", err)
	}
	return nil
}

// ListForCustomer returns the customer's saved providers with full profiles.
func (uc *FavoriteUseCase) ListForCustomer(ctx context.Context, customerID string) ([]*FavoriteResponse, error) {
	favorites, err := uc.favoriteRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		logger.Error("ListForCustomer Favorites Error: %v", err)
		return nil, errors.Internal("Failed to list favorites", err)
	}

	responses := make([]*FavoriteResponse, 0, len(favorites))
	for _, favorite := range favorites {
		resp := &FavoriteResponse{Favorite: favorite}

		if provider, err := uc.providerRepo.GetByID(ctx, favorite.ProviderID); err == nil {
			pr := &ProviderResponse{ServiceProvider: provider}
			if user, err := uc.userRepo.GetByID(ctx, provider.UserID); err == nil {
				pr.User = user
			}
			if category, err := uc.categoryRepo.GetByID(ctx, provider.CategoryID); err == nil {
				pr.Category = category
			}
			resp.Provider = pr
		}

		responses = append(responses, resp)
	}
	return responses, nil
}
