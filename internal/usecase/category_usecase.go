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

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryUseCase(categoryRepo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categoryRepo: categoryRepo}
}

func (uc *CategoryUseCase) List(ctx context.Context) ([]*entity.ServiceCategory, error) {
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("List Categories Error: %v", err)
		return nil, errors.Internal("Failed to list categories", err)
	}
	return categories, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*entity.ServiceCategory, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

// Seed installs the default category set on first boot. An already seeded
// store is left untouched.
func (uc *CategoryUseCase) Seed(ctx context.Context) error {
	existing, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []struct {
		name        string
		nameSwahili string
		icon        string
	}{
		{"Plumbing", "Mifereji ya Maji", "wrench"},
		{"Electrical", "Umeme", "zap"},
		{"Cleaning", "Usafi", "sparkles"},
		{"Carpentry", "Useremala", "hammer"},
		{"Painting", "Upakaji Rangi", "paintbrush"},
		{"Gardening", "Bustani", "leaf"},
		{"Moving", "Uhamishaji", "truck"},
		{"Appliance Repair", "Ukarabati wa Vifaa", "settings"},
	}

	for _, d := range defaults {
		category := &entity.ServiceCategory{
			ID:          uuid.New().String(),
			Name:        d.name,
			NameSwahili: d.nameSwahili,
			Icon:        d.icon,
			CreatedAt:   time.Now(),
		}
		if err := uc.categoryRepo.Create(ctx, category); err != nil {
			logger.Error("Seed Categories Error: %v", err)
			return errors.Internal("Failed to seed categories", err)
		}
	}

	logger.Info("Seeded %d default service categories", len(defaults))
	return nil
}
