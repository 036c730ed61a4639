package repository

import (
	"context"

	"huduma/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByJobID(ctx context.Context, jobID string) (*entity.Review, error)
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Review, error)
}
