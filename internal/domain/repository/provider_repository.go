package repository

import (
	"context"

	"huduma/internal/domain/entity"
)

// ProviderFilter narrows the provider directory listing. Zero values mean
// "no constraint"; Location matches as a case-insensitive substring of the
// provider user's location.
type ProviderFilter struct {
	CategoryID string
	Location   string
}

type ProviderRepository interface {
	Create(ctx context.Context, provider *entity.ServiceProvider) error
	GetByID(ctx context.Context, id string) (*entity.ServiceProvider, error)
	GetByUserID(ctx context.Context, userID string) (*entity.ServiceProvider, error)
	List(ctx context.Context, filter ProviderFilter, limit, offset int) ([]*entity.ServiceProvider, int64, error)
	Update(ctx context.Context, provider *entity.ServiceProvider) error
}
