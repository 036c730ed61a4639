package repository

import (
	"context"

	"huduma/internal/domain/entity"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.Favorite) error
	GetByCustomerAndProvider(ctx context.Context, customerID, providerID string) (*entity.Favorite, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Favorite, error)
	Delete(ctx context.Context, customerID, providerID string) error
}
