package repository

import (
	"context"

	"huduma/internal/domain/entity"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.ServiceCategory) error
	GetByID(ctx context.Context, id string) (*entity.ServiceCategory, error)
	List(ctx context.Context) ([]*entity.ServiceCategory, error)
}
