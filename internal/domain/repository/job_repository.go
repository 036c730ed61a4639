package repository

import (
	"context"

	"huduma/internal/domain/entity"
)

type JobRepository interface {
	Create(ctx context.Context, job *entity.Job) error
	GetByID(ctx context.Context, id string) (*entity.Job, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Job, error)
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Job, error)
	Update(ctx context.Context, job *entity.Job) error
}
