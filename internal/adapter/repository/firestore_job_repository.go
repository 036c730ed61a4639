package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/pkg/errors"
)

type firestoreJobRepository struct {
	client *firestore.Client
}

func NewFirestoreJobRepository(client *firestore.Client) repository.JobRepository {
	return &firestoreJobRepository{
		client: client,
	}
}

func (r *firestoreJobRepository) Create(ctx context.Context, job *entity.Job) error {
	_, err := r.client.Collection("jobs").Doc(job.ID).Set(ctx, job)
	if err != nil {
		return errors.Internal("Failed to create job", err)
	}
	return nil
}

func (r *firestoreJobRepository) GetByID(ctx context.Context, id string) (*entity.Job, error) {
	doc, err := r.client.Collection("jobs").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Job", err)
		}
		return nil, errors.Internal("Failed to get job", err)
	}

	var job entity.Job
	if err := doc.DataTo(&job); err != nil {
		return nil, errors.Internal("Failed to parse job data", err)
	}

	return &job, nil
}

func (r *firestoreJobRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Job, error) {
	return r.list(ctx, "customerId", customerID)
}

func (r *firestoreJobRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Job, error) {
	return r.list(ctx, "providerId", providerID)
}

func (r *firestoreJobRepository) Update(ctx context.Context, job *entity.Job) error {
	_, err := r.client.Collection("jobs").Doc(job.ID).Set(ctx, job)
	if err != nil {
		return errors.Internal("Failed to update job", err)
	}
	return nil
}

func (r *firestoreJobRepository) list(ctx context.Context, field, value string) ([]*entity.Job, error) {
	iter := r.client.Collection("jobs").
		Where(field, "==", value).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var jobs []*entity.Job
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list jobs", err)
		}

		var job entity.Job
		if err := doc.DataTo(&job); err != nil {
			return nil, errors.Internal("Failed to parse job data", err)
		}
		jobs = append(jobs, &job)
	}

	return jobs, nil
}
