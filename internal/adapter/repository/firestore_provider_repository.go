package repository

import (
	"context"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/pkg/errors"
)

type firestoreProviderRepository struct {
	client *firestore.Client
}

func NewFirestoreProviderRepository(client *firestore.Client) repository.ProviderRepository {
	return &firestoreProviderRepository{
		client: client,
	}
}

func (r *firestoreProviderRepository) Create(ctx context.Context, provider *entity.ServiceProvider) error {
	_, err := r.client.Collection("providers").Doc(provider.ID).Set(ctx, provider)
	if err != nil {
		return errors.Internal("Failed to create provider", err)
	}
	return nil
}

func (r *firestoreProviderRepository) GetByID(ctx context.Context, id string) (*entity.ServiceProvider, error) {
	doc, err := r.client.Collection("providers").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Provider", err)
		}
		return nil, errors.Internal("Failed to get provider", err)
	}

	var provider entity.ServiceProvider
	if err := doc.DataTo(&provider); err != nil {
		return nil, errors.Internal("Failed to parse provider data", err)
	}

	return &provider, nil
}

func (r *firestoreProviderRepository) GetByUserID(ctx context.Context, userID string) (*entity.ServiceProvider, error) {
	iter := r.client.Collection("providers").Where("userId", "==", userID).Limit(1).Documents(ctx)
	doc, err := iter.Next()
	if err != nil {
		return nil, errors.NotFound("Provider", err)
	}

	var provider entity.ServiceProvider
	if err := doc.DataTo(&provider); err != nil {
		return nil, errors.Internal("Failed to parse provider data", err)
	}

	return &provider, nil
}

// List returns active providers matching the filter. Location matching is a
// case-insensitive substring check against the provider user's location, so
// it runs in memory after the indexed part of the query.
func (r *firestoreProviderRepository) List(ctx context.Context, filter repository.ProviderFilter, limit, offset int) ([]*entity.ServiceProvider, int64, error) {
	query := r.client.Collection("providers").Where("isActive", "==", true)
	if filter.CategoryID != "" {
		query = query.Where("categoryId", "==", filter.CategoryID)
	}

	iter := query.OrderBy("rating", firestore.Desc).Documents(ctx)

	var matched []*entity.ServiceProvider
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, 0, errors.Internal("Failed to list providers", err)
		}

		var provider entity.ServiceProvider
		if err := doc.DataTo(&provider); err != nil {
			return nil, 0, errors.Internal("Failed to parse provider data", err)
		}

		if filter.Location != "" && !r.userLocationMatches(ctx, provider.UserID, filter.Location) {
			continue
		}

		matched = append(matched, &provider)
	}

	total := int64(len(matched))

	if offset > 0 {
		if offset >= len(matched) {
			return []*entity.ServiceProvider{}, total, nil
		}
		matched = matched[offset:]
	}
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	return matched, total, nil
}

func (r *firestoreProviderRepository) Update(ctx context.Context, provider *entity.ServiceProvider) error {
	_, err := r.client.Collection("providers").Doc(provider.ID).Set(ctx, provider)
	if err != nil {
		return errors.Internal("Failed to update provider", err)
	}
	return nil
}

func (r *firestoreProviderRepository) userLocationMatches(ctx context.Context, userID, location string) bool {
	doc, err := r.client.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		return false
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return false
	}

	return strings.Contains(strings.ToLower(user.Location), strings.ToLower(location))
}
