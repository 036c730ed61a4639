package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"huduma/internal/domain/entity"
	"huduma/internal/domain/repository"
	"huduma/pkg/errors"
)

type firestoreFavoriteRepository struct {
	client *firestore.Client
}

func NewFirestoreFavoriteRepository(client *firestore.Client) repository.FavoriteRepository {
	return &firestoreFavoriteRepository{
		client: client,
	}
}

func (r *firestoreFavoriteRepository) Create(ctx context.Context, favorite *entity.Favorite) error {
	_, err := r.client.Collection("favorites").Doc(favorite.ID).Set(ctx, favorite)
	if err != nil {
		return errors.Internal("Failed to create favorite", err)
	}
	return nil
}

func (r *firestoreFavoriteRepository) GetByCustomerAndProvider(ctx context.Context, customerID, providerID string) (*entity.Favorite, error) {
	iter := r.client.Collection("favorites").
		Where("customerId", "==", customerID).
		Where("providerId", "==", providerID).
		Limit(1).
		Documents(ctx)

	doc, err := iter.Next()
	if err != nil {
		return nil, errors.NotFound("Favorite", err)
	}

	var favorite entity.Favorite
	if err := doc.DataTo(&favorite); err != nil {
		return nil, errors.Internal("Failed to parse favorite data", err)
	}

	return &favorite, nil
}

func (r *firestoreFavoriteRepository) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Favorite, error) {
	iter := r.client.Collection("favorites").
		Where("customerId", "==", customerID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)

	var favorites []*entity.Favorite
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to list favorites", err)
		}

		var favorite entity.Favorite
		if err := doc.DataTo(&favorite); err != nil {
			return nil, errors.Internal("Failed to parse favorite data", err)
		}
		favorites = append(favorites, &favorite)
	}

	return favorites, nil
}

func (r *firestoreFavoriteRepository) Delete(ctx context.Context, customerID, providerID string) error {
	iter := r.client.Collection("favorites").
		Where("customerId", "==", customerID).
		Where("providerId", "==", providerID).
		Documents(ctx)

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to delete favorite", err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return errors.Internal("Failed to delete favorite", err)
		}
	}

	return nil
}
