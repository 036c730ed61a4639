package entity

import "time"

type Favorite struct {
	ID         string    `json:"id" firestore:"id"`
	CustomerID string    `json:"customer_id" firestore:"customerId"`
	ProviderID string    `json:"provider_id" firestore:"providerId"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
