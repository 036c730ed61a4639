package entity

import "time"

type Review struct {
	ID         string    `json:"id" firestore:"id"`
	JobID      string    `json:"job_id" firestore:"jobId"`
	CustomerID string    `json:"customer_id" firestore:"customerId"`
	ProviderID string    `json:"provider_id" firestore:"providerId"`
	Rating     int       `json:"rating" firestore:"rating"` // 1-5 stars
	Comment    string    `json:"comment,omitempty" firestore:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
