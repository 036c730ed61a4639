package entity

import "time"

// ServiceProvider is the directory profile a provider-type user publishes.
// Rating and TotalReviews are denormalized aggregates recomputed on review creation.
type ServiceProvider struct {
	ID              string    `json:"id" firestore:"id"`
	UserID          string    `json:"user_id" firestore:"userId"`
	CategoryID      string    `json:"category_id" firestore:"categoryId"`
	YearsExperience int       `json:"years_experience" firestore:"yearsExperience"`
	PriceRangeMin   float64   `json:"price_range_min" firestore:"priceRangeMin"`
	PriceRangeMax   float64   `json:"price_range_max" firestore:"priceRangeMax"`
	Bio             string    `json:"bio,omitempty" firestore:"bio,omitempty"`
	BioSwahili      string    `json:"bio_swahili,omitempty" firestore:"bioSwahili,omitempty"`
	IsActive        bool      `json:"is_active" firestore:"isActive"`
	Rating          float64   `json:"rating" firestore:"rating"`
	TotalReviews    int       `json:"total_reviews" firestore:"totalReviews"`
	CompletedJobs   int       `json:"completed_jobs" firestore:"completedJobs"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
