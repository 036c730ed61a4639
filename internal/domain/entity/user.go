package entity

import "time"

const (
	UserTypeCustomer = "customer"
	UserTypeProvider = "provider"
)

type User struct {
	ID              string    `json:"id" firestore:"id"`
	PhoneNumber     string    `json:"phone_number" firestore:"phoneNumber"`
	FirstName       string    `json:"first_name" firestore:"firstName"`
	LastName        string    `json:"last_name" firestore:"lastName"`
	Email           string    `json:"email,omitempty" firestore:"email,omitempty"`
	ProfileImageURL string    `json:"profile_image_url,omitempty" firestore:"profileImageUrl,omitempty"`
	UserType        string    `json:"user_type" firestore:"userType"` // "customer" or "provider"
	Location        string    `json:"location" firestore:"location"`
	IsVerified      bool      `json:"is_verified" firestore:"isVerified"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
