package entity

import "time"

const (
	JobStatusPending    = "pending"
	JobStatusAccepted   = "accepted"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Job binds one customer and (once matched) one provider. The pair doubles as
// the participant set of the job's chat channel.
type Job struct {
	ID            string     `json:"id" firestore:"id"`
	CustomerID    string     `json:"customer_id" firestore:"customerId"`
	ProviderID    string     `json:"provider_id,omitempty" firestore:"providerId,omitempty"`
	CategoryID    string     `json:"category_id" firestore:"categoryId"`
	Title         string     `json:"title" firestore:"title"`
	Description   string     `json:"description" firestore:"description"`
	Location      string     `json:"location" firestore:"location"`
	PreferredDate *time.Time `json:"preferred_date,omitempty" firestore:"preferredDate,omitempty"`
	PreferredTime string     `json:"preferred_time,omitempty" firestore:"preferredTime,omitempty"`
	BudgetMin     float64    `json:"budget_min,omitempty" firestore:"budgetMin,omitempty"`
	BudgetMax     float64    `json:"budget_max,omitempty" firestore:"budgetMax,omitempty"`
	FinalPrice    float64    `json:"final_price,omitempty" firestore:"finalPrice,omitempty"`
	Status        string     `json:"status" firestore:"status"`
	PaymentStatus string     `json:"payment_status" firestore:"paymentStatus"`
	CreatedAt     time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time  `json:"updated_at" firestore:"updatedAt"`
}

// Participants returns the non-empty side(s) of the job's channel.
func (j *Job) Participants() []string {
	ids := make([]string, 0, 2)
	if j.CustomerID != "" {
		ids = append(ids, j.CustomerID)
	}
	if j.ProviderID != "" {
		ids = append(ids, j.ProviderID)
	}
	return ids
}

// IsParticipant reports whether userID is the job's customer or provider.
func (j *Job) IsParticipant(userID string) bool {
	return userID != "" && (userID == j.CustomerID || userID == j.ProviderID)
}
