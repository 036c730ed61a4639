package entity

import "time"

type ServiceCategory struct {
	ID                 string    `json:"id" firestore:"id"`
	Name               string    `json:"name" firestore:"name"`
	NameSwahili        string    `json:"name_swahili" firestore:"nameSwahili"`
	Icon               string    `json:"icon" firestore:"icon"`
	Description        string    `json:"description,omitempty" firestore:"description,omitempty"`
	DescriptionSwahili string    `json:"description_swahili,omitempty" firestore:"descriptionSwahili,omitempty"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
}
