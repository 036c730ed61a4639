package entity

import "time"

const (
	MessageTypeText  = "text"
	MessageTypeImage = "image"
	MessageTypeFile  = "file"
)

// Message is immutable once created except for IsRead, which only the
// receiver flips and only false -> true.
type Message struct {
	ID            string    `json:"id" firestore:"id"`
	JobID         string    `json:"job_id" firestore:"jobId"`
	SenderID      string    `json:"sender_id" firestore:"senderId"`
	ReceiverID    string    `json:"receiver_id" firestore:"receiverId"`
	Content       string    `json:"content" firestore:"content"`
	Type          string    `json:"type" firestore:"type"` // "text", "image", "file"
	AttachmentURL string    `json:"attachment_url,omitempty" firestore:"attachmentUrl,omitempty"`
	IsRead        bool      `json:"is_read" firestore:"isRead"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
}
