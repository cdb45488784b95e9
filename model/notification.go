package model

import "time"

const (
	NotificationTypeAnswer = "answer"
	NotificationTypeVote   = "vote"
)

type Notification struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"` // "answer" or "vote"
	Message    string    `json:"message"`
	QuestionID string    `json:"question_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	Read       bool      `json:"read"`
}
