package model

import "time"

type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Avatar     string    `json:"avatar,omitempty"`
	Email      string    `json:"email,omitempty"`
	Reputation int       `json:"reputation"`
	JoinedDate time.Time `json:"joined_date"`
	IsActive   bool      `json:"is_active"`
}
