package model

import "time"

type Question struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Body              string    `json:"body"`
	Tags              []string  `json:"tags"`
	Votes             int       `json:"votes"`
	Views             int       `json:"views"`
	Answers           []Answer  `json:"answers"`
	Author            User      `json:"author"`
	CreatedAt         time.Time `json:"created_at"`
	HasAcceptedAnswer bool      `json:"has_accepted_answer"`
}

type Answer struct {
	ID         string    `json:"id"`
	Body       string    `json:"body"`
	Votes      int       `json:"votes"`
	Author     User      `json:"author"`
	CreatedAt  time.Time `json:"created_at"`
	IsAccepted bool      `json:"is_accepted"`
}
