package dto

type CreateAnswerRequest struct {
	Body string `json:"body" binding:"required"`
}

// VoteRequest carries the vote direction, +1 or -1 by convention. The
// value is not range-checked; see the repeat-voting note in DESIGN.md.
type VoteRequest struct {
	Delta int `json:"delta" binding:"required"`
}
