package model

type SiteStats struct {
	TotalQuestions      int    `json:"total_questions"`
	TotalAnswers        int    `json:"total_answers"`
	TotalUsers          int    `json:"total_users"`
	TotalVotes          int    `json:"total_votes"`
	SolvedQuestions     int    `json:"solved_questions"`
	MostUsedTag         string `json:"most_used_tag"`
	MostUpvotedQuestion string `json:"most_upvoted_question"`
}
