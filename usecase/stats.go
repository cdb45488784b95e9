package usecase

import (
	"sort"

	"github.com/yeetaryan/StackIt/model"
	"github.com/yeetaryan/StackIt/repository"
)

// Fallbacks shown when the collection is empty or nothing qualifies.
const (
	DefaultMostUsedTag = "javascript"
	DefaultTopQuestion = "No questions yet"
)

type StatsService struct {
	QuestionsRepo *repository.QuestionsRepo
}

// GetAllTags recomputes the tag histogram from the live question
// collection, sorted by count descending. Ties keep first-seen order so
// the result is deterministic.
func (s *StatsService) GetAllTags() []model.TagCount {
	counts := make(map[string]int)
	var order []string
	for _, q := range s.QuestionsRepo.All() {
		for _, tag := range q.Tags {
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	tags := make([]model.TagCount, 0, len(order))
	for _, name := range order {
		tags = append(tags, model.TagCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(tags, func(i, j int) bool {
		return tags[i].Count > tags[j].Count
	})
	return tags
}

// GetStats aggregates site-wide totals from the question collection.
func (s *StatsService) GetStats() model.SiteStats {
	questions := s.QuestionsRepo.All()

	stats := model.SiteStats{
		TotalQuestions:      len(questions),
		MostUsedTag:         DefaultMostUsedTag,
		MostUpvotedQuestion: DefaultTopQuestion,
	}

	users := make(map[string]struct{})
	topVotes := 0
	for _, q := range questions {
		users[q.Author.ID] = struct{}{}
		stats.TotalAnswers += len(q.Answers)
		stats.TotalVotes += q.Votes
		if q.HasAcceptedAnswer {
			stats.SolvedQuestions++
		}
		for _, a := range q.Answers {
			users[a.Author.ID] = struct{}{}
			stats.TotalVotes += a.Votes
		}
		// Strictly greater, so ties keep the first-encountered question
		// and zero-vote questions never win.
		if q.Votes > topVotes {
			topVotes = q.Votes
			stats.MostUpvotedQuestion = q.Title
		}
	}
	stats.TotalUsers = len(users)

	if tags := s.GetAllTags(); len(tags) > 0 {
		stats.MostUsedTag = tags[0].Name
	}
	return stats
}
