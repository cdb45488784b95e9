package repository

import (
	"sync"

	"github.com/yeetaryan/StackIt/model"
)

// QuestionsRepo holds the canonical in-memory question collection.
// All reads return copies; the backing slice is never handed out.
type QuestionsRepo struct {
	mu        sync.RWMutex
	questions []*model.Question
}

func GetQuestionsRepo(seed []*model.Question) *QuestionsRepo {
	return &QuestionsRepo{questions: seed}
}

func cloneQuestion(q *model.Question) model.Question {
	out := *q
	out.Tags = append([]string(nil), q.Tags...)
	out.Answers = append([]model.Answer(nil), q.Answers...)
	return out
}

// Insert prepends a question so the default ordering stays newest-first.
func (r *QuestionsRepo) Insert(q *model.Question) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.questions = append([]*model.Question{q}, r.questions...)
}

// All returns a snapshot of every question in insertion order.
func (r *QuestionsRepo) All() []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Question, 0, len(r.questions))
	for _, q := range r.questions {
		out = append(out, cloneQuestion(q))
	}
	return out
}

func (r *QuestionsRepo) FindByID(id string) (model.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, q := range r.questions {
		if q.ID == id {
			return cloneQuestion(q), nil
		}
	}
	return model.Question{}, ErrNotFound
}

func (r *QuestionsRepo) FindByTag(tag string) []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Question
	for _, q := range r.questions {
		for _, t := range q.Tags {
			if t == tag {
				out = append(out, cloneQuestion(q))
				break
			}
		}
	}
	return out
}

func (r *QuestionsRepo) FindByAuthor(userID string) []model.Question {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []model.Question
	for _, q := range r.questions {
		if q.Author.ID == userID {
			out = append(out, cloneQuestion(q))
		}
	}
	return out
}

// AddAnswer appends an answer to the question's answer sequence and
// returns the updated question.
func (r *QuestionsRepo) AddAnswer(questionID string, answer model.Answer) (model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.questions {
		if q.ID == questionID {
			q.Answers = append(q.Answers, answer)
			return cloneQuestion(q), nil
		}
	}
	return model.Question{}, ErrNotFound
}

// VoteQuestion adds delta to the question's vote count. Vote counts have
// no floor; repeat voting by the same user is not tracked.
func (r *QuestionsRepo) VoteQuestion(questionID string, delta int) (model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.questions {
		if q.ID == questionID {
			q.Votes += delta
			return cloneQuestion(q), nil
		}
	}
	return model.Question{}, ErrNotFound
}

// VoteAnswer adds delta to one answer's vote count and returns the updated
// answer alongside its parent question.
func (r *QuestionsRepo) VoteAnswer(questionID, answerID string, delta int) (model.Answer, model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.questions {
		if q.ID != questionID {
			continue
		}
		for i := range q.Answers {
			if q.Answers[i].ID == answerID {
				q.Answers[i].Votes += delta
				return q.Answers[i], cloneQuestion(q), nil
			}
		}
		return model.Answer{}, model.Question{}, ErrNotFound
	}
	return model.Answer{}, model.Question{}, ErrNotFound
}

// AcceptAnswer marks one answer accepted and unmarks its siblings, so at
// most one answer per question is ever accepted.
func (r *QuestionsRepo) AcceptAnswer(questionID, answerID string) (model.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.questions {
		if q.ID != questionID {
			continue
		}
		found := false
		for i := range q.Answers {
			if q.Answers[i].ID == answerID {
				found = true
				break
			}
		}
		if !found {
			return model.Question{}, ErrNotFound
		}
		for i := range q.Answers {
			q.Answers[i].IsAccepted = q.Answers[i].ID == answerID
		}
		q.HasAcceptedAnswer = true
		return cloneQuestion(q), nil
	}
	return model.Question{}, ErrNotFound
}

// IncrementViews bumps the view count by one. The "already viewed this
// session" guard lives in the usecase layer, not here.
func (r *QuestionsRepo) IncrementViews(questionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.questions {
		if q.ID == questionID {
			q.Views++
			return nil
		}
	}
	return ErrNotFound
}
