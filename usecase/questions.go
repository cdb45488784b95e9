package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/yeetaryan/StackIt/dto"
	"github.com/yeetaryan/StackIt/middleware"
	"github.com/yeetaryan/StackIt/model"
	"github.com/yeetaryan/StackIt/repository"
	"github.com/yeetaryan/StackIt/utils"
)

// ErrInactiveUser is returned when a write operation is attempted by a
// user whose account is not active.
var ErrInactiveUser = errors.New("user account is inactive")

type QuestionsService struct {
	QuestionsRepo *repository.QuestionsRepo
	Notifications *NotificationsService
	CurrentUser   model.User

	// Tracks which questions a session has already been counted for, so
	// re-opening a question detail view does not inflate the view count.
	viewedLock sync.Mutex
	viewed     map[string]map[string]struct{}
}

func NewQuestionsService(repo *repository.QuestionsRepo, notifications *NotificationsService, currentUser model.User) *QuestionsService {
	return &QuestionsService{
		QuestionsRepo: repo,
		Notifications: notifications,
		CurrentUser:   currentUser,
		viewed:        make(map[string]map[string]struct{}),
	}
}

func (s *QuestionsService) checkWriter() error {
	if !s.CurrentUser.IsActive {
		return ErrInactiveUser
	}
	return nil
}

// CreateQuestion constructs a question with a fresh id, zero votes and
// views and no answers, and prepends it so listings stay newest-first.
// Returns the new question id.
func (s *QuestionsService) CreateQuestion(req dto.CreateQuestionRequest) (string, error) {
	if err := s.checkWriter(); err != nil {
		return "", err
	}

	question := &model.Question{
		ID:        utils.GenerateID(),
		Title:     req.Title,
		Body:      req.Body,
		Tags:      append([]string(nil), req.Tags...),
		Answers:   []model.Answer{},
		Author:    s.CurrentUser,
		CreatedAt: time.Now().UTC(),
	}
	s.QuestionsRepo.Insert(question)
	middleware.TrackForumOperation("create_question")
	return question.ID, nil
}

// AddAnswer appends a fresh answer to the question. When the question
// belongs to someone else, an "answer" notification is emitted for its
// author.
func (s *QuestionsService) AddAnswer(questionID, body string) (model.Answer, error) {
	if err := s.checkWriter(); err != nil {
		return model.Answer{}, err
	}

	answer := model.Answer{
		ID:        utils.GenerateID(),
		Body:      body,
		Author:    s.CurrentUser,
		CreatedAt: time.Now().UTC(),
	}
	question, err := s.QuestionsRepo.AddAnswer(questionID, answer)
	if err != nil {
		return model.Answer{}, err
	}
	middleware.TrackForumOperation("create_answer")

	if question.Author.ID != s.CurrentUser.ID {
		s.Notifications.Notify(model.NotificationTypeAnswer,
			fmt.Sprintf("%s answered your question %q", s.CurrentUser.Name, question.Title),
			question.ID)
	}
	return answer, nil
}

// VoteQuestion adds delta (+1 or -1 by convention) to the question's
// vote count. Upvotes on someone else's question emit a "vote"
// notification; downvotes and self-votes never do.
func (s *QuestionsService) VoteQuestion(questionID string, delta int) (model.Question, error) {
	if err := s.checkWriter(); err != nil {
		return model.Question{}, err
	}

	question, err := s.QuestionsRepo.VoteQuestion(questionID, delta)
	if err != nil {
		return model.Question{}, err
	}
	middleware.TrackForumOperation("vote_question")

	if delta > 0 && question.Author.ID != s.CurrentUser.ID {
		s.Notifications.Notify(model.NotificationTypeVote,
			fmt.Sprintf("%s upvoted your question %q", s.CurrentUser.Name, question.Title),
			question.ID)
	}
	return question, nil
}

// VoteAnswer is VoteQuestion scoped to one answer inside one question.
func (s *QuestionsService) VoteAnswer(questionID, answerID string, delta int) (model.Answer, error) {
	if err := s.checkWriter(); err != nil {
		return model.Answer{}, err
	}

	answer, question, err := s.QuestionsRepo.VoteAnswer(questionID, answerID, delta)
	if err != nil {
		return model.Answer{}, err
	}
	middleware.TrackForumOperation("vote_answer")

	if delta > 0 && answer.Author.ID != s.CurrentUser.ID {
		s.Notifications.Notify(model.NotificationTypeVote,
			fmt.Sprintf("%s upvoted your answer to %q", s.CurrentUser.Name, question.Title),
			question.ID)
	}
	return answer, nil
}

// AcceptAnswer marks the answer accepted. Only the question's author may
// accept, and at most one answer per question stays accepted.
func (s *QuestionsService) AcceptAnswer(questionID, answerID string) (model.Question, error) {
	if err := s.checkWriter(); err != nil {
		return model.Question{}, err
	}

	question, err := s.QuestionsRepo.FindByID(questionID)
	if err != nil {
		return model.Question{}, err
	}
	if question.Author.ID != s.CurrentUser.ID {
		return model.Question{}, repository.ErrNotAuthor
	}
	middleware.TrackForumOperation("accept_answer")
	return s.QuestionsRepo.AcceptAnswer(questionID, answerID)
}

// ViewQuestion returns the question and counts the view, at most once
// per session key per question.
func (s *QuestionsService) ViewQuestion(questionID, sessionKey string) (model.Question, error) {
	s.viewedLock.Lock()
	seen := s.viewed[sessionKey]
	if seen == nil {
		seen = make(map[string]struct{})
		s.viewed[sessionKey] = seen
	}
	_, counted := seen[questionID]
	if !counted {
		seen[questionID] = struct{}{}
	}
	s.viewedLock.Unlock()

	if !counted {
		if err := s.QuestionsRepo.IncrementViews(questionID); err != nil {
			return model.Question{}, err
		}
	}
	return s.QuestionsRepo.FindByID(questionID)
}

func (s *QuestionsService) GetQuestions() []model.Question {
	return s.QuestionsRepo.All()
}

func (s *QuestionsService) GetQuestionByID(id string) (model.Question, error) {
	return s.QuestionsRepo.FindByID(id)
}

func (s *QuestionsService) GetQuestionsByTag(tag string) []model.Question {
	return s.QuestionsRepo.FindByTag(tag)
}

func (s *QuestionsService) GetUserQuestions(userID string) []model.Question {
	return s.QuestionsRepo.FindByAuthor(userID)
}

// UserAnswer is an answer denormalized with its parent question, for
// profile views.
type UserAnswer struct {
	model.Answer
	QuestionID    string `json:"question_id"`
	QuestionTitle string `json:"question_title"`
}

// GetUserAnswers flattens every question's answer sequence and keeps the
// ones written by the given user.
func (s *QuestionsService) GetUserAnswers(userID string) []UserAnswer {
	var out []UserAnswer
	for _, q := range s.QuestionsRepo.All() {
		for _, a := range q.Answers {
			if a.Author.ID == userID {
				out = append(out, UserAnswer{
					Answer:        a,
					QuestionID:    q.ID,
					QuestionTitle: q.Title,
				})
			}
		}
	}
	return out
}

// SearchQuestions does a case-insensitive substring match over title,
// body and tags.
func (s *QuestionsService) SearchQuestions(query string) []model.Question {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var out []model.Question
	for _, q := range s.QuestionsRepo.All() {
		if strings.Contains(strings.ToLower(q.Title), query) ||
			strings.Contains(strings.ToLower(q.Body), query) {
			out = append(out, q)
			continue
		}
		for _, tag := range q.Tags {
			if strings.Contains(strings.ToLower(tag), query) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}
