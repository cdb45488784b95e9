package usecase

import (
	"errors"
	"testing"

	"github.com/yeetaryan/StackIt/dto"
	"github.com/yeetaryan/StackIt/model"
	"github.com/yeetaryan/StackIt/repository"
)

var (
	testU1 = model.User{ID: "u1", Name: "Author One", IsActive: true}
	testU2 = model.User{ID: "u2", Name: "Voter Two", IsActive: true}
)

func newTestService(currentUser model.User, seed ...*model.Question) (*QuestionsService, *NotificationsService) {
	notifications := &NotificationsService{Repo: repository.GetNotificationsRepo(nil)}
	service := NewQuestionsService(repository.GetQuestionsRepo(seed), notifications, currentUser)
	return service, notifications
}

func seedQuestion(id string, author model.User) *model.Question {
	return &model.Question{
		ID:      id,
		Title:   "Question " + id,
		Body:    "Body " + id,
		Tags:    []string{"go"},
		Answers: []model.Answer{},
		Author:  author,
	}
}

func TestCreateQuestionNewestFirst(t *testing.T) {
	service, _ := newTestService(testU1, seedQuestion("q-old", testU2))

	id, err := service.CreateQuestion(dto.CreateQuestionRequest{
		Title: "Fresh question",
		Body:  "Fresh body",
		Tags:  []string{"go", "testing"},
	})
	if err != nil {
		t.Fatalf("create question failed: %v", err)
	}

	question, err := service.GetQuestionByID(id)
	if err != nil {
		t.Fatalf("created question not found: %v", err)
	}
	if question.Votes != 0 || question.Views != 0 || len(question.Answers) != 0 {
		t.Error("new question must start with zero votes, views and answers")
	}
	if question.Author.ID != testU1.ID {
		t.Errorf("expected author %s, got %s", testU1.ID, question.Author.ID)
	}

	all := service.GetQuestions()
	if all[0].ID != id {
		t.Errorf("expected new question first in default order, got %s", all[0].ID)
	}
}

func TestInactiveUserCannotWrite(t *testing.T) {
	inactive := model.User{ID: "u9", Name: "Ghost", IsActive: false}
	service, notifications := newTestService(inactive, seedQuestion("q1", testU1))

	if _, err := service.CreateQuestion(dto.CreateQuestionRequest{Title: "t", Body: "b", Tags: []string{"x"}}); !errors.Is(err, ErrInactiveUser) {
		t.Errorf("CreateQuestion: expected ErrInactiveUser, got %v", err)
	}
	if _, err := service.AddAnswer("q1", "body"); !errors.Is(err, ErrInactiveUser) {
		t.Errorf("AddAnswer: expected ErrInactiveUser, got %v", err)
	}
	if _, err := service.VoteQuestion("q1", +1); !errors.Is(err, ErrInactiveUser) {
		t.Errorf("VoteQuestion: expected ErrInactiveUser, got %v", err)
	}
	if len(notifications.List()) != 0 {
		t.Error("no notifications expected from rejected writes")
	}
}

func TestVoteEmitsNotificationForOtherAuthor(t *testing.T) {
	service, notifications := newTestService(testU2, seedQuestion("q1", testU1))

	question, err := service.VoteQuestion("q1", +1)
	if err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if question.Votes != 1 {
		t.Errorf("expected 1 vote, got %d", question.Votes)
	}

	list := notifications.List()
	if len(list) != 1 {
		t.Fatalf("expected exactly one notification, got %d", len(list))
	}
	if list[0].Type != model.NotificationTypeVote {
		t.Errorf("expected vote notification, got %s", list[0].Type)
	}
	if list[0].QuestionID != "q1" {
		t.Errorf("expected notification to reference q1, got %s", list[0].QuestionID)
	}
}

func TestSelfVoteEmitsNoNotification(t *testing.T) {
	service, notifications := newTestService(testU1, seedQuestion("q1", testU1))

	if _, err := service.VoteQuestion("q1", +1); err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if len(notifications.List()) != 0 {
		t.Error("self-vote must not emit a notification")
	}
}

func TestDownvoteEmitsNoNotification(t *testing.T) {
	service, notifications := newTestService(testU2, seedQuestion("q1", testU1))

	if _, err := service.VoteQuestion("q1", -1); err != nil {
		t.Fatalf("vote failed: %v", err)
	}
	if len(notifications.List()) != 0 {
		t.Error("downvote must not emit a notification")
	}
}

func TestAddAnswerNotifiesQuestionAuthor(t *testing.T) {
	service, notifications := newTestService(testU2, seedQuestion("q1", testU1))

	answer, err := service.AddAnswer("q1", "An answer body")
	if err != nil {
		t.Fatalf("add answer failed: %v", err)
	}
	if answer.Author.ID != testU2.ID {
		t.Errorf("expected answer author %s, got %s", testU2.ID, answer.Author.ID)
	}

	list := notifications.List()
	if len(list) != 1 || list[0].Type != model.NotificationTypeAnswer {
		t.Fatalf("expected one answer notification, got %v", list)
	}
}

func TestAddAnswerToOwnQuestionEmitsNoNotification(t *testing.T) {
	service, notifications := newTestService(testU1, seedQuestion("q1", testU1))

	if _, err := service.AddAnswer("q1", "self answer"); err != nil {
		t.Fatalf("add answer failed: %v", err)
	}
	if len(notifications.List()) != 0 {
		t.Error("answering your own question must not emit a notification")
	}
}

func TestAddAnswerUnknownQuestion(t *testing.T) {
	service, notifications := newTestService(testU2, seedQuestion("q1", testU1))

	_, err := service.AddAnswer("missing", "body")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(notifications.List()) != 0 {
		t.Error("failed mutation must not emit a notification")
	}
	if len(service.GetQuestions()) != 1 {
		t.Error("question collection must be unchanged")
	}
}

func TestVoteAnswerNotification(t *testing.T) {
	q := seedQuestion("q1", testU1)
	q.Answers = []model.Answer{{ID: "a1", Body: "answer", Author: testU1}}
	service, notifications := newTestService(testU2, q)

	answer, err := service.VoteAnswer("q1", "a1", +1)
	if err != nil {
		t.Fatalf("vote answer failed: %v", err)
	}
	if answer.Votes != 1 {
		t.Errorf("expected 1 vote, got %d", answer.Votes)
	}
	if len(notifications.List()) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifications.List()))
	}
}

func TestAcceptAnswerOnlyByQuestionAuthor(t *testing.T) {
	q := seedQuestion("q1", testU1)
	q.Answers = []model.Answer{{ID: "a1", Author: testU2}}

	outsider, _ := newTestService(testU2, q)
	if _, err := outsider.AcceptAnswer("q1", "a1"); !errors.Is(err, repository.ErrNotAuthor) {
		t.Fatalf("expected ErrNotAuthor, got %v", err)
	}

	q2 := seedQuestion("q1", testU1)
	q2.Answers = []model.Answer{{ID: "a1", Author: testU2}}
	owner, _ := newTestService(testU1, q2)
	question, err := owner.AcceptAnswer("q1", "a1")
	if err != nil {
		t.Fatalf("accept failed: %v", err)
	}
	if !question.HasAcceptedAnswer || !question.Answers[0].IsAccepted {
		t.Error("expected answer accepted")
	}
}

func TestViewGuardCountsOncePerSession(t *testing.T) {
	service, _ := newTestService(testU2, seedQuestion("q1", testU1))

	for i := 0; i < 3; i++ {
		if _, err := service.ViewQuestion("q1", "session-a"); err != nil {
			t.Fatalf("view failed: %v", err)
		}
	}
	q, _ := service.ViewQuestion("q1", "session-b")
	if q.Views != 2 {
		t.Errorf("expected 2 views (one per session), got %d", q.Views)
	}

	if _, err := service.ViewQuestion("missing", "session-a"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetUserAnswersProjection(t *testing.T) {
	q1 := seedQuestion("q1", testU1)
	q1.Answers = []model.Answer{
		{ID: "a1", Body: "by u2", Author: testU2},
		{ID: "a2", Body: "by u1", Author: testU1},
	}
	q2 := seedQuestion("q2", testU2)
	q2.Answers = []model.Answer{{ID: "a3", Body: "also by u2", Author: testU2}}

	service, _ := newTestService(testU1, q1, q2)

	answers := service.GetUserAnswers("u2")
	if len(answers) != 2 {
		t.Fatalf("expected 2 answers by u2, got %d", len(answers))
	}
	for _, a := range answers {
		if a.QuestionID == "" || a.QuestionTitle == "" {
			t.Errorf("answer %s missing parent question projection", a.ID)
		}
	}
}

func TestSearchQuestions(t *testing.T) {
	q1 := seedQuestion("q1", testU1)
	q1.Title = "How to handle JSON in Go?"
	q2 := seedQuestion("q2", testU1)
	q2.Body = "Something about databases"
	q2.Tags = []string{"postgresql"}

	service, _ := newTestService(testU1, q1, q2)

	if got := service.SearchQuestions("json"); len(got) != 1 || got[0].ID != "q1" {
		t.Errorf("title search: unexpected result %v", got)
	}
	if got := service.SearchQuestions("databases"); len(got) != 1 || got[0].ID != "q2" {
		t.Errorf("body search: unexpected result %v", got)
	}
	if got := service.SearchQuestions("postgre"); len(got) != 1 || got[0].ID != "q2" {
		t.Errorf("tag search: unexpected result %v", got)
	}
	if got := service.SearchQuestions("  "); got != nil {
		t.Errorf("blank query should return nothing, got %v", got)
	}
}
