package usecase

import (
	"time"

	"github.com/yeetaryan/StackIt/middleware"
	"github.com/yeetaryan/StackIt/model"
	"github.com/yeetaryan/StackIt/repository"
	"github.com/yeetaryan/StackIt/utils"
)

type NotificationsService struct {
	Repo *repository.NotificationsRepo
}

// Notify records a notification for the current user. Called
// synchronously from answer and vote mutations.
func (s *NotificationsService) Notify(notificationType, message, questionID string) {
	s.Repo.Insert(&model.Notification{
		ID:         utils.GenerateID(),
		Type:       notificationType,
		Message:    message,
		QuestionID: questionID,
		CreatedAt:  time.Now().UTC(),
	})
	middleware.TrackNotification(notificationType)
}

func (s *NotificationsService) List() []model.Notification {
	return s.Repo.All()
}

func (s *NotificationsService) UnreadCount() int {
	return s.Repo.UnreadCount()
}

func (s *NotificationsService) MarkRead(id string) error {
	return s.Repo.MarkRead(id)
}

func (s *NotificationsService) MarkAllRead() {
	s.Repo.MarkAllRead()
}
