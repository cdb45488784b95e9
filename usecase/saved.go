package usecase

import (
	"github.com/yeetaryan/StackIt/model"
	"github.com/yeetaryan/StackIt/repository"
)

type SavedService struct {
	Repo        *repository.SavedRepo
	CurrentUser model.User
}

// Toggle flips the question's membership in the saved set and reports
// the new state. The repo mirrors every change to the durable slot.
func (s *SavedService) Toggle(questionID string) (bool, error) {
	if !s.CurrentUser.IsActive {
		return false, ErrInactiveUser
	}
	return s.Repo.Toggle(questionID), nil
}

func (s *SavedService) List() []string {
	return s.Repo.List()
}

func (s *SavedService) IsSaved(questionID string) bool {
	return s.Repo.IsSaved(questionID)
}
