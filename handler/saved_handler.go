package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yeetaryan/StackIt/model"
	"github.com/yeetaryan/StackIt/usecase"
	"github.com/yeetaryan/StackIt/utils"
)

// GetSavedQuestionsHandler resolves the saved id set against the live
// question collection. Ids that no longer resolve are skipped.
func GetSavedQuestionsHandler(c *gin.Context, savedService *usecase.SavedService, questionsService *usecase.QuestionsService) {
	ids := savedService.List()
	questions := make([]model.Question, 0, len(ids))
	for _, id := range ids {
		if q, err := questionsService.GetQuestionByID(id); err == nil {
			questions = append(questions, q)
		}
	}

	utils.Success(c, gin.H{
		"ids":       ids,
		"questions": questions,
	})
}

func ToggleSaveQuestionHandler(c *gin.Context, savedService *usecase.SavedService) {
	saved, err := savedService.Toggle(c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrInactiveUser) {
			utils.Forbidden(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to toggle saved question")
		return
	}

	utils.Success(c, gin.H{"saved": saved})
}
