package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yeetaryan/StackIt/usecase"
	"github.com/yeetaryan/StackIt/utils"
)

func GetProfileHandler(c *gin.Context, questionsService *usecase.QuestionsService, savedService *usecase.SavedService) {
	user := questionsService.CurrentUser

	utils.Success(c, gin.H{
		"user":           user,
		"question_count": len(questionsService.GetUserQuestions(user.ID)),
		"answer_count":   len(questionsService.GetUserAnswers(user.ID)),
		"saved_count":    len(savedService.List()),
	})
}
