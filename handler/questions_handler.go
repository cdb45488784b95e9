package handler

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeetaryan/StackIt/dto"
	"github.com/yeetaryan/StackIt/usecase"
	"github.com/yeetaryan/StackIt/utils"
)

// sessionKey identifies the viewing session for the view-count guard.
// Clients that send X-Session-ID get exact once-per-session counting;
// everyone else is grouped by client IP.
func sessionKey(c *gin.Context) string {
	if key := c.GetHeader("X-Session-ID"); key != "" {
		return key
	}
	return c.ClientIP()
}

func GetQuestionsHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	utils.Success(c, questionsService.GetQuestions())
}

func CreateQuestionHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	id, err := questionsService.CreateQuestion(req)
	if err != nil {
		if errors.Is(err, usecase.ErrInactiveUser) {
			utils.Forbidden(c, err.Error())
			return
		}
		utils.InternalError(c, "Failed to create question")
		return
	}

	utils.Created(c, gin.H{"questionID": id})
}

func GetQuestionHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	question, err := questionsService.ViewQuestion(c.Param("id"), sessionKey(c))
	if err != nil {
		utils.NotFound(c, "Question not found")
		return
	}

	utils.Success(c, question)
}

func GetUserQuestionsHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	utils.Success(c, questionsService.GetUserQuestions(c.Param("id")))
}

func SearchQuestionsHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		utils.BadRequest(c, "Search query is required")
		return
	}

	utils.Success(c, questionsService.SearchQuestions(query))
}

func GetTagQuestionsHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	utils.Success(c, questionsService.GetQuestionsByTag(c.Param("tag")))
}
