package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yeetaryan/StackIt/dto"
	"github.com/yeetaryan/StackIt/repository"
	"github.com/yeetaryan/StackIt/usecase"
	"github.com/yeetaryan/StackIt/utils"
)

func writeError(c *gin.Context, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		utils.NotFound(c, notFoundMessage)
	case errors.Is(err, repository.ErrNotAuthor):
		utils.Forbidden(c, "Only the question author may do this")
	case errors.Is(err, usecase.ErrInactiveUser):
		utils.Forbidden(c, err.Error())
	default:
		utils.InternalError(c, "Operation failed")
	}
}

func CreateAnswerHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	var req dto.CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	answer, err := questionsService.AddAnswer(c.Param("id"), req.Body)
	if err != nil {
		writeError(c, err, "Question not found")
		return
	}

	utils.Created(c, answer)
}

func GetQuestionAnswersHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	question, err := questionsService.GetQuestionByID(c.Param("id"))
	if err != nil {
		utils.NotFound(c, "Question not found")
		return
	}

	utils.Success(c, question.Answers)
}

func GetUserAnswersHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	utils.Success(c, questionsService.GetUserAnswers(c.Param("id")))
}

func VoteQuestionHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	question, err := questionsService.VoteQuestion(c.Param("id"), req.Delta)
	if err != nil {
		writeError(c, err, "Question not found")
		return
	}

	utils.Success(c, question)
}

func VoteAnswerHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	var req dto.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	answer, err := questionsService.VoteAnswer(c.Param("id"), c.Param("answerId"), req.Delta)
	if err != nil {
		writeError(c, err, "Question or answer not found")
		return
	}

	utils.Success(c, answer)
}

func AcceptAnswerHandler(c *gin.Context, questionsService *usecase.QuestionsService) {
	question, err := questionsService.AcceptAnswer(c.Param("id"), c.Param("answerId"))
	if err != nil {
		writeError(c, err, "Question or answer not found")
		return
	}

	utils.Success(c, question)
}
