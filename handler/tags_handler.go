package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yeetaryan/StackIt/usecase"
	"github.com/yeetaryan/StackIt/utils"
)

func GetAllTagsHandler(c *gin.Context, statsService *usecase.StatsService) {
	utils.Success(c, statsService.GetAllTags())
}
