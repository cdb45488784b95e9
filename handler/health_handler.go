package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yeetaryan/StackIt/utils"
)

func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":       "healthy",
		"message":      "StackIt API is running",
		"cpu_usage":    utils.GetCPUUsage(),
		"memory_usage": utils.GetMemoryUsage(),
	})
}
