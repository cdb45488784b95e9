package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/yeetaryan/StackIt/usecase"
	"github.com/yeetaryan/StackIt/utils"
)

func GetNotificationsHandler(c *gin.Context, notificationsService *usecase.NotificationsService) {
	utils.Success(c, gin.H{
		"notifications": notificationsService.List(),
		"unread":        notificationsService.UnreadCount(),
	})
}

func MarkNotificationReadHandler(c *gin.Context, notificationsService *usecase.NotificationsService) {
	if err := notificationsService.MarkRead(c.Param("id")); err != nil {
		utils.NotFound(c, "Notification not found")
		return
	}

	utils.Success(c, gin.H{"message": "Notification marked as read"})
}

func MarkAllNotificationsReadHandler(c *gin.Context, notificationsService *usecase.NotificationsService) {
	notificationsService.MarkAllRead()
	utils.Success(c, gin.H{"message": "All notifications marked as read"})
}
