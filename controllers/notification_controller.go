// file: controllers/notification_controller.go
package controllers

import (
	"InnoHub/database"
	"InnoHub/models"
	"InnoHub/utils"

	"github.com/gin-gonic/gin"
)

// GetNotifications lists the viewer's feed, unread first.
func GetNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	var notifications []models.Notification
	if err := database.DB.
		Where("user_id = ?", userID).
		Order("read_at IS NULL DESC, created_at DESC").
		Limit(50).
		Find(&notifications).Error; err != nil {
		utils.Error(c, 5000, "Failed to load notifications")
		return
	}

	utils.Success(c, "success", gin.H{
		"total":         len(notifications),
		"notifications": notifications,
	})
}
