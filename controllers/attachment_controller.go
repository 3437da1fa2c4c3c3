// file: controllers/attachment_controller.go
package controllers

import (
	"strconv"
	"time"

	"InnoHub/database"
	"InnoHub/dto"
	"InnoHub/models"
	"InnoHub/utils"

	"github.com/gin-gonic/gin"
)

func attachmentMeta(a models.SubmissionAttachment) dto.AttachmentMeta {
	return dto.AttachmentMeta{
		ID:          a.ID,
		FileName:    a.FileName,
		StoredName:  a.StoredName,
		Size:        a.FileSize,
		ContentType: a.ContentType,
		SHA256:      a.SHA256,
		UploadedAt:  a.UploadedAt.Format(time.RFC3339),
		DownloadURL: "/api/v1/attachments/" + strconv.FormatUint(a.ID, 10) + "/download",
	}
}

// DownloadAttachment serves a stored submission file. Allowed for the
// submission author, the challenge author, and reviewer capability.
func DownloadAttachment(c *gin.Context) {
	attachmentID, _ := strconv.Atoi(c.Param("attachment_id"))
	userID, _ := currentUserID(c)
	role := c.MustGet("user_role").(models.UserRole)

	var attachment models.SubmissionAttachment
	if err := database.DB.First(&attachment, attachmentID).Error; err != nil {
		utils.Error(c, 4004, "Attachment not found")
		return
	}

	var sub models.ChallengeSubmission
	if err := database.DB.First(&sub, attachment.SubmissionID).Error; err != nil {
		utils.Error(c, 4004, "Attachment not found")
		return
	}

	allowed := sub.AuthorID == userID || models.HasAnyRole(role, models.ReviewerRoles)
	if !allowed {
		var challenge models.Challenge
		if err := database.DB.First(&challenge, sub.ChallengeID).Error; err == nil {
			allowed = challenge.AuthorID == userID
		}
	}
	if !allowed {
		utils.Error(c, 4003, "Insufficient permissions")
		return
	}

	c.FileAttachment(attachment.Path, attachment.FileName)
}
