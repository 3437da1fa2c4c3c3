// file: controllers/submission_controller.go
package controllers

import (
	"errors"
	"strconv"
	"time"

	"InnoHub/dto"
	"InnoHub/services"
	"InnoHub/utils"

	"github.com/gin-gonic/gin"
)

func challengeDetailURL(id uint32) string {
	return "/api/v1/challenges/" + strconv.FormatUint(uint64(id), 10)
}

// GetSubmissionForm is the form-load guard plus the form constraints.
// An ineligible challenge is a plain not-found; an existing submission
// redirects back to the detail page with a flash notice.
func GetSubmissionForm(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	challenge, err := Submissions.Eligibility(uint32(id), userID)
	switch {
	case errors.Is(err, services.ErrChallengeNotOpen):
		utils.Error(c, 4004, "Challenge not found")
		return
	case errors.Is(err, services.ErrDuplicateSubmission):
		utils.ErrorWithData(c, 4009, "You have already submitted to this challenge",
			gin.H{"redirect": challengeDetailURL(challenge.ID)})
		return
	case err != nil:
		utils.Error(c, 5000, "Failed to load submission form")
		return
	}

	resp := dto.SubmissionFormResp{
		ChallengeID:    challenge.ID,
		ChallengeTitle: challenge.Title,
		Requirements:   challenge.Requirements,
		MaxFileBytes:   Files.MaxFileBytes(),
		AllowedTypes:   Files.AllowedTypes(),
		AllowedExts:    Files.AllowedExts(),
		MaxAttachments: services.MaxAttachmentCount,
	}
	if challenge.Deadline != nil {
		resp.Deadline = challenge.Deadline.Format(time.RFC3339)
	}
	if label, ok := utils.DaysRemaining(challenge.Deadline, time.Now()); ok {
		resp.DaysRemaining = label
	}
	utils.Success(c, "success", resp)
}

// CreateSubmission accepts the multipart form and runs the submission
// protocol. Attachment files travel under the "attachments" field; the
// optional repeatable "remove_attachment" field drops entries by index
// before anything is staged.
func CreateSubmission(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}

	var req dto.CreateSubmissionReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.Error(c, 1001, "Invalid multipart form")
		return
	}
	files := form.File["attachments"]
	for _, idxStr := range form.Value["remove_attachment"] {
		if idx, err := strconv.Atoi(idxStr); err == nil {
			files = dto.RemoveFileAt(files, idx)
		}
	}

	sub, err := Submissions.Create(uint32(id), userID, req, files)
	if err != nil {
		var vErr *services.ValidationError
		var aErr *services.AttachmentRejectedError
		switch {
		case errors.As(err, &vErr):
			utils.ErrorWithData(c, 1001, "Please correct the highlighted fields", gin.H{"fields": vErr.Fields})
		case errors.As(err, &aErr):
			utils.ErrorWithData(c, 4010, "One or more attachments were rejected", gin.H{"reasons": aErr.Reasons})
		case errors.Is(err, services.ErrChallengeNotOpen):
			utils.Error(c, 4004, "Challenge not found")
		case errors.Is(err, services.ErrDuplicateSubmission):
			utils.ErrorWithData(c, 4009, "You have already submitted to this challenge",
				gin.H{"redirect": challengeDetailURL(uint32(id))})
		default:
			utils.Error(c, 5000, "Failed to create submission")
		}
		return
	}

	utils.Success(c, "Submission received successfully", gin.H{
		"id":       sub.ID,
		"status":   sub.Status,
		"redirect": challengeDetailURL(uint32(id)),
	})
}
