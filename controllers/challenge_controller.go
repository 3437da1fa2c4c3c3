// file: controllers/challenge_controller.go
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

// ListChallenges drives the challenge browser. The viewer's component
// state lives server-side; query parameters present on the request are
// applied as transitions (search/status/category reset the page, sort
// toggles direction on a repeated field) before the grid is recomputed.
func ListChallenges(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.Error(c, 4001, "Not authenticated")
		return
	}
	role := c.MustGet("user_role").(models.UserRole)

	state, found := Browse.States().Get(c.Request.Context(), userID)
	if !found {
		state = dto.DefaultListState()
	}

	if q, ok := c.GetQuery("search"); ok {
		state.SetSearch(q)
	}
	if status, ok := c.GetQuery("status"); ok {
		state.SetStatus(status)
	}
	if category, ok := c.GetQuery("category"); ok {
		state.SetCategory(category)
	}
	if field, ok := c.GetQuery("sort"); ok {
		state.SortBy(field)
	}
	if pageStr, ok := c.GetQuery("page"); ok {
		if page, err := strconv.Atoi(pageStr); err == nil {
			state.SetPage(page)
		}
	}
	if _, ok := c.GetQuery("reset"); ok {
		state = dto.DefaultListState()
	}

	Browse.States().Put(c.Request.Context(), userID, state)

	resp, err := Browse.List(c.Request.Context(), userID, role, state)
	if err != nil {
		utils.Error(c, 5000, "Failed to load challenges")
		return
	}
	utils.Success(c, "success", resp)
}

// GetChallengeDetail returns one challenge with badges, requirements and
// the viewer's own submission, if any.
func GetChallengeDetail(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	userID, _ := currentUserID(c)

	var challenge models.Challenge
	if err := database.DB.Preload("Author").First(&challenge, id).Error; err != nil {
		utils.Error(c, 4004, "Challenge not found")
		return
	}

	now := time.Now()
	resp := dto.ChallengeDetailResp{
		ID:              challenge.ID,
		Title:           challenge.Title,
		Description:     challenge.Description,
		Category:        challenge.Category,
		Status:          string(challenge.Status),
		StatusClass:     utils.StatusBadgeClass(challenge.Status),
		Prize:           challenge.Prize,
		Requirements:    challenge.Requirements,
		AuthorName:      challenge.Author.Username,
		SubmissionCount: challenge.SubmissionCount,
	}
	if challenge.Deadline != nil {
		resp.Deadline = challenge.Deadline.Format(time.RFC3339)
	}
	if label, ok := utils.DaysRemaining(challenge.Deadline, now); ok {
		resp.DaysRemaining = label
	}

	var sub models.ChallengeSubmission
	err := database.DB.Preload("Attachments").
		Where("challenge_id = ? AND author_id = ?", challenge.ID, userID).
		First(&sub).Error
	if err == nil {
		summary := dto.SubmissionSummary{
			ID:        sub.ID,
			Title:     sub.Title,
			Status:    string(sub.Status),
			CreatedAt: sub.CreatedAt.Format(time.RFC3339),
		}
		for _, a := range sub.Attachments {
			summary.Attachments = append(summary.Attachments, attachmentMeta(a))
		}
		resp.MySubmission = &summary
	}
	resp.CanSubmit = challenge.AcceptsSubmissions(now) && resp.MySubmission == nil

	utils.Success(c, "success", resp)
}

// CreateChallenge is gated on the creator capability set by the router.
func CreateChallenge(c *gin.Context) {
	var req dto.CreateChallengeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	req.Normalize()

	switch models.ChallengeStatus(req.Status) {
	case models.ChallengeStatusDraft, models.ChallengeStatusActive:
	default:
		utils.Error(c, 1001, "Status must be draft or active on creation")
		return
	}

	var deadline *time.Time
	if req.Deadline != nil && *req.Deadline != "" {
		t, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			utils.Error(c, 1001, "Deadline must be RFC3339")
			return
		}
		deadline = &t
	}

	userID, _ := currentUserID(c)
	challenge := models.Challenge{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Status:       models.ChallengeStatus(req.Status),
		Deadline:     deadline,
		Prize:        req.Prize,
		Requirements: req.Requirements,
		AuthorID:     userID,
	}
	if err := database.DB.Create(&challenge).Error; err != nil {
		utils.Error(c, 5000, "Failed to create challenge: "+err.Error())
		return
	}

	Audit.Record("challenge.created", "challenge", uint64(challenge.ID), userID, nil, challenge)
	Browse.InvalidateCategories(c.Request.Context())

	utils.Success(c, "Challenge created successfully", gin.H{"id": challenge.ID})
}
