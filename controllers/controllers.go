// file: controllers/controllers.go
package controllers

import (
	"InnoHub/services"

	"github.com/gin-gonic/gin"
)

// Wired once from main; handlers stay plain package functions the router
// can reference directly.
var (
	Browse      *services.BrowseService
	Submissions *services.SubmissionService
	Files       services.FileStore
	Audit       services.AuditRecorder
)

func Init(browse *services.BrowseService, submissions *services.SubmissionService, files services.FileStore, audit services.AuditRecorder) {
	Browse = browse
	Submissions = submissions
	Files = files
	Audit = audit
}

func currentUserID(c *gin.Context) (uint32, bool) {
	v, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	return v.(uint32), true
}
