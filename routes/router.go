// file: routes/router.go
package routes

import (
	"InnoHub/controllers"
	"InnoHub/middlewares"
	"InnoHub/models"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		usersPublic := apiV1.Group("/users")
		{
			usersPublic.POST("/register", controllers.Register)
			usersPublic.POST("/login", controllers.Login)
		}

		challengeRoutes := apiV1.Group("/challenges")
		challengeRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			// browser + detail
			challengeRoutes.GET("", controllers.ListChallenges)
			challengeRoutes.GET("/:id", controllers.GetChallengeDetail)

			// submission form
			challengeRoutes.GET("/:id/submit", controllers.GetSubmissionForm)
			challengeRoutes.POST("/:id/submissions", controllers.CreateSubmission)

			// creation is gated on the creator capability set
			challengeRoutes.POST("",
				middlewares.RoleAuthMiddleware(models.ChallengeCreatorRoles...),
				controllers.CreateChallenge)
		}

		attachmentRoutes := apiV1.Group("/attachments")
		attachmentRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			attachmentRoutes.GET("/:attachment_id/download", controllers.DownloadAttachment)
		}

		notificationRoutes := apiV1.Group("/notifications")
		notificationRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			notificationRoutes.GET("", controllers.GetNotifications)
		}
	}

	return r
}
