// file: controllers/auth_controller.go
package controllers

import (
	"InnoHub/database"
	"InnoHub/models"
	"InnoHub/utils"

	"github.com/gin-gonic/gin"
)

func Register(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
		Email    string `json:"email" binding:"required,email"`
		RealName string `json:"real_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ? OR email = ?", req.Username, req.Email).
		First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Username or email already registered")
		return
	}

	newUser := models.User{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		RealName: req.RealName,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "User registered successfully", gin.H{
		"id":       newUser.ID,
		"username": newUser.Username,
		"role":     newUser.Role,
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.Error(c, 2002, "Invalid email or password")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, 2002, "Invalid email or password")
		return
	}
	if user.Status == models.StatusBanned {
		utils.Error(c, 4003, "Account is banned")
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.Error(c, 5000, "Failed to issue token")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}
