package controllers

import (
	"log"
	"net/http"
	"time"

	"fittrack/internal/cache"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type UserProfileController struct {
	profiles  repository.UserProfileRepository
	users     repository.UserRepository
	pageCache cache.PageCache
}

func NewUserProfileController(profiles repository.UserProfileRepository, users repository.UserRepository, pageCache cache.PageCache) *UserProfileController {
	return &UserProfileController{
		profiles:  profiles,
		users:     users,
		pageCache: pageCache,
	}
}

type updateProfileRequest struct {
	Name        *string    `json:"name" binding:"omitempty,min=3"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

// GetProfile godoc
// @Summary Get the user's profile
// @Description Retrieve the authenticated user's profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Profile retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Security BearerAuth
// @Router /profile [get]
func (pc *UserProfileController) GetProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	profile, err := pc.profiles.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data":    profile,
		"email":   c.GetString("email"),
	})
}

// UpdateProfile godoc
// @Summary Update the user's profile
// @Description Update the authenticated user's name or date of birth
// @Tags profile
// @Accept json
// @Produce json
// @Param profile body updateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Profile updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Security BearerAuth
// @Router /profile [put]
func (pc *UserProfileController) UpdateProfile(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	profile, err := pc.profiles.FindByUserID(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Profile not found",
			"error":   err.Error(),
		})
		return
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.DateOfBirth != nil {
		profile.DateOfBirth = *req.DateOfBirth
	}

	if err := pc.profiles.Update(profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update profile",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile updated successfully",
		"data":    profile,
	})
}

// DeleteAccount godoc
// @Summary Delete the user's account
// @Description Delete the authenticated user along with all their activities, goals, profile and cached pages
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{} "Account deleted successfully"
// @Failure 500 {object} map[string]interface{} "Failed to delete account"
// @Security BearerAuth
// @Router /profile [delete]
func (pc *UserProfileController) DeleteAccount(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	if err := pc.users.Delete(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete account",
			"error":   err.Error(),
		})
		return
	}

	if pc.pageCache != nil {
		for _, prefix := range []string{cache.KeyActivities, cache.KeyGoals} {
			if err := pc.pageCache.InvalidateUser(prefix, userID); err != nil {
				log.Printf("Failed to invalidate %s cache for user %d: %v", prefix, userID, err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Your account has been deleted successfully",
	})
}
