package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/progress"
	"fittrack/internal/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	service *services.ActivityService
}

func NewActivityController(service *services.ActivityService) *ActivityController {
	return &ActivityController{service: service}
}

type createActivityRequest struct {
	TypeName     string    `json:"type_name" binding:"required"`
	Duration     int       `json:"duration" binding:"min=0"`
	Distance     int       `json:"distance" binding:"min=0"`
	ActivityDate time.Time `json:"activity_date" binding:"required"`
	Notes        string    `json:"notes"`
}

type updateActivityRequest struct {
	TypeName     *string    `json:"type_name"`
	Duration     *int       `json:"duration" binding:"omitempty,min=0"`
	Distance     *int       `json:"distance" binding:"omitempty,min=0"`
	ActivityDate *time.Time `json:"activity_date"`
	Notes        *string    `json:"notes"`
}

// CreateActivity godoc
// @Summary Log a new activity
// @Description Create an activity for the authenticated user and update every matching goal's progress
// @Tags activity
// @Accept json
// @Produce json
// @Param activity body createActivityRequest true "Activity data"
// @Success 201 {object} map[string]interface{} "Activity created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create activity"
// @Security BearerAuth
// @Router /activities [post]
func (ac *ActivityController) CreateActivity(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req createActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	activity := models.Activity{
		UserID:       userID,
		TypeName:     req.TypeName,
		Duration:     req.Duration,
		Distance:     req.Distance,
		ActivityDate: req.ActivityDate,
		Notes:        req.Notes,
	}

	if err := ac.service.Create(&activity); err != nil {
		if errors.Is(err, progress.ErrUnknownActivityType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid activity type",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to create activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Activity created successfully",
		"data":    activity,
	})
}

// ListActivities godoc
// @Summary List the user's activities
// @Description Retrieve one page of the authenticated user's activities
// @Tags activity
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{} "Activities retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve activities"
// @Security BearerAuth
// @Router /activities [get]
func (ac *ActivityController) ListActivities(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := ac.service.List(userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve activities",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activities retrieved successfully",
		"data":    result,
	})
}

// UpdateActivity godoc
// @Summary Update an activity
// @Description Update an activity's fields and shift every affected goal's progress by the resulting delta
// @Tags activity
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param activity body updateActivityRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Activity updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Failure 500 {object} map[string]interface{} "Failed to update activity"
// @Security BearerAuth
// @Router /activities/{id} [put]
func (ac *ActivityController) UpdateActivity(c *gin.Context) {
	activity := c.MustGet("activity").(*models.Activity)

	var req updateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	updated, err := ac.service.Update(activity, services.UpdateActivityInput{
		TypeName:     req.TypeName,
		Duration:     req.Duration,
		Distance:     req.Distance,
		Notes:        req.Notes,
		ActivityDate: req.ActivityDate,
	})
	if err != nil {
		if errors.Is(err, progress.ErrUnknownActivityType) {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid activity type",
				"error":   err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to update activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity updated successfully",
		"data":    updated,
	})
}

// DeleteActivity godoc
// @Summary Delete an activity
// @Description Delete an activity and subtract its contribution from every affected goal
// @Tags activity
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} map[string]interface{} "Activity deleted successfully"
// @Failure 404 {object} map[string]interface{} "Activity not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete activity"
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (ac *ActivityController) DeleteActivity(c *gin.Context) {
	activity := c.MustGet("activity").(*models.Activity)

	if err := ac.service.Delete(activity); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete activity",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Activity deleted successfully",
	})
}
