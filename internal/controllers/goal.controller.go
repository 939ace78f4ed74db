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

type GoalController struct {
	service *services.GoalService
}

func NewGoalController(service *services.GoalService) *GoalController {
	return &GoalController{service: service}
}

type createGoalRequest struct {
	TypeName    string    `json:"type_name" binding:"required"`
	TargetValue int       `json:"target_value" binding:"required,min=1"`
	StartDate   time.Time `json:"start_date" binding:"required"`
	EndDate     time.Time `json:"end_date" binding:"required"`
}

type updateGoalRequest struct {
	TypeName    *string    `json:"type_name"`
	TargetValue *int       `json:"target_value" binding:"omitempty,min=1"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

func goalErrorStatus(err error) int {
	switch {
	case errors.Is(err, progress.ErrUnknownGoalType),
		errors.Is(err, services.ErrInvalidTargetValue),
		errors.Is(err, services.ErrInvalidDateRange):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// CreateGoal godoc
// @Summary Create a new goal
// @Description Create a goal; its current value starts at the sum of contributions from activities already inside the window
// @Tags goal
// @Accept json
// @Produce json
// @Param goal body createGoalRequest true "Goal data"
// @Success 201 {object} map[string]interface{} "Goal created successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Failed to create goal"
// @Security BearerAuth
// @Router /goals [post]
func (gc *GoalController) CreateGoal(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	goal := models.Goal{
		UserID:      userID,
		TypeName:    req.TypeName,
		TargetValue: req.TargetValue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	}

	if err := gc.service.Create(&goal); err != nil {
		c.JSON(goalErrorStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to create goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Goal created successfully",
		"data":    goal,
	})
}

// ListGoals godoc
// @Summary List the user's goals
// @Description Retrieve one page of the authenticated user's goals
// @Tags goal
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{} "Goals retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve goals"
// @Security BearerAuth
// @Router /goals [get]
func (gc *GoalController) ListGoals(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := gc.service.List(userID, page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve goals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goals retrieved successfully",
		"data":    result,
	})
}

// ListAchievedGoals godoc
// @Summary List achieved goals
// @Description Retrieve all goals the authenticated user has achieved
// @Tags goal
// @Produce json
// @Success 200 {object} map[string]interface{} "Achieved goals retrieved successfully"
// @Failure 500 {object} map[string]interface{} "Failed to retrieve goals"
// @Security BearerAuth
// @Router /goals/achieved [get]
func (gc *GoalController) ListAchievedGoals(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	goals, err := gc.service.ListAchieved(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve goals",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Achieved goals retrieved successfully",
		"data":    goals,
	})
}

// GetGoalByID godoc
// @Summary Get a goal by ID
// @Description Retrieve a single goal owned by the authenticated user
// @Tags goal
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} map[string]interface{} "Goal retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Security BearerAuth
// @Router /goals/{id} [get]
func (gc *GoalController) GetGoalByID(c *gin.Context) {
	goal := c.MustGet("goal").(*models.Goal)

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal retrieved successfully",
		"data":    goal,
	})
}

// UpdateGoal godoc
// @Summary Update a goal
// @Description Update a goal's parameters; the current value is recomputed from the activities inside the new window
// @Tags goal
// @Accept json
// @Produce json
// @Param id path int true "Goal ID"
// @Param goal body updateGoalRequest true "Fields to update"
// @Success 200 {object} map[string]interface{} "Goal updated successfully"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Failure 500 {object} map[string]interface{} "Failed to update goal"
// @Security BearerAuth
// @Router /goals/{id} [put]
func (gc *GoalController) UpdateGoal(c *gin.Context) {
	goal := c.MustGet("goal").(*models.Goal)

	var req updateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	updated, err := gc.service.Update(goal, services.UpdateGoalInput{
		TypeName:    req.TypeName,
		TargetValue: req.TargetValue,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		c.JSON(goalErrorStatus(err), gin.H{
			"status":  "error",
			"message": "Failed to update goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal updated successfully",
		"data":    updated,
	})
}

// DeleteGoal godoc
// @Summary Delete a goal
// @Description Delete a goal owned by the authenticated user
// @Tags goal
// @Produce json
// @Param id path int true "Goal ID"
// @Success 200 {object} map[string]interface{} "Goal deleted successfully"
// @Failure 404 {object} map[string]interface{} "Goal not found"
// @Failure 500 {object} map[string]interface{} "Failed to delete goal"
// @Security BearerAuth
// @Router /goals/{id} [delete]
func (gc *GoalController) DeleteGoal(c *gin.Context) {
	goal := c.MustGet("goal").(*models.Goal)

	if err := gc.service.Delete(goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to delete goal",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Goal deleted successfully",
	})
}
