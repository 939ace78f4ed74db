package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseCoach produces coaching advice for one exercise type.
type ExerciseCoach interface {
	GenerateExerciseTips(ctx context.Context, exercise string) (string, error)
}

type TipsController struct {
	coach ExerciseCoach
}

func NewTipsController(coach ExerciseCoach) *TipsController {
	return &TipsController{coach: coach}
}

type tipsRequest struct {
	Exercise string `json:"exercise" binding:"required"`
}

// GetExerciseTips godoc
// @Summary Get exercise guidance
// @Description Ask the coaching model how to properly perform an exercise
// @Tags tips
// @Accept json
// @Produce json
// @Param exercise body tipsRequest true "Exercise type"
// @Success 200 {object} map[string]interface{} "Tips generated successfully"
// @Failure 400 {object} map[string]interface{} "Type of exercise is required"
// @Failure 502 {object} map[string]interface{} "Failed to generate tips"
// @Security BearerAuth
// @Router /tips [post]
func (tc *TipsController) GetExerciseTips(c *gin.Context) {
	var req tipsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Type of exercise is required",
			"error":   err.Error(),
		})
		return
	}

	result, err := tc.coach.GenerateExerciseTips(c.Request.Context(), req.Exercise)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{
			"status":  "error",
			"message": "Failed to generate tips",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Tips generated successfully",
		"data":    gin.H{"result": result},
	})
}
