package middleware

import (
	"net/http"
	"strconv"

	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

// The ownership guards load the record named by the :id path parameter and
// reject the request unless it belongs to the authenticated user. Handlers
// behind a guard can assume ownership is already proven and read the loaded
// record from the context.

func ActivityOwner(repo repository.ActivityRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid activity ID",
				"error":   "ID must be a valid positive integer",
			})
			c.Abort()
			return
		}

		activity, err := repo.FindByID(uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Activity not found",
				"error":   "No activity found with the given ID",
			})
			c.Abort()
			return
		}

		if activity.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "You are not authorized",
				"error":   "Activity belongs to another user",
			})
			c.Abort()
			return
		}

		c.Set("activity", activity)
		c.Next()
	}
}

func GoalOwner(repo repository.GoalRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.MustGet("user_id").(uint)

		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"status":  "error",
				"message": "Invalid goal ID",
				"error":   "ID must be a valid positive integer",
			})
			c.Abort()
			return
		}

		goal, err := repo.FindByID(uint(id))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{
				"status":  "error",
				"message": "Goal not found",
				"error":   "No goal found with the given ID",
			})
			c.Abort()
			return
		}

		if goal.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "You are not authorized",
				"error":   "Goal belongs to another user",
			})
			c.Abort()
			return
		}

		c.Set("goal", goal)
		c.Next()
	}
}
