package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"fittrack/internal/models"
	"fittrack/internal/repository"

	"github.com/gin-gonic/gin"
)

type OauthController struct {
	users        repository.UserRepository
	tokenInfoURL string
}

func NewOauthController(users repository.UserRepository) *OauthController {
	return &OauthController{
		users:        users,
		tokenInfoURL: "https://oauth2.googleapis.com/tokeninfo",
	}
}

// GoogleAuth godoc
// @Summary Authenticate with Google
// @Description Verify a Google ID token, create the account on first sign-in, and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param token body object true "Google ID token"
// @Success 200 {object} map[string]interface{} "Google authentication successful"
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 401 {object} map[string]interface{} "Invalid Google ID token"
// @Router /auth/google [post]
func (oc *OauthController) GoogleAuth(c *gin.Context) {
	var authRequest struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&authRequest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	resp, err := http.Get(oc.tokenInfoURL + "?id_token=" + authRequest.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to verify token with Google",
			"error":   err.Error(),
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Invalid Google ID token",
			"error":   "Token verification failed",
		})
		return
	}

	var tokenInfo map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&tokenInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to decode token info",
			"error":   err.Error(),
		})
		return
	}

	email, ok := tokenInfo["email"].(string)
	if !ok || email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Email not found in token",
		})
		return
	}
	name, _ := tokenInfo["name"].(string)
	if name == "" {
		name = email
	}

	user, err := oc.users.FindByEmail(email)
	if err != nil {
		// First Google sign-in: create the account. No password is stored,
		// these accounts log in via Google only and a bcrypt compare
		// against an empty hash can never succeed.
		newUser := models.User{
			Email:    email,
			Password: "",
		}
		profile := models.UserProfile{
			Name:        name,
			DateOfBirth: time.Now(),
		}
		if err := oc.users.CreateWithProfile(&newUser, &profile); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"status":  "error",
				"message": "Failed to create user account",
				"error":   err.Error(),
			})
			return
		}
		user = &newUser
	}

	tokenString, err := signToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "success",
		"message":      "Google authentication successful",
		"access_token": tokenString,
	})
}
