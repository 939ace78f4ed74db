package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fittrack/internal/mocks"
	"fittrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func googleTokenInfoServer(t *testing.T, status int, payload map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if payload != nil {
			json.NewEncoder(w).Encode(payload)
		}
	}))
}

func postGoogleAuth(controller *OauthController, token string) *httptest.ResponseRecorder {
	router := setupTestRouter()
	router.POST("/auth/google", controller.GoogleAuth)

	body, _ := json.Marshal(map[string]string{"token": token})
	req := httptest.NewRequest(http.MethodPost, "/auth/google", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGoogleAuthFirstSignInCreatesAccount(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	server := googleTokenInfoServer(t, http.StatusOK, map[string]interface{}{
		"email": "fathan@mail.com",
		"name":  "Fathan",
	})
	defer server.Close()

	userRepo := new(mocks.MockUserRepository)
	userRepo.On("FindByEmail", "fathan@mail.com").Return(nil, errors.New("record not found"))

	var createdUser models.User
	userRepo.On("CreateWithProfile", mock.AnythingOfType("*models.User"), mock.AnythingOfType("*models.UserProfile")).
		Run(func(args mock.Arguments) {
			createdUser = *args.Get(0).(*models.User)
		}).Return(nil)

	controller := NewOauthController(userRepo)
	controller.tokenInfoURL = server.URL

	// Real Google ID tokens run to a kilobyte, far past bcrypt's 72-byte
	// input limit; sign-in must not depend on hashing the token.
	longToken := strings.Repeat("a", 900)
	w := postGoogleAuth(controller, longToken)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.NotEmpty(t, response["access_token"])
	assert.Empty(t, createdUser.Password, "Google-only accounts carry no usable password")
	userRepo.AssertExpectations(t)
}

func TestGoogleAuthExistingAccount(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	server := googleTokenInfoServer(t, http.StatusOK, map[string]interface{}{
		"email": "fathan@mail.com",
	})
	defer server.Close()

	userRepo := new(mocks.MockUserRepository)
	user := models.User{Email: "fathan@mail.com"}
	user.ID = 4
	userRepo.On("FindByEmail", "fathan@mail.com").Return(&user, nil)

	controller := NewOauthController(userRepo)
	controller.tokenInfoURL = server.URL

	w := postGoogleAuth(controller, strings.Repeat("b", 1200))

	assert.Equal(t, http.StatusOK, w.Code)
	userRepo.AssertNotCalled(t, "CreateWithProfile", mock.Anything, mock.Anything)
}

func TestGoogleAuthRejectedToken(t *testing.T) {
	server := googleTokenInfoServer(t, http.StatusBadRequest, nil)
	defer server.Close()

	controller := NewOauthController(new(mocks.MockUserRepository))
	controller.tokenInfoURL = server.URL

	w := postGoogleAuth(controller, "bad-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
