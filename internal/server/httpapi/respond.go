// Package httpapi exposes the REST surface of the server over gin. All
// responses use a unified envelope: payloads as plain JSON objects, failures
// as {"error": {"code", "message"[, "details"]}}.
package httpapi

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrijs2005/taskdeck/internal/server/models"
)

const (
	codeValidationError    = "VALIDATION_ERROR"
	codeEmailExists        = "EMAIL_EXISTS"
	codeInvalidCredentials = "INVALID_CREDENTIALS"
	codeUnauthorized       = "UNAUTHORIZED"
	codeUserNotFound       = "USER_NOT_FOUND"
	codeTaskNotFound       = "TASK_NOT_FOUND"
	codeIntegrityError     = "INTEGRITY_ERROR"
	codeInternalError      = "INTERNAL_ERROR"
)

// respondError sends the unified error payload {"error": {"code", "message"}}.
func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": gin.H{"code": code, "message": message}})
}

// respondValidationError maps a binding failure to a 400 VALIDATION_ERROR.
// Field-level failures carry a per-field details object; anything else (bad
// JSON, wrong types) gets a generic message.
func respondValidationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(c, http.StatusBadRequest, codeValidationError, "invalid request body")
		return
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[strings.ToLower(fe.Field())] = validationMessage(fe)
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
		"code":    codeValidationError,
		"message": "validation failed",
		"details": details,
	}})
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	default:
		return "invalid value"
	}
}

// userView is the outward shape of an account. The credential hash is never
// part of any response.
type userView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(u *models.User) userView {
	return userView{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

// tokenResponse is returned by register and login.
type tokenResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        userView `json:"user"`
}

func newTokenResponse(token string, u *models.User) tokenResponse {
	return tokenResponse{AccessToken: token, TokenType: "bearer", User: newUserView(u)}
}

type taskView struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newTaskView(t *models.Task) taskView {
	return taskView{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func newTaskViews(tasks []*models.Task) []taskView {
	views := make([]taskView, 0, len(tasks))
	for _, t := range tasks {
		views = append(views, newTaskView(t))
	}
	return views
}
