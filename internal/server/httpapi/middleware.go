package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskdeck/internal/common"
	"github.com/dmitrijs2005/taskdeck/internal/server/auth"
	"github.com/dmitrijs2005/taskdeck/internal/server/models"
)

const currentUserKey = "currentUser"

// requireAuth validates the bearer token and loads the account behind its
// subject into the request context. Handlers downstream read the identity
// via currentUser and never from the request payload.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := bearerToken(c.GetHeader("Authorization"))
		if tokenStr == "" {
			respondError(c, http.StatusUnauthorized, codeUnauthorized, "authentication required")
			c.Abort()
			return
		}

		userID, err := auth.GetUserIDFromToken(tokenStr, s.jwtSecret, s.jwtMethod)
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, common.ErrTokenExpired) {
				msg = "token has expired"
			}
			respondError(c, http.StatusUnauthorized, codeUnauthorized, msg)
			c.Abort()
			return
		}

		user, err := s.users.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				respondError(c, http.StatusNotFound, codeUserNotFound, "user not found")
			} else {
				s.logger.Error(c.Request.Context(), "error loading token subject", "error", err)
				respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
			}
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// currentUser returns the account placed in the context by requireAuth.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	return user, ok
}
