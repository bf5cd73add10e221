package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskdeck/internal/common"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, token, err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			respondError(c, http.StatusConflict, codeEmailExists, "email already registered")
		case errors.Is(err, common.ErrPasswordTooLong):
			// min/max tags count characters; multi-byte passwords can
			// still exceed the 72-byte hashing limit.
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{
				"code":    codeValidationError,
				"message": "validation failed",
				"details": gin.H{"password": "must be at most 72 bytes"},
			}})
		case errors.Is(err, common.ErrorConstraint):
			respondError(c, http.StatusBadRequest, codeIntegrityError, "database integrity error")
		default:
			s.logger.Error(c.Request.Context(), "registration failed", "error", err)
			respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
		}
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "user_id", user.ID)
	c.JSON(http.StatusCreated, newTokenResponse(token, user))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondError(c, http.StatusUnauthorized, codeInvalidCredentials, "incorrect email or password")
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, newTokenResponse(token, user))
}

// handleLogout is a no-op: tokens are stateless and stay valid until they
// expire. Clients discard their copy.
func (s *Server) handleLogout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged out. Please remove the token from client storage.",
	})
}
