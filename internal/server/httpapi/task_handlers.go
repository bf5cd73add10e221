package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskdeck/internal/common"
	"github.com/dmitrijs2005/taskdeck/internal/server/services"
)

type createTaskRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=500"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
}

type updateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=500"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Completed   *bool   `json:"completed"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "authentication required")
		return
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	task, err := s.tasks.Create(c.Request.Context(), user.ID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, common.ErrorConstraint) {
			respondError(c, http.StatusBadRequest, codeIntegrityError, "database integrity error")
			return
		}
		s.logger.Error(c.Request.Context(), "error creating task", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
		return
	}

	c.JSON(http.StatusCreated, newTaskView(task))
}

func (s *Server) handleListTasks(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "authentication required")
		return
	}

	tasks, err := s.tasks.List(c.Request.Context(), user.ID)
	if err != nil {
		s.logger.Error(c.Request.Context(), "error listing tasks", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, newTaskViews(tasks))
}

func (s *Server) handleGetTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "authentication required")
		return
	}

	task, err := s.tasks.Get(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, codeTaskNotFound, "task not found")
			return
		}
		s.logger.Error(c.Request.Context(), "error fetching task", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, newTaskView(task))
}

func (s *Server) handleUpdateTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "authentication required")
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	task, err := s.tasks.Update(c.Request.Context(), user.ID, c.Param("id"), services.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, codeTaskNotFound, "task not found")
			return
		}
		if errors.Is(err, common.ErrorConstraint) {
			respondError(c, http.StatusBadRequest, codeIntegrityError, "database integrity error")
			return
		}
		s.logger.Error(c.Request.Context(), "error updating task", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
		return
	}

	c.JSON(http.StatusOK, newTaskView(task))
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, codeUnauthorized, "authentication required")
		return
	}

	if err := s.tasks.Delete(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondError(c, http.StatusNotFound, codeTaskNotFound, "task not found")
			return
		}
		s.logger.Error(c.Request.Context(), "error deleting task", "error", err)
		respondError(c, http.StatusInternalServerError, codeInternalError, "internal server error")
		return
	}

	c.Status(http.StatusNoContent)
}
