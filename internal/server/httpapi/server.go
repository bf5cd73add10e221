package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/taskdeck/internal/logging"
	"github.com/dmitrijs2005/taskdeck/internal/server/config"
	"github.com/dmitrijs2005/taskdeck/internal/server/models"
	"github.com/dmitrijs2005/taskdeck/internal/server/services"
)

// AuthService covers the account operations the HTTP layer needs.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// TaskService covers the task operations the HTTP layer needs. The user id
// argument is always the authenticated owner.
type TaskService interface {
	Create(ctx context.Context, userID, title string, description *string) (*models.Task, error)
	List(ctx context.Context, userID string) ([]*models.Task, error)
	Get(ctx context.Context, userID, taskID string) (*models.Task, error)
	Update(ctx context.Context, userID, taskID string, upd services.TaskUpdate) (*models.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

// Server wires services into a gin engine and runs it.
type Server struct {
	addr      string
	jwtSecret []byte
	jwtMethod string
	logger    logging.Logger
	users     AuthService
	tasks     TaskService
	engine    *gin.Engine
}

func NewServer(cfg *config.Config, logger logging.Logger, users AuthService, tasks TaskService) *Server {
	s := &Server{
		addr:      cfg.EndpointAddrHTTP,
		jwtSecret: []byte(cfg.SecretKey),
		jwtMethod: cfg.JWTAlgorithm,
		logger:    logger,
		users:     users,
		tasks:     tasks,
	}
	s.engine = s.setupRouter()
	return s
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Todo API",
			"version": "1.0.0",
		})
	})
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"api_version": "v1",
		})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)
		api.POST("/auth/logout", s.handleLogout)

		authed := api.Group("")
		authed.Use(s.requireAuth())
		{
			authed.POST("/tasks", s.handleCreateTask)
			authed.GET("/tasks", s.handleListTasks)
			authed.GET("/tasks/:id", s.handleGetTask)
			authed.PUT("/tasks/:id", s.handleUpdateTask)
			authed.DELETE("/tasks/:id", s.handleDeleteTask)
		}
	}

	return r
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(ctx, "starting http server", "addr", s.addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info(ctx, "shutting down http server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
