package services

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/taskdeck/internal/dbx"
	"github.com/dmitrijs2005/taskdeck/internal/server/models"
	"github.com/dmitrijs2005/taskdeck/internal/server/repositories/repomanager"
)

// TaskUpdate carries the optional fields of a partial task update.
// Nil fields keep their stored values.
type TaskUpdate struct {
	Title       *string
	Description *string
	Completed   *bool
}

// TaskService implements ownership-scoped task CRUD. The user id always
// comes from the authenticated request, never from the payload.
type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

func (s *TaskService) Create(ctx context.Context, userID, title string, description *string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.Create(ctx, &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
	})
}

func (s *TaskService) List(ctx context.Context, userID string) ([]*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*models.Task, error) {
	repo := s.repomanager.Tasks(s.db)
	return repo.GetByID(ctx, userID, taskID)
}

// Update applies a partial update inside a transaction so the read and the
// write see the same row.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, upd TaskUpdate) (*models.Task, error) {

	var task *models.Task

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Tasks(tx)

		current, err := repo.GetByID(ctx, userID, taskID)
		if err != nil {
			return err
		}

		if upd.Title != nil {
			current.Title = *upd.Title
		}
		if upd.Description != nil {
			current.Description = upd.Description
		}
		if upd.Completed != nil {
			current.Completed = *upd.Completed
		}

		task, err = repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	repo := s.repomanager.Tasks(s.db)
	return repo.Delete(ctx, userID, taskID)
}
