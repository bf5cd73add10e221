package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskdeck/internal/common"
	"github.com/dmitrijs2005/taskdeck/internal/server/models"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTaskCreate(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := NewTaskService(db, rm)

	task, err := s.Create(context.Background(), "u-1", "buy milk", strPtr("2 liters"))
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.ID != "t-new" || task.UserID != "u-1" || task.Title != "buy milk" {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.Description == nil || *task.Description != "2 liters" {
		t.Fatalf("description not carried through: %+v", task.Description)
	}
	if task.Completed {
		t.Fatalf("new task must not be completed")
	}
}

func TestTaskList(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{t: &fakeTasksRepo{list: []*models.Task{
		{ID: "t-1", UserID: "u-1"},
		{ID: "t-2", UserID: "u-1"},
	}}}
	s := NewTaskService(db, rm)

	list, err := s.List(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(list) != 2 || list[0].ID != "t-1" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestTaskGet_NotFound(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{t: &fakeTasksRepo{byIDErr: common.ErrorNotFound}}
	s := NewTaskService(db, rm)

	if _, err := s.Get(context.Background(), "u-1", "t-missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestTaskUpdate_PartialFields(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	stored := &models.Task{
		ID:          "t-1",
		UserID:      "u-1",
		Title:       "old title",
		Description: strPtr("old description"),
		Completed:   false,
	}
	rm := &fakeRepoManager{t: &fakeTasksRepo{byID: stored}}
	s := NewTaskService(db, rm)

	task, err := s.Update(context.Background(), "u-1", "t-1", TaskUpdate{Completed: boolPtr(true)})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !task.Completed {
		t.Fatalf("completed flag not applied")
	}
	if task.Title != "old title" {
		t.Fatalf("omitted title must keep its stored value, got %q", task.Title)
	}
	if task.Description == nil || *task.Description != "old description" {
		t.Fatalf("omitted description must keep its stored value")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestTaskUpdate_AllFields(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectCommit()

	rm := &fakeRepoManager{t: &fakeTasksRepo{byID: &models.Task{ID: "t-1", UserID: "u-1", Title: "old"}}}
	s := NewTaskService(db, rm)

	task, err := s.Update(context.Background(), "u-1", "t-1", TaskUpdate{
		Title:       strPtr("new title"),
		Description: strPtr("new description"),
		Completed:   boolPtr(true),
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if task.Title != "new title" || task.Description == nil || *task.Description != "new description" || !task.Completed {
		t.Fatalf("unexpected task after update: %+v", task)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestTaskUpdate_NotFoundRollsBack(t *testing.T) {
	db, mock := newSQLMockDB(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	rm := &fakeRepoManager{t: &fakeTasksRepo{byIDErr: common.ErrorNotFound}}
	s := NewTaskService(db, rm)

	_, err := s.Update(context.Background(), "u-1", "t-missing", TaskUpdate{Title: strPtr("x")})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestTaskDelete(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	rm := &fakeRepoManager{t: &fakeTasksRepo{}}
	s := NewTaskService(db, rm)

	if err := s.Delete(context.Background(), "u-1", "t-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}

	rm.t.deleteErr = common.ErrorNotFound
	if err := s.Delete(context.Background(), "u-1", "t-missing"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
