package models

import "time"

// Task is a single todo item owned by exactly one user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description *string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
