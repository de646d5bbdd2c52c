package repository

import "errors"

var (
	ErrFailedToGet     = errors.New("failed to get task")
	ErrFailedToList    = errors.New("failed to list tasks")
	ErrFailedToUpdate  = errors.New("failed to update task")
	ErrNothingToUpdate = errors.New("no fields to update")
	ErrNotFound        = errors.New("task not found")
)
