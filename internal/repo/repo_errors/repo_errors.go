package repo_errors

import "errors"

var (
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")
	ErrConflict      = errors.New("entity state doesn't allow the operation")
)
