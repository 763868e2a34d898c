package domain

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrNoData          = errors.New("no persisted data")
)
