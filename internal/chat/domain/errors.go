package domain

import "errors"

var ErrNoData = errors.New("no persisted data")
