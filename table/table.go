package table

import "errors"

var (
	ErrDuplicateKey = errors.New("table: duplicate key")
	ErrNotFound     = errors.New("table: key not found")
)
