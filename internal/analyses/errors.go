package analyses

import "errors"

var (
	ErrNotFound            = errors.New("not found")
	ErrEmptyText           = errors.New("text is empty")
	ErrClientNotConfigured = errors.New("detection client not configured")
)
