// Package repository defines error values that are reused across multiple
// repositories. These sentinels allow higher layers such as handlers to
// distinguish between failure scenarios without inspecting driver errors:
// not-found maps to HTTP 404 and unique-constraint conflicts map to 409.
package repository

import (
	"errors"
	"strings"
)

// ErrUserNotFound is returned when no user row matches the given id or email.
var ErrUserNotFound = errors.New("user not found")

// ErrArticleNotFound is returned when no article row matches the given id.
var ErrArticleNotFound = errors.New("article not found")

// ErrEmailExists is returned when a create or update would violate the
// unique index on users.email.
var ErrEmailExists = errors.New("email already exists")

// ErrTitleExists is returned when a create or update would violate the
// unique index on articles.title.
var ErrTitleExists = errors.New("title already exists")

// isDuplicate reports whether err is a unique-constraint violation. MySQL
// reports error 1062, the sqlite drivers report "UNIQUE constraint failed".
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "1062") || strings.Contains(msg, "UNIQUE constraint failed")
}
