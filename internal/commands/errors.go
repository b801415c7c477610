package commands

import (
	"errors"
	"fmt"

	"github.com/epy0n0ff/comment-commands/internal/github"
)

// ErrSelfTrigger is returned when the comment author is one of the bots
var ErrSelfTrigger = errors.New("bots cannot trigger commands")

// ErrEventIgnored is returned when the comment was deleted
var ErrEventIgnored = errors.New("comment deleted")

// ErrInsufficientPermission is returned when a user lacks required permissions to issue commands
type ErrInsufficientPermission struct {
	Username string
	Level    github.PermissionLevel
	Required github.PermissionLevel
}

func (e *ErrInsufficientPermission) Error() string {
	return fmt.Sprintf("insufficient permissions: user '%s' cannot trigger commands\n"+
		"  → Current permission level: %s\n"+
		"  → Required: %s or admin access to repository",
		e.Username, e.Level, e.Required)
}

// NewErrInsufficientPermission creates a new insufficient permission error
func NewErrInsufficientPermission(username string, level github.PermissionLevel) *ErrInsufficientPermission {
	return &ErrInsufficientPermission{
		Username: username,
		Level:    level,
		Required: github.MinimumCommandPermission,
	}
}

// IsRejection reports whether err is a guard rejection rather than a failure.
// Rejections mean the comment should be ignored; anything else is an error.
func IsRejection(err error) bool {
	var permErr *ErrInsufficientPermission
	return errors.Is(err, ErrSelfTrigger) ||
		errors.Is(err, ErrEventIgnored) ||
		errors.As(err, &permErr)
}
