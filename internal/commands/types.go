package commands

import (
	"context"

	"github.com/epy0n0ff/comment-commands/internal/github"
)

// BotCommand represents one command line addressed to a bot in a comment
type BotCommand struct {
	// Command is the first token after the @bot mention
	Command string `json:"command"`

	// Args is the rest of the line after the command, possibly empty
	Args string `json:"args"`

	// Bot is the bot name the line was addressed to
	Bot string `json:"bot"`
}

// PermissionChecker looks up a user's repository permission level
type PermissionChecker interface {
	GetUserPermission(ctx context.Context, username string) (github.PermissionLevel, error)
}
