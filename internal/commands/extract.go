package commands

import (
	"context"
	"fmt"
	"slices"

	"github.com/epy0n0ff/comment-commands/internal/github"
	"github.com/epy0n0ff/comment-commands/internal/webhook"
)

// ExtractCommands returns the bot commands in a webhook comment.
// It checks, in order:
// 1. the author is not one of the bots
// 2. the comment was not deleted
// 3. the author has at least maintain permission
// and fails on the first check that does not hold. The permission lookup
// error is wrapped and returned without retry.
func ExtractCommands(ctx context.Context, hook *webhook.Webhook, bots []string, checker PermissionChecker) ([]BotCommand, error) {
	// Prevent bots from triggering each other in a loop
	if slices.Contains(bots, hook.Author) {
		return nil, fmt.Errorf("%s: %w", hook.Author, ErrSelfTrigger)
	}

	if hook.IsDeletion() {
		return nil, ErrEventIgnored
	}

	level, err := checker.GetUserPermission(ctx, hook.Author)
	if err != nil {
		return nil, fmt.Errorf("failed to check permissions for %s: %w", hook.Author, err)
	}

	if level < github.MinimumCommandPermission {
		return nil, NewErrInsufficientPermission(hook.Author, level)
	}

	return ParseCommands(hook.Comment, bots), nil
}
