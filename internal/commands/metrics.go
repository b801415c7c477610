package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/epy0n0ff/comment-commands/internal/webhook"
)

// ExtractionEvent represents structured metrics data for observability
type ExtractionEvent struct {
	// EventType is always "commands_extracted"
	EventType string `json:"event_type"`

	// Timestamp is the event timestamp in ISO 8601 UTC format
	Timestamp string `json:"timestamp"`

	Actor  string   `json:"actor"`
	Action string   `json:"action"`
	Bots   []string `json:"bots"`

	// CommandsFound is the number of commands extracted
	CommandsFound int `json:"commands_found"`

	// Outcome is one of "extracted", "self_trigger", "ignored",
	// "insufficient_permission" or "permission_query_failed"
	Outcome string `json:"outcome"`

	// Success indicates whether the guards passed
	Success bool `json:"success"`
}

// NewExtractionEvent creates an ExtractionEvent from the result of ExtractCommands
func NewExtractionEvent(hook *webhook.Webhook, bots []string, cmds []BotCommand, err error, at time.Time) *ExtractionEvent {
	return &ExtractionEvent{
		EventType:     "commands_extracted",
		Timestamp:     at.UTC().Format(time.RFC3339),
		Actor:         hook.Author,
		Action:        hook.Action,
		Bots:          bots,
		CommandsFound: len(cmds),
		Outcome:       outcome(err),
		Success:       err == nil,
	}
}

func outcome(err error) string {
	var permErr *ErrInsufficientPermission
	switch {
	case err == nil:
		return "extracted"
	case errors.Is(err, ErrSelfTrigger):
		return "self_trigger"
	case errors.Is(err, ErrEventIgnored):
		return "ignored"
	case errors.As(err, &permErr):
		return "insufficient_permission"
	default:
		return "permission_query_failed"
	}
}

// LogMetrics writes the event as a GitHub Actions notice
// Format: ::notice::METRICS:{json}
func LogMetrics(w io.Writer, event *ExtractionEvent) error {
	jsonBytes, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	if _, err := fmt.Fprintf(w, "::notice::METRICS:%s\n", string(jsonBytes)); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}
