package webhook

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/google/go-github/v57/github"
)

// ActionDeleted is the issue_comment action for a removed comment
const ActionDeleted = "deleted"

// Webhook is the subset of an issue_comment event needed to extract commands
type Webhook struct {
	// Author is the login of the user who triggered the event
	Author string `json:"author"`

	// Action is the event action (created/edited/deleted)
	Action string `json:"action"`

	// Comment is the raw comment body
	Comment string `json:"comment"`
}

// IsDeletion reports whether the event removed the comment
func (w *Webhook) IsDeletion() bool {
	return w.Action == ActionDeleted
}

// FromIssueCommentEvent builds a Webhook from a decoded go-github event
func FromIssueCommentEvent(event *github.IssueCommentEvent) (*Webhook, error) {
	if event == nil {
		return nil, errors.New("event is nil")
	}
	if event.Comment == nil {
		return nil, errors.New("event has no comment")
	}

	// Sender is the actor; fall back to the comment author for trimmed payloads
	author := event.GetSender().GetLogin()
	if author == "" {
		author = event.GetComment().GetUser().GetLogin()
	}
	if author == "" {
		return nil, errors.New("event has no sender")
	}

	return &Webhook{
		Author:  author,
		Action:  event.GetAction(),
		Comment: event.GetComment().GetBody(),
	}, nil
}

// ParseIssueCommentEvent decodes a raw issue_comment webhook payload
func ParseIssueCommentEvent(payload []byte) (*Webhook, error) {
	event := &github.IssueCommentEvent{}
	if err := json.Unmarshal(payload, event); err != nil {
		return nil, fmt.Errorf("failed to decode issue_comment event: %w", err)
	}
	return FromIssueCommentEvent(event)
}

// LoadFromFile reads an issue_comment payload, typically from GITHUB_EVENT_PATH
func LoadFromFile(path string) (*Webhook, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event file: %w", err)
	}
	return ParseIssueCommentEvent(payload)
}
