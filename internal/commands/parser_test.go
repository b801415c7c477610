package commands_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/epy0n0ff/comment-commands/internal/commands"
)

func TestParseCommands(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		bots     []string
		expected []commands.BotCommand
	}{
		{
			name: "command with args",
			text: "@bot cmd arg1 arg2",
			bots: []string{"bot"},
			expected: []commands.BotCommand{
				{Command: "cmd", Args: "arg1 arg2", Bot: "bot"},
			},
		},
		{
			name: "command without args",
			text: "@bot cmd",
			bots: []string{"bot"},
			expected: []commands.BotCommand{
				{Command: "cmd", Args: "", Bot: "bot"},
			},
		},
		{
			name: "crlf lines and plain comment",
			text: "@bot test_command test2\r\n@bot2 command2 3 4\r\n@bot2 command\r\nthis is a comment",
			bots: []string{"bot", "bot2"},
			expected: []commands.BotCommand{
				{Command: "test_command", Args: "test2", Bot: "bot"},
				{Command: "command2", Args: "3 4", Bot: "bot2"},
				{Command: "command", Args: "", Bot: "bot2"},
			},
		},
		{
			name: "grouped by bot order, not line order",
			text: "@second run b\n@first run a\n@second run c",
			bots: []string{"first", "second"},
			expected: []commands.BotCommand{
				{Command: "run", Args: "a", Bot: "first"},
				{Command: "run", Args: "b", Bot: "second"},
				{Command: "run", Args: "c", Bot: "second"},
			},
		},
		{
			name: "trailing args whitespace preserved",
			text: "@bot deploy  staging now ",
			bots: []string{"bot"},
			expected: []commands.BotCommand{
				{Command: "deploy", Args: " staging now ", Bot: "bot"},
			},
		},
		{
			name: "trailing newline",
			text: "@bot cmd\n",
			bots: []string{"bot"},
			expected: []commands.BotCommand{
				{Command: "cmd", Args: "", Bot: "bot"},
			},
		},
		{
			name:     "mention without space",
			text:     "@bot",
			bots:     []string{"bot"},
			expected: nil,
		},
		{
			name:     "mention followed by two spaces",
			text:     "@bot  cmd",
			bots:     []string{"bot"},
			expected: nil,
		},
		{
			name:     "mention followed by tab",
			text:     "@bot\tcmd",
			bots:     []string{"bot"},
			expected: nil,
		},
		{
			name:     "case sensitive",
			text:     "@Bot cmd",
			bots:     []string{"bot"},
			expected: nil,
		},
		{
			name:     "mention not at line start",
			text:     "hey @bot cmd",
			bots:     []string{"bot"},
			expected: nil,
		},
		{
			name:     "longer bot name does not match prefix bot",
			text:     "@bot2 cmd",
			bots:     []string{"bot"},
			expected: nil,
		},
		{
			name:     "empty text",
			text:     "",
			bots:     []string{"bot"},
			expected: nil,
		},
		{
			name:     "no bots",
			text:     "@bot cmd",
			bots:     nil,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := commands.ParseCommands(tt.text, tt.bots)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ParseCommands(%q) mismatch (-want +got):\n%s", tt.text, diff)
			}
		})
	}
}

func TestParseCommands_Deterministic(t *testing.T) {
	text := "@a one\r\n@b two x\nnoise\n@a three y z\n@b four"
	bots := []string{"b", "a"}
	botsCopy := append([]string(nil), bots...)

	first := commands.ParseCommands(text, bots)
	second := commands.ParseCommands(text, bots)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("ParseCommands() not deterministic (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(botsCopy, bots); diff != "" {
		t.Errorf("ParseCommands() mutated bots (-want +got):\n%s", diff)
	}
	if len(first) != 4 || first[0].Bot != "b" || first[2].Bot != "a" {
		t.Errorf("ParseCommands() unexpected order: %+v", first)
	}
}
