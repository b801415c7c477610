package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/epy0n0ff/comment-commands/internal/commands"
	"github.com/epy0n0ff/comment-commands/internal/config"
	"github.com/epy0n0ff/comment-commands/internal/github"
	"github.com/epy0n0ff/comment-commands/internal/webhook"
)

func main() {
	if err := run(); err != nil {
		log.Printf("::error::%v", err)
		os.Exit(1)
	}
}

func run() error {
	// Validate we're running in GitHub Actions environment
	if os.Getenv("GITHUB_ACTIONS") != "true" {
		log.Println("Warning: Not running in GitHub Actions environment")
		log.Println("This action is designed to run as a GitHub Action")
	}

	cfg, err := config.ParseFromEnv()
	if err != nil {
		return fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.Debug {
		log.Println("Debug mode enabled")
		log.Printf("Configuration: Repo=%s, Bots=%s, Event=%s", cfg.Repository, strings.Join(cfg.Bots, ","), cfg.EventPath)
	}

	hook, err := webhook.LoadFromFile(cfg.EventPath)
	if err != nil {
		return fmt.Errorf("failed to load webhook event: %w", err)
	}

	client, err := github.NewClient(cfg.GitHubToken, cfg.Owner(), cfg.Repo(), cfg.GHHost)
	if err != nil {
		return fmt.Errorf("failed to create GitHub client: %w", err)
	}

	return process(context.Background(), os.Stdout, hook, cfg.Bots, client, cfg.Debug)
}

// ActionOutput represents the final output of the action
type ActionOutput struct {
	Count    int                   `json:"count"`
	Commands []commands.BotCommand `json:"commands"`
	Skipped  string                `json:"skipped,omitempty"`
}

// process runs the extraction for one webhook and writes the action outputs.
// Guard rejections are reported as notices and are not errors.
func process(ctx context.Context, w io.Writer, hook *webhook.Webhook, bots []string, checker commands.PermissionChecker, debug bool) error {
	cmds, err := commands.ExtractCommands(ctx, hook, bots, checker)

	if mErr := commands.LogMetrics(w, commands.NewExtractionEvent(hook, bots, cmds, err, time.Now())); mErr != nil {
		log.Printf("::warning::Failed to log metrics: %v", mErr)
	}

	output := &ActionOutput{Commands: []commands.BotCommand{}}
	switch {
	case err == nil:
		output.Commands = append(output.Commands, cmds...)
		output.Count = len(cmds)
	case commands.IsRejection(err):
		log.Printf("::notice::Skipping comment: %v", err)
		output.Skipped = err.Error()
	default:
		return err
	}

	if debug {
		for i, c := range output.Commands {
			log.Printf("[%d/%d] @%s %s %q", i+1, len(output.Commands), c.Bot, c.Command, c.Args)
		}
	}

	return outputResult(w, output)
}

// outputResult outputs the action results in GitHub Actions format
func outputResult(w io.Writer, output *ActionOutput) error {
	jsonCommands, err := json.Marshal(output.Commands)
	if err != nil {
		return fmt.Errorf("failed to marshal commands: %w", err)
	}

	if err := setOutput(w, "count", fmt.Sprint(output.Count)); err != nil {
		return err
	}
	if err := setOutput(w, "commands", string(jsonCommands)); err != nil {
		return err
	}

	// Also output JSON for debugging
	jsonOutput, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		log.Printf("Warning: failed to marshal output as JSON: %v", err)
		return nil
	}
	fmt.Fprintf(w, "\nResults:\n%s\n", string(jsonOutput))
	return nil
}

// setOutput appends to $GITHUB_OUTPUT when present, falling back to the
// legacy ::set-output workflow command
func setOutput(w io.Writer, name, value string) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		fmt.Fprintf(w, "::set-output name=%s::%s\n", name, value)
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open GITHUB_OUTPUT: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%s=%s\n", name, value); err != nil {
		return fmt.Errorf("failed to write output %s: %w", name, err)
	}
	return nil
}
