package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration parsed from action inputs and environment
type Config struct {
	// GitHub API token for authentication
	GitHubToken string

	// Repository in format "owner/repo"
	Repository string

	// Path to the webhook event payload
	EventPath string

	// Bot names that commands may be addressed to, in priority order
	Bots []string

	// Optional YAML file listing additional bot names
	BotsFile string

	// GitHub Enterprise Server hostname, empty for GitHub.com
	GHHost string

	// Enable debug logging
	Debug bool
}

// botsFile is the layout of the optional bots YAML file
type botsFile struct {
	Bots []string `yaml:"bots"`
}

// ParseFromEnv parses configuration from environment variables
func ParseFromEnv() (*Config, error) {
	cfg := &Config{
		GitHubToken: os.Getenv("INPUT_GITHUB-TOKEN"),
		Repository:  os.Getenv("GITHUB_REPOSITORY"),
		EventPath:   os.Getenv("GITHUB_EVENT_PATH"),
		BotsFile:    os.Getenv("INPUT_BOTS-FILE"),
		GHHost:      strings.TrimSpace(os.Getenv("INPUT_GH-HOST")),
	}

	cfg.Bots = ParseBotList(os.Getenv("INPUT_BOTS"))

	if cfg.BotsFile != "" {
		fromFile, err := LoadBotsFile(cfg.BotsFile)
		if err != nil {
			return nil, err
		}
		cfg.Bots = mergeBots(cfg.Bots, fromFile)
	}

	// Parse debug flag
	debugStr := os.Getenv("INPUT_DEBUG")
	cfg.Debug = strings.ToLower(debugStr) == "true"

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseBotList splits a comma or newline separated list of bot names.
// Blank entries and a leading "@" are dropped.
func ParseBotList(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	var bots []string
	for _, f := range fields {
		name := strings.TrimPrefix(strings.TrimSpace(f), "@")
		if name != "" {
			bots = append(bots, name)
		}
	}
	return mergeBots(nil, bots)
}

// LoadBotsFile reads bot names from a YAML file of the form "bots: [name, ...]"
func LoadBotsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bots file: %w", err)
	}

	var f botsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse bots file %s: %w", path, err)
	}

	var bots []string
	for _, b := range f.Bots {
		if name := strings.TrimPrefix(strings.TrimSpace(b), "@"); name != "" {
			bots = append(bots, name)
		}
	}
	return bots, nil
}

// mergeBots appends extra to base, keeping first-seen order and dropping duplicates
func mergeBots(base, extra []string) []string {
	seen := make(map[string]bool, len(base)+len(extra))
	var merged []string
	for _, b := range append(append([]string(nil), base...), extra...) {
		if seen[b] {
			continue
		}
		seen[b] = true
		merged = append(merged, b)
	}
	return merged
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.GitHubToken == "" {
		return errors.New("GitHub token is required (INPUT_GITHUB-TOKEN)\n" +
			"  → Action: Set 'github-token' input in your workflow file\n" +
			"  → Example: github-token: ${{ secrets.GITHUB_TOKEN }}")
	}
	if c.Repository == "" {
		return errors.New("repository is required (GITHUB_REPOSITORY)\n" +
			"  → Action: This is automatically set by GitHub Actions\n" +
			"  → Ensure the action is running in a GitHub Actions workflow")
	}
	if !strings.Contains(c.Repository, "/") {
		return fmt.Errorf("repository must be in format owner/repo, got: %s\n"+
			"  → Action: Check GITHUB_REPOSITORY environment variable\n"+
			"  → Expected format: owner/repository-name", c.Repository)
	}
	if c.EventPath == "" {
		return errors.New("event path is required (GITHUB_EVENT_PATH)\n" +
			"  → Action: This is automatically set by GitHub Actions\n" +
			"  → Ensure the workflow is triggered by an issue_comment event")
	}
	if len(c.Bots) == 0 {
		return errors.New("at least one bot name is required (INPUT_BOTS)\n" +
			"  → Action: Set 'bots' input in your workflow file\n" +
			"  → Example: bots: release-bot, deploy-bot")
	}
	for _, b := range c.Bots {
		if strings.ContainsAny(b, " \t") {
			return fmt.Errorf("bot name must not contain whitespace, got: %q\n"+
				"  → Action: Check the 'bots' input or bots file", b)
		}
	}
	return validateGHHost(c.GHHost)
}

// validateGHHost checks that gh-host is a bare hostname with an optional port
func validateGHHost(host string) error {
	if host == "" {
		return nil
	}

	if scheme, rest, ok := strings.Cut(host, "://"); ok {
		return fmt.Errorf("gh-host must not include protocol (%s://)\n"+
			"  → Action: Use the hostname only\n"+
			"  → Example: gh-host: %s", scheme, rest)
	}

	if name, _, ok := strings.Cut(host, "/"); ok {
		return fmt.Errorf("gh-host must not include path\n"+
			"  → Action: Use the hostname only\n"+
			"  → Example: gh-host: %s", name)
	}

	if name, portStr, ok := strings.Cut(host, ":"); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("gh-host has invalid port %q\n"+
				"  → Action: Use a port between 1 and 65535\n"+
				"  → Example: gh-host: %s:8443", portStr, name)
		}
	}

	return nil
}

// Owner returns the repository owner from Repository field
func (c *Config) Owner() string {
	parts := strings.Split(c.Repository, "/")
	if len(parts) != 2 {
		return ""
	}
	return parts[0]
}

// Repo returns the repository name from Repository field
func (c *Config) Repo() string {
	parts := strings.Split(c.Repository, "/")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
