package github

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client defines the interface for GitHub API operations
type Client interface {
	// GetUserPermission returns the repository permission level of a user
	GetUserPermission(ctx context.Context, username string) (PermissionLevel, error)
}

// ClientImpl is the concrete implementation using go-github
type ClientImpl struct {
	client *github.Client
	owner  string
	repo   string
}

// NewClient creates a new GitHub API client
func NewClient(token, owner, repo, ghHost string) (Client, error) {
	if token == "" {
		return nil, errors.New("GitHub token is required")
	}
	if owner == "" {
		return nil, errors.New("owner is required")
	}
	if repo == "" {
		return nil, errors.New("repo is required")
	}

	ctx := context.Background()
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	var ghClient *github.Client
	var err error

	if ghHost != "" {
		// GitHub Enterprise Server
		baseURL := "https://" + ghHost
		uploadURL := "https://" + ghHost

		ghClient, err = github.NewClient(tc).WithEnterpriseURLs(baseURL, uploadURL)
		if err != nil {
			return nil, fmt.Errorf("failed to create GitHub Enterprise client for %s: %w", ghHost, err)
		}
	} else {
		ghClient = github.NewClient(tc)
	}

	return NewClientFromGitHub(ghClient, owner, repo), nil
}

// NewClientFromGitHub wraps an already configured go-github client
func NewClientFromGitHub(client *github.Client, owner, repo string) *ClientImpl {
	return &ClientImpl{
		client: client,
		owner:  owner,
		repo:   repo,
	}
}

// GetUserPermission queries the collaborator permission endpoint.
// Transport, status and decoding errors are returned to the caller as-is.
func (c *ClientImpl) GetUserPermission(ctx context.Context, username string) (PermissionLevel, error) {
	if username == "" {
		return PermissionNone, errors.New("username is required")
	}

	u := fmt.Sprintf("repos/%v/%v/collaborators/%v/permission",
		url.PathEscape(c.owner), url.PathEscape(c.repo), url.PathEscape(username))
	req, err := c.client.NewRequest("GET", u, nil)
	if err != nil {
		return PermissionNone, err
	}

	perm := new(permissionResponse)
	if _, err := c.client.Do(ctx, req, perm); err != nil {
		return PermissionNone, err
	}

	return perm.level(), nil
}
