package github

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/bjtmarts/transfer_tracker_app/internal/apperrors"
	"github.com/bjtmarts/transfer_tracker_app/internal/core/ports/repositories"
	gogithub "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

// RemoteStore pushes files to a GitHub repository through the Contents API.
// An upsert is a read-modify-write: fetch the current blob SHA if the file
// exists (404 is fine), then create or update conditioned on that SHA.
type RemoteStore struct {
	client *gogithub.Client
	owner  string
	repo   string
	branch string
}

// NewRemoteStore builds a store for "owner/repo" using a personal access
// token. Missing configuration is reported at construction time so callers
// can surface "sync not configured" before attempting a push.
func NewRemoteStore(ctx context.Context, ownerRepo, token, branch string) (*RemoteStore, error) {
	owner, repo, ok := strings.Cut(ownerRepo, "/")
	if !ok || owner == "" || repo == "" {
		return nil, fmt.Errorf("invalid owner/repo %q: %w", ownerRepo, apperrors.ErrRemoteSync)
	}
	if token == "" {
		return nil, fmt.Errorf("remote auth token not configured: %w", apperrors.ErrRemoteSync)
	}
	tc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	return NewRemoteStoreWithClient(gogithub.NewClient(tc), owner, repo, branch), nil
}

// NewRemoteStoreWithClient injects a preconfigured client. Used by tests to
// point at a local server.
func NewRemoteStoreWithClient(client *gogithub.Client, owner, repo, branch string) *RemoteStore {
	if branch == "" {
		branch = "main"
	}
	return &RemoteStore{client: client, owner: owner, repo: repo, branch: branch}
}

// UpsertFile implements repositories.RemoteStore.
func (s *RemoteStore) UpsertFile(ctx context.Context, path string, content []byte, commitMessage string) (*repositories.RemoteCommit, error) {
	var sha *string
	existing, _, resp, err := s.client.Repositories.GetContents(ctx, s.owner, s.repo, path,
		&gogithub.RepositoryContentGetOptions{Ref: s.branch})
	if err != nil {
		if resp == nil || resp.StatusCode != http.StatusNotFound {
			return nil, fmt.Errorf("read remote file %s: %w: %w", path, apperrors.ErrRemoteSync, err)
		}
	} else if existing != nil {
		sha = existing.SHA
	}

	opts := &gogithub.RepositoryContentFileOptions{
		Message: gogithub.String(commitMessage),
		Content: content,
		Branch:  gogithub.String(s.branch),
		SHA:     sha,
	}

	var result *gogithub.RepositoryContentResponse
	if sha != nil {
		result, _, err = s.client.Repositories.UpdateFile(ctx, s.owner, s.repo, path, opts)
	} else {
		result, _, err = s.client.Repositories.CreateFile(ctx, s.owner, s.repo, path, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("write remote file %s: %w: %w", path, apperrors.ErrRemoteSync, err)
	}

	return &repositories.RemoteCommit{
		SHA:     result.Commit.GetSHA(),
		HTMLURL: result.GetContent().GetHTMLURL(),
	}, nil
}
