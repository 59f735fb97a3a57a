// Package git provides git repository utilities for labinit. It uses the
// go-git library so generated projects can be initialized without a git CLI
// installation.
package git

import (
	"fmt"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// InitRepository initializes a new git repository at the given path.
func InitRepository(path string) error {
	if _, err := git.PlainInit(path, false); err != nil {
		return fmt.Errorf("initializing repository at %s: %w", path, err)
	}
	return nil
}

// IsRepository checks if path is within a git repository.
func IsRepository(path string) bool {
	_, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{
		DetectDotGit: true,
	})
	return err == nil
}

// InitialCommit stages all generated files and creates the first commit.
// Author name and email fall back to generic values when unset so commits
// succeed without global git configuration.
func InitialCommit(path, authorName, authorEmail string) error {
	repo, err := git.PlainOpen(path)
	if err != nil {
		return fmt.Errorf("opening repository at %s: %w", path, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}

	if err := worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}

	if authorName == "" {
		authorName = "labinit"
	}
	if authorEmail == "" {
		authorEmail = "labinit@localhost"
	}

	_, err = worktree.Commit("Initial commit", &git.CommitOptions{
		Author: &object.Signature{
			Name:  authorName,
			Email: authorEmail,
			When:  time.Now(),
		},
	})
	if err != nil {
		return fmt.Errorf("creating initial commit: %w", err)
	}

	return nil
}
