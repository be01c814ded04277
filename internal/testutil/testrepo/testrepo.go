// SPDX-License-Identifier: AGPL-3.0-or-later

// Package testrepo builds throwaway git repositories for tests.
package testrepo

import (
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Init creates an empty repository in a temp directory and commits the
// given messages in order, oldest first. It returns the worktree path, the
// repository and the commit hashes in the same order as the messages.
func Init(t *testing.T, messages ...string) (string, *git.Repository, []plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repository: %v", err)
	}

	hashes := make([]plumbing.Hash, 0, len(messages))
	for _, message := range messages {
		hashes = append(hashes, AddCommit(t, repo, message))
	}
	return dir, repo, hashes
}

// AddCommit creates an empty commit with the given message.
func AddCommit(t *testing.T, repo *git.Repository, message string) plumbing.Hash {
	t.Helper()

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	hash, err := wt.Commit(message, &git.CommitOptions{
		AllowEmptyCommits: true,
		Author:            signature(),
		Committer:         signature(),
	})
	if err != nil {
		t.Fatalf("commit %q: %v", message, err)
	}
	return hash
}

// AddTag creates an annotated tag pointing at the given commit.
func AddTag(t *testing.T, repo *git.Repository, name string, target plumbing.Hash) {
	t.Helper()

	_, err := repo.CreateTag(name, target, &git.CreateTagOptions{
		Tagger:  signature(),
		Message: name,
	})
	if err != nil {
		t.Fatalf("tag %s: %v", name, err)
	}
}

// AddLightweightTag creates a non-annotated tag pointing at the given commit.
func AddLightweightTag(t *testing.T, repo *git.Repository, name string, target plumbing.Hash) {
	t.Helper()

	if _, err := repo.CreateTag(name, target, nil); err != nil {
		t.Fatalf("lightweight tag %s: %v", name, err)
	}
}

func signature() *object.Signature {
	return &object.Signature{
		Name:  "name",
		Email: "email@example.com",
		When:  time.Now(),
	}
}
