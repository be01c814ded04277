// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitrepo reads commit history and version tags out of a local git
// repository. It is the only package that touches git; everything it
// returns is a plain value the pure aggregation core can consume.
package gitrepo

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/rs/zerolog"

	"github.com/bartekus/semrel/pkg/changes"
)

// Repository wraps an opened git repository.
type Repository struct {
	repo *git.Repository
	log  zerolog.Logger
}

// Open opens the repository at path, searching parent directories for the
// .git directory the way the git CLI does.
func Open(path string, log zerolog.Logger) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("opening repository at %s: %w", path, err)
	}
	log.Debug().Str("path", path).Msg("opened repository")
	return &Repository{repo: repo, log: log}, nil
}

// Commits walks the history from HEAD, newest first, and returns every
// reachable commit with the short names of the tags pointing at it. An
// empty repository (no HEAD yet) is an error.
func (r *Repository) Commits() ([]changes.Commit, error) {
	return r.commitsUntil(plumbing.ZeroHash)
}

// CommitsSinceLastVersion returns the commits made after the latest version
// tag, newest first. The tagged commit itself is excluded. When the
// repository has no version tags the full history is returned.
func (r *Repository) CommitsSinceLastVersion() ([]changes.Commit, error) {
	tag, err := r.LatestVersionTag()
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return r.Commits()
	}
	r.log.Debug().Str("tag", tag.Name).Msg("bounding history at version tag")
	return r.commitsUntil(tag.Hash)
}

func (r *Repository) commitsUntil(stop plumbing.Hash) ([]changes.Commit, error) {
	head, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolving HEAD: %w", err)
	}

	tags, err := r.tagsByCommit()
	if err != nil {
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("walking history: %w", err)
	}
	defer iter.Close()

	var out []changes.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if c.Hash == stop {
			return storer.ErrStop
		}
		out = append(out, changes.Commit{
			Hash:    c.Hash.String(),
			Message: c.Message,
			Tags:    tags[c.Hash],
		})
		return nil
	})
	if err != nil && !errors.Is(err, storer.ErrStop) {
		return nil, fmt.Errorf("walking history: %w", err)
	}

	r.log.Debug().Int("commits", len(out)).Msg("collected commits")
	return out, nil
}

// tagsByCommit maps each tagged commit to the short names of its tags,
// resolving annotated tags to the commit they ultimately point at.
func (r *Repository) tagsByCommit() (map[plumbing.Hash][]string, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	tags := make(map[plumbing.Hash][]string)
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		hash, err := r.resolveTagCommit(ref)
		if err != nil {
			return err
		}
		tags[hash] = append(tags[hash], ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolving tags: %w", err)
	}
	return tags, nil
}

// resolveTagCommit returns the commit a tag reference points at, peeling
// annotated tag objects; lightweight tags point at the commit directly.
func (r *Repository) resolveTagCommit(ref *plumbing.Reference) (plumbing.Hash, error) {
	if tagObj, err := r.repo.TagObject(ref.Hash()); err == nil {
		return tagObj.Target, nil
	} else if !errors.Is(err, plumbing.ErrObjectNotFound) {
		return plumbing.ZeroHash, fmt.Errorf("reading tag %s: %w", ref.Name().Short(), err)
	}
	return ref.Hash(), nil
}
