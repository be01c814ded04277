// SPDX-License-Identifier: AGPL-3.0-or-later

// Package changes groups the commits made since the last released version
// into change categories and derives the semantic-version action they call
// for. The aggregate is a pure value: build it once with Aggregate, then
// read it from as many goroutines as you like.
package changes

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bartekus/semrel/pkg/gitmoji"
)

// Changes holds the commit messages since the last version tag, one slice
// per category, each preserving the original commit order (newest first).
type Changes struct {
	Major []string
	Minor []string
	Patch []string
	Other []string
}

// Aggregate classifies an ordered list of commits, newest first.
//
// Aggregation stops at the first commit that carries a version tag: that
// commit belongs to the previous release and is excluded together with
// everything older. When no commit carries a version tag the whole list is
// included, treating the history as the initial, untagged release.
//
// Malformed or unmarked commit messages are not errors; they land in the
// Other category. Aggregate never fails.
func Aggregate(commits []Commit) Changes {
	var ch Changes
	for _, commit := range commits {
		if commit.hasVersionTag() {
			break
		}
		switch gitmoji.Classify(commit.Message) {
		case gitmoji.Major:
			ch.Major = append(ch.Major, commit.Message)
		case gitmoji.Minor:
			ch.Minor = append(ch.Minor, commit.Message)
		case gitmoji.Patch:
			ch.Patch = append(ch.Patch, commit.Message)
		default:
			ch.Other = append(ch.Other, commit.Message)
		}
	}
	return ch
}

// Source provides the ordered commit history to aggregate, newest first.
// *gitrepo.Repository is the real implementation; tests supply fixed lists.
type Source interface {
	Commits() ([]Commit, error)
}

// FromSource aggregates the commits delivered by a source.
func FromSource(src Source) (Changes, error) {
	commits, err := src.Commits()
	if err != nil {
		return Changes{}, fmt.Errorf("fetching commits: %w", err)
	}
	return Aggregate(commits), nil
}

// RecommendedAction derives the version bump: any major change wins, then
// minor, then patch. Other-category commits never influence the action.
func (c Changes) RecommendedAction() Action {
	switch {
	case len(c.Major) > 0:
		return IncrementMajor
	case len(c.Minor) > 0:
		return IncrementMinor
	case len(c.Patch) > 0:
		return IncrementPatch
	default:
		return NoAction
	}
}

// Equal compares two aggregates element for element, order included.
func (c Changes) Equal(other Changes) bool {
	return slices.Equal(c.Major, other.Major) &&
		slices.Equal(c.Minor, other.Minor) &&
		slices.Equal(c.Patch, other.Patch) &&
		slices.Equal(c.Other, other.Other)
}

// Len returns the total number of classified commits.
func (c Changes) Len() int {
	return len(c.Major) + len(c.Minor) + len(c.Patch) + len(c.Other)
}

// String renders the aggregate with the categories in fixed order. A
// category label is printed even when the category is empty.
func (c Changes) String() string {
	var b strings.Builder
	writeSection(&b, "major", c.Major)
	writeSection(&b, "minor", c.Minor)
	writeSection(&b, "patch", c.Patch)
	writeSection(&b, "other", c.Other)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeSection(b *strings.Builder, label string, messages []string) {
	fmt.Fprintf(b, "%s:\n", label)
	for _, message := range messages {
		subject, _, _ := strings.Cut(message, "\n")
		fmt.Fprintf(b, "\t%s\n", strings.TrimSpace(subject))
	}
}
