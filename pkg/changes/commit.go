// SPDX-License-Identifier: AGPL-3.0-or-later

package changes

import (
	"fmt"
	"regexp"
	"strings"
)

// Commit is a single historical change as delivered by a commit source.
// It is a plain value; the aggregator never mutates it.
type Commit struct {
	// Hash is the full object id of the commit.
	Hash string
	// Message is the full commit message, subject line first.
	Message string
	// Tags holds the short names of the tags pointing at this commit,
	// empty for untagged commits.
	Tags []string
}

// Subject returns the first line of the commit message, trimmed.
func (c Commit) Subject() string {
	subject, _, _ := strings.Cut(c.Message, "\n")
	return strings.TrimSpace(subject)
}

func (c Commit) String() string {
	return fmt.Sprintf("%s - %s", c.Subject(), shortHash(c.Hash))
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

var versionTagRe = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// IsVersionTag reports whether a tag name marks a released version.
// Recognized names are exactly "v<major>.<minor>.<patch>".
func IsVersionTag(name string) bool {
	return versionTagRe.MatchString(name)
}

// hasVersionTag reports whether any tag on the commit is a version tag.
func (c Commit) hasVersionTag() bool {
	for _, tag := range c.Tags {
		if IsVersionTag(tag) {
			return true
		}
	}
	return false
}
