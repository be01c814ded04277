// SPDX-License-Identifier: AGPL-3.0-or-later

package gitrepo

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	goversion "github.com/hashicorp/go-version"

	"github.com/bartekus/semrel/pkg/changes"
)

// VersionTag is a tag that marks a released version.
type VersionTag struct {
	// Name is the tag's short name, e.g. "v1.2.0".
	Name string
	// Version is the semantic version parsed from the name.
	Version *goversion.Version
	// Hash is the commit the tag points at.
	Hash plumbing.Hash
}

// LatestVersionTag scans the repository's tags, annotated and lightweight
// alike, for names of the form "v<major>.<minor>.<patch>" and returns the
// highest version found. It returns nil when the repository has no version
// tags; that is not an error.
func (r *Repository) LatestVersionTag() (*VersionTag, error) {
	iter, err := r.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}
	defer iter.Close()

	var latest *VersionTag
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !changes.IsVersionTag(name) {
			return nil
		}
		version, err := goversion.NewVersion(strings.TrimPrefix(name, "v"))
		if err != nil {
			// The pattern check keeps this from happening; skip rather
			// than fail on an exotic tag.
			return nil
		}
		hash, err := r.resolveTagCommit(ref)
		if err != nil {
			return err
		}
		if latest == nil || version.GreaterThan(latest.Version) {
			latest = &VersionTag{Name: name, Version: version, Hash: hash}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolving tags: %w", err)
	}

	if latest != nil {
		r.log.Debug().Str("tag", latest.Name).Msg("latest version tag")
	}
	return latest, nil
}
