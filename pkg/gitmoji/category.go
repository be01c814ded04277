// SPDX-License-Identifier: AGPL-3.0-or-later

package gitmoji

// Category is the version-impact bucket a commit falls into.
type Category int

const (
	// Other covers commits with no version impact: unrecognized or missing
	// markers, and recognized markers that are version-neutral (docs,
	// releases, merges, experiments, ...).
	Other Category = iota
	// Patch covers fixes, refactors, chores, CI, style and test work.
	Patch
	// Minor covers new features and other user-visible additions.
	Minor
	// Major covers breaking changes.
	Major
)

func (c Category) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	default:
		return "other"
	}
}
