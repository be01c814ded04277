// SPDX-License-Identifier: AGPL-3.0-or-later

package changes

// Action is the semantic-version bump recommended for a set of changes.
type Action int

const (
	NoAction Action = iota
	IncrementPatch
	IncrementMinor
	IncrementMajor
)

func (a Action) String() string {
	switch a {
	case IncrementMajor:
		return "increment major version"
	case IncrementMinor:
		return "increment minor version"
	case IncrementPatch:
		return "increment patch version"
	default:
		return "no action"
	}
}
