// SPDX-License-Identifier: AGPL-3.0-or-later

// Package report renders a changes aggregate for human or machine
// consumption.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bartekus/semrel/pkg/changes"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
	}
}

// Report is the machine-readable shape of an analysis run.
type Report struct {
	Major  []string `json:"major" yaml:"major"`
	Minor  []string `json:"minor" yaml:"minor"`
	Patch  []string `json:"patch" yaml:"patch"`
	Other  []string `json:"other" yaml:"other"`
	Action string   `json:"action" yaml:"action"`
}

// New builds a Report from an aggregate and its recommended action.
func New(ch changes.Changes) Report {
	return Report{
		Major:  ch.Major,
		Minor:  ch.Minor,
		Patch:  ch.Patch,
		Other:  ch.Other,
		Action: ch.RecommendedAction().String(),
	}
}

// Render writes the aggregate to w in the requested format. The text format
// lists the four categories in fixed order, every label shown even when its
// category is empty, followed by the recommended action.
func Render(w io.Writer, ch changes.Changes, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(New(ch)); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		if err := enc.Encode(New(ch)); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return nil
	default:
		_, err := fmt.Fprintf(w, "Changes in the repository:\n%s\nAction for semantic version ➡️ %s\n",
			ch, ch.RecommendedAction())
		return err
	}
}
