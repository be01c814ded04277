// SPDX-License-Identifier: AGPL-3.0-or-later

package gitmoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected Category
	}{
		{"breaking glyph", "💥 break the API", Major},
		{"breaking shortcode", ":boom: break the API", Major},
		{"feature glyph", "✨ add X", Minor},
		{"feature shortcode", ":sparkles: add X", Minor},
		{"fix glyph", "🐛 fix Y", Patch},
		{"fix shortcode", ":bug: fix Y", Patch},
		{"refactor shortcode", ":recycle: refactor the code base", Patch},
		{"docs glyph", "📝 update docs", Other},
		{"docs shortcode", ":memo: update docs", Other},
		{"shortcode is case-insensitive", ":SPARKLES: add X", Minor},
		{"shortcode mixed case", ":Boom: break the API", Major},
		{"leading whitespace is trimmed", "  \t✨ add X", Minor},
		{"glyph with variation selector", "⚡️ speed things up", Patch},
		{"no marker", "add X", Other},
		{"empty message", "", Other},
		{"whitespace only", "   ", Other},
		{"marker not at start", "hello :boom: world", Other},
		{"glyph not at start", "fix 🐛 in parser", Other},
		{"unknown shortcode", ":unknown: do things", Other},
		{"unterminated shortcode", ":boom do things", Other},
		{"no trailing text", "💥", Major},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.message))
		})
	}
}

// Both spellings of every marker in the table must classify identically.
func TestClassifyCoversWholeTable(t *testing.T) {
	for _, g := range All() {
		assert.Equal(t, g.Category, Classify(g.Glyph+" some change"), "glyph %q", g.Glyph)
		assert.Equal(t, g.Category, Classify(g.Shortcode+" some change"), "shortcode %q", g.Shortcode)
	}
}

func TestParse(t *testing.T) {
	g, ok := Parse(":tada: initial commit")
	if !ok {
		t.Fatal("expected a marker")
	}
	if g.Glyph != "🎉" || g.Shortcode != ":tada:" || g.Category != Other {
		t.Errorf("unexpected marker %+v", g)
	}

	if _, ok := Parse("plain message"); ok {
		t.Error("expected no marker for a plain message")
	}
}

func TestTableShape(t *testing.T) {
	counts := map[Category]int{}
	for _, g := range All() {
		counts[g.Category]++
	}
	assert.Equal(t, 1, counts[Major])
	assert.Equal(t, 9, counts[Minor])
	assert.Equal(t, 42, counts[Patch])
	assert.Equal(t, 21, counts[Other])
}
