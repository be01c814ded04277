// SPDX-License-Identifier: AGPL-3.0-or-later

// Package gitmoji classifies commit messages by their leading gitmoji
// marker. Every marker is known in two spellings: the literal emoji glyph
// and the colon-delimited shortcode alias (":boom:" for 💥). Both spellings
// classify identically.
package gitmoji

import (
	"strings"
	"unicode"
)

// Gitmoji is one entry of the fixed marker table.
type Gitmoji struct {
	Glyph     string
	Shortcode string
	Category  Category
}

// The marker table is fixed; there is no runtime registration.
var gitmojis = []Gitmoji{
	{"💥", ":boom:", Major},

	{"✨", ":sparkles:", Minor},
	{"🚸", ":children_crossing:", Minor},
	{"💄", ":lipstick:", Minor},
	{"📱", ":iphone:", Minor},
	{"🥚", ":egg:", Minor},
	{"📈", ":chart_with_upwards_trend:", Minor},
	{"➕", ":heavy_plus_sign:", Minor},
	{"➖", ":heavy_minus_sign:", Minor},
	{"🛂", ":passport_control:", Minor},

	{"🎨", ":art:", Patch},
	{"🚑", ":ambulance:", Patch},
	{"🔒", ":lock:", Patch},
	{"🐛", ":bug:", Patch},
	{"⚡", ":zap:", Patch},
	{"🥅", ":goal_net:", Patch},
	{"👽", ":alien:", Patch},
	{"♿", ":wheelchair:", Patch},
	{"💬", ":speech_balloon:", Patch},
	{"🔍", ":mag:", Patch},
	{"🔥", ":fire:", Patch},
	{"✅", ":white_check_mark:", Patch},
	{"🔐", ":closed_lock_with_key:", Patch},
	{"🚨", ":rotating_light:", Patch},
	{"💚", ":green_heart:", Patch},
	{"⬇", ":arrow_down:", Patch},
	{"⬆", ":arrow_up:", Patch},
	{"📌", ":pushpin:", Patch},
	{"👷", ":construction_worker:", Patch},
	{"♻", ":recycle:", Patch},
	{"🔧", ":wrench:", Patch},
	{"🔨", ":hammer:", Patch},
	{"🌐", ":globe_with_meridians:", Patch},
	{"📦", ":package:", Patch},
	{"🚚", ":truck:", Patch},
	{"🍱", ":bento:", Patch},
	{"🗃", ":card_file_box:", Patch},
	{"🔊", ":loud_sound:", Patch},
	{"🔇", ":mute:", Patch},
	{"🏗", ":building_construction:", Patch},
	{"📸", ":camera_flash:", Patch},
	{"🏷", ":label:", Patch},
	{"🌱", ":seedling:", Patch},
	{"🚩", ":triangular_flag_on_post:", Patch},
	{"💫", ":dizzy:", Patch},
	{"🩹", ":adhesive_bandage:", Patch},
	{"🧐", ":monocle_face:", Patch},
	{"👔", ":necktie:", Patch},
	{"🩺", ":stethoscope:", Patch},
	{"🧑‍💻", ":technologist:", Patch},
	{"🧵", ":thread:", Patch},
	{"🦺", ":safety_vest:", Patch},

	{"📝", ":memo:", Other},
	{"🚀", ":rocket:", Other},
	{"🎉", ":tada:", Other},
	{"🔖", ":bookmark:", Other},
	{"🚧", ":construction:", Other},
	{"✏", ":pencil2:", Other},
	{"💩", ":poop:", Other},
	{"⏪", ":rewind:", Other},
	{"🔀", ":twisted_rightwards_arrows:", Other},
	{"📄", ":page_facing_up:", Other},
	{"💡", ":bulb:", Other},
	{"🍻", ":beers:", Other},
	{"👥", ":bust_in_silhouette:", Other},
	{"🤡", ":clown_face:", Other},
	{"🙈", ":see_no_evil:", Other},
	{"⚗", ":alembic:", Other},
	{"🗑", ":wastebasket:", Other},
	{"⚰", ":coffin:", Other},
	{"🧪", ":test_tube:", Other},
	{"🧱", ":bricks:", Other},
	{"💸", ":money_with_wings:", Other},
}

// All returns the marker table in its fixed order.
func All() []Gitmoji {
	out := make([]Gitmoji, len(gitmojis))
	copy(out, gitmojis)
	return out
}

// Classify maps a commit message to its category by inspecting the leading
// marker. Messages without a recognized leading marker, including the empty
// message, classify as Other. Classify never fails.
func Classify(message string) Category {
	g, ok := Parse(message)
	if !ok {
		return Other
	}
	return g.Category
}

// Parse identifies the gitmoji marker leading the message, after trimming
// leading whitespace. The marker must be anchored at the start: a glyph or
// shortcode appearing later in the message does not count. Shortcodes match
// case-insensitively; glyphs match with or without a trailing variation
// selector.
func Parse(message string) (Gitmoji, bool) {
	msg := strings.TrimLeftFunc(message, unicode.IsSpace)
	if msg == "" {
		return Gitmoji{}, false
	}

	if strings.HasPrefix(msg, ":") {
		end := strings.Index(msg[1:], ":")
		if end < 0 {
			return Gitmoji{}, false
		}
		token := msg[:end+2]
		for _, g := range gitmojis {
			if strings.EqualFold(token, g.Shortcode) {
				return g, true
			}
		}
		return Gitmoji{}, false
	}

	plain := stripVariationSelectors(msg)
	for _, g := range gitmojis {
		if strings.HasPrefix(plain, stripVariationSelectors(g.Glyph)) {
			return g, true
		}
	}
	return Gitmoji{}, false
}

// stripVariationSelectors drops U+FE0F so that "⚡" and "⚡️" compare equal.
func stripVariationSelectors(s string) string {
	return strings.ReplaceAll(s, "️", "")
}
