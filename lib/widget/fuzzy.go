// Copyright 2026 The Tact Authors
// SPDX-License-Identifier: Apache-2.0

package widget

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// Slab sizes for fzf's match scratch memory, taken from fzf's own
// defaults. One slab is shared by all widgets; fine as long as
// matching stays on the event loop, which everything in this package
// does.
const (
	slabSize16 = 100 * 1024
	slabSize32 = 2048 * 100
)

var matchSlab = util.MakeSlab(slabSize16, slabSize32)

// fzf's algo package keeps its character-class and bonus tables in
// package-level arrays that stay zeroed until Init seeds them; without
// this call case-insensitive matching and boundary bonuses never work.
// "default" is the scheme fzf itself runs with outside path and
// history modes.
func init() {
	algo.Init("default")
}

// FuzzyResult is the outcome of matching a pattern against one text.
type FuzzyResult struct {
	// Score is fzf's match quality; zero means no match.
	Score int
	// Positions are rune indices of the matched characters in the
	// text, for highlight rendering. Empty when there is no match.
	Positions []int
}

// FuzzyMatch scores pattern against text using fzf's V2 algorithm,
// case-insensitively. An empty pattern scores zero: callers treat
// "no pattern" as "show everything" without consulting the matcher.
func FuzzyMatch(text, pattern string) FuzzyResult {
	if pattern == "" || text == "" {
		return FuzzyResult{}
	}

	chars := util.ToChars([]byte(text))
	runes := []rune(strings.ToLower(pattern))

	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, runes, true, matchSlab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	match := FuzzyResult{Score: result.Score}
	if positions != nil {
		match.Positions = *positions
	}
	return match
}
