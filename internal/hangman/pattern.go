// internal/hangman/pattern.go
//
// Pattern value type for the evil hangman engine.
// A pattern is the board as the player sees it: revealed slots hold their
// lowercase letter, hidden slots hold the Unknown marker. Patterns are
// immutable; reveal always builds a fresh value, so the current pattern is
// never aliased by the candidate patterns produced during partitioning.

package hangman

import "strings"

// Unknown marks a slot whose letter has not been revealed yet.
const Unknown = '-'

// Pattern is a fixed-length rendering of the board, e.g. "-a--a-".
// Equality is textual. The textual ordering (with Unknown compared as an
// ordinary character) is used only for deterministic tie-breaking.
type Pattern string

// blankPattern returns the all-unknown pattern of the given length.
func blankPattern(length int) Pattern {
	return Pattern(strings.Repeat(string(Unknown), length))
}

// reveal returns the pattern produced when every occurrence of letter in
// word is uncovered. Slots revealed by earlier guesses stay as they are.
// Words are a-z ASCII (the dictionary loader enforces this).
func (p Pattern) reveal(word string, letter rune) Pattern {
	b := []byte(p)
	for i := 0; i < len(word) && i < len(b); i++ {
		if rune(word[i]) == letter {
			b[i] = word[i]
		}
	}
	return Pattern(b)
}

// Unknowns reports how many slots are still hidden.
func (p Pattern) Unknowns() int {
	return strings.Count(string(p), string(Unknown))
}

// Complete reports whether every slot has been revealed.
func (p Pattern) Complete() bool { return p.Unknowns() == 0 }

func (p Pattern) String() string { return string(p) }

// preferred resolves a family-size tie between two patterns. The pattern
// that keeps more slots hidden wins (the harder outcome for the player);
// on equal hidden counts the lexicographically smaller text wins. The
// incumbent is kept unless the candidate strictly wins, which makes
// repeated application independent of visitation order.
func preferred(candidate, incumbent Pattern) Pattern {
	cu, iu := candidate.Unknowns(), incumbent.Unknowns()
	if cu > iu {
		return candidate
	}
	if cu == iu && candidate < incumbent {
		return candidate
	}
	return incumbent
}
