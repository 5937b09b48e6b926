// internal/hangman/policy.go
//
// Difficulty and family selection. The engine normally collapses the round
// into the largest family (the outcome least helpful to the guesser); on
// EASY and MEDIUM it periodically concedes the second-largest family so
// those rounds stay winnable.

package hangman

// Difficulty controls how often the engine gives up the hardest family.
type Difficulty string

const (
	Easy   Difficulty = "easy"   // second-largest family every 2nd guess
	Medium Difficulty = "medium" // second-largest family every 4th guess
	Hard   Difficulty = "hard"   // always the largest family
)

const (
	easyEvery   = 2
	mediumEvery = 4
)

// Valid reports whether d is one of the known difficulties.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Medium || d == Hard
}

// selectPattern picks the family the round collapses into. guessCount is
// the number of selections made so far, counting this one; it drives the
// periodic second-largest rule. When no strictly smaller tier exists the
// largest family is used regardless of difficulty.
func selectPattern(families map[Pattern][]string, diff Difficulty, guessCount int) Pattern {
	var largest Pattern
	max := 0
	for pat, family := range families {
		switch {
		case len(family) > max:
			largest, max = pat, len(family)
		case len(family) == max:
			largest = preferred(pat, largest)
		}
	}
	if (diff == Medium && guessCount%mediumEvery == 0) ||
		(diff == Easy && guessCount%easyEvery == 0) {
		if second := secondLargest(families, largest, max); second != "" {
			return second
		}
	}
	return largest
}

// secondLargest scans for the hardest family strictly below max, resolving
// ties inside that tier with the tie-break so the result does not depend
// on map iteration order. A family whose size equals max but whose pattern
// is not the chosen largest still competes through the tie-break rather
// than being excluded outright. Returns "" when no family qualifies.
func secondLargest(families map[Pattern][]string, largest Pattern, max int) Pattern {
	var second Pattern
	best := 0
	for pat, family := range families {
		n := len(family)
		switch {
		case n < max && n > best:
			second, best = pat, n
		case n < max && n == best:
			second = preferred(pat, second)
		case n == max && pat != largest:
			second = preferred(pat, second)
		}
	}
	return second
}
