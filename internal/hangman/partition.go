// internal/hangman/partition.go
//
// Candidate partitioning: group the live words by the pattern each one
// would produce if the guessed letter were revealed.

package hangman

// partition maps every candidate to the pattern that guessing letter would
// produce for it. Words that do not contain the letter land in the family
// keyed by the unchanged input pattern (the "wrong guess" family).
//
// The result is a total, disjoint partition of candidates: every input
// word appears in exactly one family and no family is empty.
func partition(current Pattern, letter rune, candidates []string) map[Pattern][]string {
	families := make(map[Pattern][]string)
	for _, word := range candidates {
		next := current.reveal(word, letter)
		families[next] = append(families[next], word)
	}
	return families
}
