package hangman

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferred(t *testing.T) {
	tests := []struct {
		name                 string
		candidate, incumbent Pattern
		want                 Pattern
	}{
		{"more unknowns wins", "----", "-a--", "----"},
		{"fewer unknowns loses", "-a--", "----", "----"},
		{"equal unknowns, smaller text wins", "-a-", "-b-", "-a-"},
		{"equal unknowns, larger text loses", "-b-", "-a-", "-a-"},
		{"unknown sorts before letters", "--a", "a--", "--a"},
		{"empty incumbent loses to hidden slots", "-at", "", "-at"},
		{"empty incumbent beats fully revealed", "cat", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, preferred(tt.candidate, tt.incumbent))
		})
	}
}

func TestSelectPattern_HardPicksLargest(t *testing.T) {
	families := map[Pattern][]string{
		"-a-": {"cat", "car", "can"},
		"---": {"dog"},
	}
	for count := 1; count <= 8; count++ {
		assert.Equal(t, Pattern("-a-"), selectPattern(families, Hard, count))
	}
}

func TestSelectPattern_DifficultyPeriodicity(t *testing.T) {
	families := map[Pattern][]string{
		"-a-": {"cat", "car", "can"},
		"---": {"dog"},
	}
	tests := []struct {
		diff        Difficulty
		secondTurns []int
	}{
		{Hard, nil},
		{Medium, []int{4, 8}},
		{Easy, []int{2, 4, 6, 8}},
	}
	for _, tt := range tests {
		t.Run(string(tt.diff), func(t *testing.T) {
			var got []int
			for count := 1; count <= 8; count++ {
				if selectPattern(families, tt.diff, count) == "---" {
					got = append(got, count)
				}
			}
			assert.Equal(t, tt.secondTurns, got)
		})
	}
}

func TestSelectPattern_TieBreakIsOrderIndependent(t *testing.T) {
	// All families the same size: the winner must always be the pattern
	// with the most unknowns, regardless of map iteration order.
	families := map[Pattern][]string{
		"a--": {"aaa"},
		"-b-": {"bbb"},
		"---": {"zzz"},
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, Pattern("---"), selectPattern(families, Hard, i+1))
	}
}

func TestSelectPattern_SecondLargestFallsBackWithoutSmallerTier(t *testing.T) {
	// A single family has no strictly smaller tier; the largest is used
	// even on a second-largest turn.
	families := map[Pattern][]string{
		"-a-": {"cat", "car"},
	}
	assert.Equal(t, Pattern("-a-"), selectPattern(families, Medium, 4))
	assert.Equal(t, Pattern("-a-"), selectPattern(families, Easy, 2))
}

func TestSecondLargest_StrictlySmallerTier(t *testing.T) {
	families := map[Pattern][]string{
		"-a-": {"cat", "car", "can"},
		"--t": {"bit", "bat"},
		"---": {"dog"},
	}
	assert.Equal(t, Pattern("--t"), secondLargest(families, "-a-", 3))
}

func TestSecondLargest_TierTieBreakIsOrderIndependent(t *testing.T) {
	// Two families tie for the strictly-smaller tier. The tie-break must
	// settle the pick, so the result never depends on map iteration order.
	families := map[Pattern][]string{
		"-a-": {"bab", "cac", "dad"},
		"-b-": {"abd", "ebf"},
		"--c": {"abc", "dec"},
	}
	for i := 0; i < 200; i++ {
		assert.Equal(t, Pattern("--c"), secondLargest(families, "-a-", 3),
			"equal unknowns: lexicographically smaller pattern wins")
	}

	// Unknown count outranks text order within the tied tier.
	families = map[Pattern][]string{
		"-a-": {"bab", "cac", "dad"},
		"b--": {"bxy", "bzw"},
		"-bc": {"abc", "dbc"},
	}
	for i := 0; i < 200; i++ {
		assert.Equal(t, Pattern("b--"), secondLargest(families, "-a-", 3))
	}
}

func TestSelectPattern_SecondLargestTieIsStable(t *testing.T) {
	families := map[Pattern][]string{
		"-a-": {"bab", "cac", "dad"},
		"-b-": {"abd", "ebf"},
		"--c": {"abc", "dec"},
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, Pattern("--c"), selectPattern(families, Easy, 2))
		assert.Equal(t, Pattern("--c"), selectPattern(families, Medium, 4))
	}
}

func TestSecondLargest_FamilyTiedWithMaxCompetes(t *testing.T) {
	// Two families share the maximum size. The one not chosen as largest
	// competes for "second" through the tie-break rather than being
	// excluded, and loses here to the harder strictly-smaller family.
	families := map[Pattern][]string{
		"a--": {"abc", "ade"},
		"--a": {"cba", "eda"},
		"---": {"xyz"},
	}
	largest := selectPattern(families, Hard, 1)
	assert.Equal(t, Pattern("--a"), largest, "unknown marker sorts before letters")

	second := secondLargest(families, largest, 2)
	assert.Equal(t, Pattern("---"), second)

	// With no strictly smaller family at all, the tied family itself is
	// the "second" pick.
	delete(families, "---")
	assert.Equal(t, Pattern("a--"), secondLargest(families, largest, 2))
}

func TestDifficulty_Valid(t *testing.T) {
	assert.True(t, Easy.Valid())
	assert.True(t, Medium.Valid())
	assert.True(t, Hard.Valid())
	assert.False(t, Difficulty("").Valid())
	assert.False(t, Difficulty("brutal").Valid())
}
