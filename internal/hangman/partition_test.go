package hangman

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartition_GroupsByResultingPattern(t *testing.T) {
	families := partition("---", 'a', []string{"cat", "car", "can", "dog"})

	assert.Len(t, families, 2)
	assert.ElementsMatch(t, []string{"cat", "car", "can"}, families["-a-"])
	assert.ElementsMatch(t, []string{"dog"}, families["---"])
}

func TestPartition_RevealsEveryOccurrence(t *testing.T) {
	families := partition("------", 'a', []string{"banana"})

	assert.Len(t, families, 1)
	assert.ElementsMatch(t, []string{"banana"}, families["-a-a-a"])
}

func TestPartition_KeepsEarlierReveals(t *testing.T) {
	families := partition("-a-a-a", 'n', []string{"banana", "cabana"})

	assert.ElementsMatch(t, []string{"banana"}, families["-anana"])
	assert.ElementsMatch(t, []string{"cabana"}, families["-a-ana"])
}

func TestPartition_IsTotalAndDisjoint(t *testing.T) {
	tests := []struct {
		name       string
		pattern    Pattern
		letter     rune
		candidates []string
	}{
		{
			name:       "mixed hits and misses",
			pattern:    "----",
			letter:     'e',
			candidates: []string{"tree", "seed", "door", "echo", "been", "ally"},
		},
		{
			name:       "nobody has the letter",
			pattern:    "---",
			letter:     'z',
			candidates: []string{"cat", "car", "can", "dog"},
		},
		{
			name:       "partially revealed board",
			pattern:    "-oo-",
			letter:     'd',
			candidates: []string{"door", "doom", "good", "look"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			families := partition(tt.pattern, tt.letter, tt.candidates)

			var union []string
			for pat, family := range families {
				assert.NotEmpty(t, family, "family %q must not be empty", pat)
				assert.Equal(t, len(tt.pattern), len(pat))
				union = append(union, family...)
			}
			sort.Strings(union)
			want := append([]string(nil), tt.candidates...)
			sort.Strings(want)
			assert.Equal(t, want, union, "union of families must equal the input exactly")
		})
	}
}

func TestPattern_Reveal(t *testing.T) {
	tests := []struct {
		pattern Pattern
		word    string
		letter  rune
		want    Pattern
	}{
		{"---", "cat", 'a', "-a-"},
		{"---", "dog", 'a', "---"},
		{"-a-", "cat", 't', "-at"},
		{"----", "loop", 'o', "-oo-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.pattern.reveal(tt.word, tt.letter))
	}
}

func TestPattern_Unknowns(t *testing.T) {
	assert.Equal(t, 3, Pattern("---").Unknowns())
	assert.Equal(t, 1, Pattern("-at").Unknowns())
	assert.Equal(t, 0, Pattern("cat").Unknowns())
	assert.True(t, Pattern("cat").Complete())
	assert.False(t, Pattern("ca-").Complete())
}
