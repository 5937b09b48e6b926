package hangman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testDict = []string{"cat", "car", "can", "dog"}

func newTestManager(t *testing.T, words []string) *Manager {
	t.Helper()
	m, err := New(words, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestNew_EmptyDictionary(t *testing.T) {
	_, err := New(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestManager_NumWords(t *testing.T) {
	m := newTestManager(t, []string{"cat", "dog", "tree", "stone"})
	assert.Equal(t, 2, m.NumWords(3))
	assert.Equal(t, 1, m.NumWords(4))
	assert.Equal(t, 1, m.NumWords(5))
	assert.Equal(t, 0, m.NumWords(7))
}

func TestManager_PrepForRound(t *testing.T) {
	m := newTestManager(t, testDict)

	tests := []struct {
		name       string
		wordLen    int
		numGuesses int
		diff       Difficulty
		wantErr    error
	}{
		{"valid", 3, 6, Hard, nil},
		{"zero word length", 0, 6, Hard, ErrBadRoundParams},
		{"negative word length", -1, 6, Hard, ErrBadRoundParams},
		{"zero guesses", 3, 0, Hard, ErrBadRoundParams},
		{"unknown difficulty", 3, 6, Difficulty("brutal"), ErrBadDifficulty},
		{"no words of length", 9, 6, Medium, ErrNoWordsOfLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.PrepForRound(tt.wordLen, tt.numGuesses, tt.diff)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestManager_PrepForRoundFailureKeepsState(t *testing.T) {
	m := newTestManager(t, testDict)
	assert.NoError(t, m.PrepForRound(3, 6, Hard))
	_, err := m.MakeGuess('a')
	assert.NoError(t, err)

	assert.ErrorIs(t, m.PrepForRound(9, 6, Hard), ErrNoWordsOfLength)

	// The failed prep must not have touched the round in progress.
	assert.Equal(t, "-a-", m.Pattern())
	assert.Equal(t, 6, m.GuessesLeft())
	assert.Equal(t, 3, m.WordsRemaining())
}

// The worked example: hard round over {cat, car, can, dog}. Guessing 'a'
// keeps the largest family without spending a guess; guessing 't' collapses
// to the unchanged pattern and costs one.
func TestManager_MakeGuessWorkedExample(t *testing.T) {
	m := newTestManager(t, testDict)
	assert.NoError(t, m.PrepForRound(3, 6, Hard))
	assert.Equal(t, "---", m.Pattern())
	assert.Equal(t, 4, m.WordsRemaining())

	sizes, err := m.MakeGuess('a')
	assert.NoError(t, err)
	assert.Equal(t, map[Pattern]int{"-a-": 3, "---": 1}, sizes)
	assert.Equal(t, "-a-", m.Pattern())
	assert.Equal(t, 6, m.GuessesLeft(), "revealing guess is free")
	assert.Equal(t, 3, m.WordsRemaining())

	sizes, err = m.MakeGuess('t')
	assert.NoError(t, err)
	assert.Equal(t, map[Pattern]int{"-a-": 2, "-at": 1}, sizes)
	assert.Equal(t, "-a-", m.Pattern())
	assert.Equal(t, 5, m.GuessesLeft(), "miss costs one guess")
	assert.Equal(t, 2, m.WordsRemaining())
}

func TestManager_MakeGuessErrors(t *testing.T) {
	m := newTestManager(t, testDict)
	_, err := m.MakeGuess('a')
	assert.ErrorIs(t, err, ErrNoRound)

	assert.NoError(t, m.PrepForRound(3, 6, Hard))
	_, err = m.MakeGuess('a')
	assert.NoError(t, err)

	// A repeated guess fails with zero side effects.
	_, err = m.MakeGuess('a')
	assert.ErrorIs(t, err, ErrAlreadyGuessed)
	assert.Equal(t, "-a-", m.Pattern())
	assert.Equal(t, 6, m.GuessesLeft())
	assert.Equal(t, 3, m.WordsRemaining())
	assert.Equal(t, []rune{'a'}, m.GuessedLetters())
}

func TestManager_PatternMonotonicity(t *testing.T) {
	m := newTestManager(t, []string{"tree", "seed", "door", "echo", "been", "enter", "sleet"})
	assert.NoError(t, m.PrepForRound(4, 10, Hard))

	prev := m.Pattern()
	for _, letter := range "eotsrdch" {
		_, err := m.MakeGuess(letter)
		assert.NoError(t, err)
		got := m.Pattern()
		for i := range prev {
			if prev[i] != byte(Unknown) {
				assert.Equal(t, prev[i], got[i], "revealed slot %d must stay revealed", i)
			}
		}
		prev = got
	}
}

func TestManager_GuessBudgetInvariant(t *testing.T) {
	m := newTestManager(t, testDict)
	assert.NoError(t, m.PrepForRound(3, 4, Hard))

	left := m.GuessesLeft()
	for _, letter := range "azbtq" {
		before := m.Pattern()
		_, err := m.MakeGuess(letter)
		assert.NoError(t, err)
		if m.Pattern() == before {
			left--
		}
		assert.Equal(t, left, m.GuessesLeft())
	}
}

func TestManager_GuessesMadeSorted(t *testing.T) {
	m := newTestManager(t, testDict)
	assert.NoError(t, m.PrepForRound(3, 6, Hard))
	assert.Equal(t, "[]", m.GuessesMade())

	for _, letter := range "tza" {
		_, err := m.MakeGuess(letter)
		assert.NoError(t, err)
	}
	assert.Equal(t, "[a, t, z]", m.GuessesMade())
	assert.Equal(t, []rune{'t', 'z', 'a'}, m.GuessedLetters(), "insertion order preserved")
	assert.True(t, m.AlreadyGuessed('z'))
	assert.False(t, m.AlreadyGuessed('q'))
}

func TestManager_SecretWordMembership(t *testing.T) {
	m := newTestManager(t, testDict)
	assert.NoError(t, m.PrepForRound(3, 6, Hard))
	_, err := m.MakeGuess('a')
	assert.NoError(t, err)

	live := map[string]bool{"cat": true, "car": true, "can": true}
	for i := 0; i < 20; i++ {
		w, err := m.SecretWord()
		assert.NoError(t, err)
		assert.True(t, live[w], "secret word %q must come from the live set", w)
	}
}

func TestManager_SecretWordDeterministicWithSeed(t *testing.T) {
	pick := func(seed int64) string {
		m, err := New(testDict, rand.New(rand.NewSource(seed)))
		assert.NoError(t, err)
		assert.NoError(t, m.PrepForRound(3, 6, Hard))
		w, err := m.SecretWord()
		assert.NoError(t, err)
		return w
	}
	assert.Equal(t, pick(7), pick(7))
}

func TestManager_SecretWordErrors(t *testing.T) {
	m := newTestManager(t, testDict)
	_, err := m.SecretWord()
	assert.ErrorIs(t, err, ErrNoCandidates)
}

// An easy round over a dictionary with two size-distinct families on every
// guess: the engine must concede the second-largest family on guesses 2,
// 4, 6, 8 and keep the largest otherwise.
func TestManager_EasyConcedesPeriodically(t *testing.T) {
	// Guess 1 partitions into sizes 3 and 1 (largest kept). Guess 2 again
	// has two tiers and must take the smaller one.
	m := newTestManager(t, []string{"cat", "car", "can", "dot"})
	assert.NoError(t, m.PrepForRound(3, 9, Easy))

	_, err := m.MakeGuess('a')
	assert.NoError(t, err)
	assert.Equal(t, "-a-", m.Pattern(), "guess 1 keeps the largest family")
	assert.Equal(t, 3, m.WordsRemaining())

	// Families for 't': {"-a-": {car, can}, "-at": {cat}}. Guess 2 is a
	// second-largest turn, so the engine concedes "-at".
	_, err = m.MakeGuess('t')
	assert.NoError(t, err)
	assert.Equal(t, "-at", m.Pattern())
	assert.Equal(t, 1, m.WordsRemaining())
	assert.Equal(t, 9, m.GuessesLeft(), "pattern changed, no guess spent")
}

func TestManager_QueriesBeforePrep(t *testing.T) {
	m := newTestManager(t, testDict)
	assert.Equal(t, "", m.Pattern())
	assert.Equal(t, 0, m.GuessesLeft())
	assert.Equal(t, 0, m.WordsRemaining())
	assert.Nil(t, m.GuessedLetters())
	assert.False(t, m.AlreadyGuessed('a'))
	assert.Equal(t, Difficulty(""), m.Difficulty())
}

func TestManager_FullRoundToWin(t *testing.T) {
	m := newTestManager(t, testDict)
	assert.NoError(t, m.PrepForRound(3, 6, Hard))

	for _, letter := range "acnrt" {
		_, err := m.MakeGuess(letter)
		assert.NoError(t, err)
	}
	// After a,c,n,r,t only one word can remain and the board is full.
	assert.False(t, strings.ContainsRune(m.Pattern(), Unknown))
	assert.Equal(t, 1, m.WordsRemaining())
	w, err := m.SecretWord()
	assert.NoError(t, err)
	assert.Equal(t, m.Pattern(), w)
}
