// internal/hangman/manager.go
//
// Round orchestration for evil hangman.
// Responsibilities:
//   - Hold the immutable dictionary shared across rounds.
//   - Reset per-round state (PrepForRound) and apply guesses (MakeGuess).
//   - Expose the query surface a front end needs: pattern, guesses left,
//     guessed letters, live candidate count.
//   - Resolve the secret word at round end from an injected random source.
//
// The manager never picks a word up front: every word of the chosen length
// stays live until guesses force families apart. Win/loss detection is the
// caller's job (pattern complete, or GuessesLeft reaching zero).
//
// A manager runs one round at a time and is not safe for concurrent use;
// the dictionary slice itself is never mutated and may be shared freely
// across managers.

package hangman

import (
	"errors"
	"math/rand"
	"sort"
	"strings"
	"time"
)

var (
	ErrEmptyDictionary = errors.New("hangman: dictionary is empty")
	ErrBadRoundParams  = errors.New("hangman: word length and guess count must be positive")
	ErrBadDifficulty   = errors.New("hangman: unknown difficulty")
	ErrNoWordsOfLength = errors.New("hangman: no dictionary words of that length")
	ErrNoRound         = errors.New("hangman: no round in progress")
	ErrAlreadyGuessed  = errors.New("hangman: letter already guessed")
	ErrNoCandidates    = errors.New("hangman: no live candidates to resolve")
)

// Manager runs rounds of evil hangman over a fixed dictionary.
type Manager struct {
	words []string
	rng   *rand.Rand
	round *round
}

// round is the mutable state of a single game.
type round struct {
	pattern     Pattern
	guessesLeft int
	letters     []rune   // guessed letters, insertion order
	live        []string // words still consistent with every guess so far
	diff        Difficulty
	guessCount  int // MakeGuess calls made, drives the periodic policy
}

// New builds a manager over words. The random source drives SecretWord
// only and has no influence on gameplay; pass nil for a time-seeded one.
func New(words []string, rng *rand.Rand) (*Manager, error) {
	if len(words) == 0 {
		return nil, ErrEmptyDictionary
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Manager{words: words, rng: rng}, nil
}

// NumWords reports how many dictionary words have the given length.
func (m *Manager) NumWords(length int) int {
	count := 0
	for _, w := range m.words {
		if len(w) == length {
			count++
		}
	}
	return count
}

// PrepForRound resets the manager for a fresh round: an all-unknown
// pattern of wordLen slots, numGuesses wrong guesses allowed, and every
// dictionary word of that length live. On error the previous round state
// is left untouched.
func (m *Manager) PrepForRound(wordLen, numGuesses int, diff Difficulty) error {
	if wordLen <= 0 || numGuesses < 1 {
		return ErrBadRoundParams
	}
	if !diff.Valid() {
		return ErrBadDifficulty
	}
	var live []string
	for _, w := range m.words {
		if len(w) == wordLen {
			live = append(live, w)
		}
	}
	if len(live) == 0 {
		return ErrNoWordsOfLength
	}
	m.round = &round{
		pattern:     blankPattern(wordLen),
		guessesLeft: numGuesses,
		live:        live,
		diff:        diff,
	}
	return nil
}

// MakeGuess applies one guessed letter. The live words are partitioned by
// resulting pattern and the difficulty policy picks the family the round
// collapses into. A guess that reveals nothing (the new pattern equals the
// old one) costs one guess; a revealing guess is free.
//
// The returned map holds every candidate pattern and its family size. It
// is diagnostic output for tooling and tests and has no effect on state.
//
// Guessing a letter already guessed this round returns ErrAlreadyGuessed
// with zero side effects.
func (m *Manager) MakeGuess(letter rune) (map[Pattern]int, error) {
	if m.round == nil {
		return nil, ErrNoRound
	}
	if m.AlreadyGuessed(letter) {
		return nil, ErrAlreadyGuessed
	}
	r := m.round
	r.letters = append(r.letters, letter)
	families := partition(r.pattern, letter, r.live)

	r.guessCount++
	next := selectPattern(families, r.diff, r.guessCount)
	if next == r.pattern {
		r.guessesLeft--
	} else {
		r.pattern = next
	}
	r.live = families[r.pattern]

	sizes := make(map[Pattern]int, len(families))
	for pat, family := range families {
		sizes[pat] = len(family)
	}
	return sizes, nil
}

// GuessesLeft reports the wrong guesses the player has left this round.
func (m *Manager) GuessesLeft() int {
	if m.round == nil {
		return 0
	}
	return m.round.guessesLeft
}

// Pattern returns the current pattern text: revealed letters and '-' for
// hidden slots. Empty until PrepForRound has been called.
func (m *Manager) Pattern() string {
	if m.round == nil {
		return ""
	}
	return m.round.pattern.String()
}

// WordsRemaining reports how many words are still consistent with every
// guess made this round.
func (m *Manager) WordsRemaining() int {
	if m.round == nil {
		return 0
	}
	return len(m.round.live)
}

// AlreadyGuessed reports whether letter has been guessed this round.
func (m *Manager) AlreadyGuessed(letter rune) bool {
	if m.round == nil {
		return false
	}
	for _, l := range m.round.letters {
		if l == letter {
			return true
		}
	}
	return false
}

// GuessedLetters returns a copy of the letters guessed this round in the
// order they were guessed.
func (m *Manager) GuessedLetters() []rune {
	if m.round == nil {
		return nil
	}
	out := make([]rune, len(m.round.letters))
	copy(out, m.round.letters)
	return out
}

// GuessesMade renders the guessed letters sorted alphabetically in the
// displayable form "[a, c, t]".
func (m *Manager) GuessesMade() string {
	letters := m.GuessedLetters()
	sort.Slice(letters, func(i, j int) bool { return letters[i] < letters[j] })
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = string(l)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Difficulty reports the difficulty of the current round.
func (m *Manager) Difficulty() Difficulty {
	if m.round == nil {
		return ""
	}
	return m.round.diff
}

// SecretWord returns the word the manager finally settled on for this
// round, picked uniformly from the live set. Multiple live words can only
// coexist at round end when they are indistinguishable behind the shown
// pattern, so the pick is for display only.
func (m *Manager) SecretWord() (string, error) {
	if m.round == nil || len(m.round.live) == 0 {
		return "", ErrNoCandidates
	}
	return m.round.live[m.rng.Intn(len(m.round.live))], nil
}
