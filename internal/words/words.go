// internal/words/words.go
//
// Dictionary management for the hangman engine.
//
// Responsibilities:
//   - Load the word list from an environment-provided file or fall back to
//     the embedded default dictionary.
//   - Normalize entries (trim, lowercase) and keep only all-letter words.
//   - Expose the shared immutable list plus per-length lookups used by the
//     round endpoints (starting a round requires at least one word of the
//     requested length).
//
// Environment variables:
//   DICTIONARY_FILE=/path/to/dictionary.txt
//
// Initialization runs once (sync.Once); the loaded list is never mutated
// afterwards, so it is safe to share across concurrent games.

package words

import (
	"bufio"
	"errors"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/joshuaxchen/Evil-Hangman/assets"
)

var (
	initOnce   sync.Once
	list       []string    // normalized dictionary, all lengths
	byLength   map[int]int // word count per length
	initialErr error
)

// Init loads the dictionary exactly once.
// Returns an error if the resulting list is empty.
func Init() error {
	initOnce.Do(func() {
		var loaded []string
		var err error
		if path := os.Getenv("DICTIONARY_FILE"); path != "" {
			loaded, err = readWordFile(path)
		} else {
			loaded, err = assets.DictionaryList()
		}
		if err != nil {
			initialErr = err
			return
		}

		list = normalize(loaded)
		byLength = make(map[int]int)
		for _, w := range list {
			byLength[len(w)]++
		}
		if len(list) == 0 {
			initialErr = errors.New("words: dictionary is empty")
		}
	})
	return initialErr
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize trims, lowercases, and drops anything that is not a purely
// alphabetic word.
func normalize(in []string) []string {
	var out []string
	for _, line := range in {
		w := strings.TrimSpace(strings.ToLower(line))
		if w != "" && isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Words returns the loaded dictionary. Callers must treat the slice as
// read-only; it is shared by every game.
func Words() []string { return list }

// NumWords reports how many dictionary words have the given length.
func NumWords(length int) int { return byLength[length] }

// Lengths returns the word lengths available in the dictionary, sorted.
func Lengths() []int {
	out := make([]int, 0, len(byLength))
	for l := range byLength {
		out = append(out, l)
	}
	sort.Ints(out)
	return out
}

// Stats returns the total word count and the per-length breakdown.
func Stats() (total int, perLength map[int]int) {
	perLength = make(map[int]int, len(byLength))
	for l, n := range byLength {
		perLength[l] = n
	}
	return len(list), perLength
}
