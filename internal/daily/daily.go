// internal/daily/daily.go
//
// Deterministic parameters for the daily gauntlet: every player who starts
// the daily round on the same date faces the same word length, guess
// budget, and difficulty, derived from HMAC(salt, YYYY-MM-DD).

package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"time"

	"github.com/joshuaxchen/Evil-Hangman/internal/hangman"
)

// Params are the round settings every player shares on a given date.
type Params struct {
	WordLen    int                `json:"wordLength"`
	NumGuesses int                `json:"guesses"`
	Difficulty hangman.Difficulty `json:"difficulty"`
}

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ParamsFor derives the day's round parameters from HMAC(salt, date key).
// lengths must be the word lengths available in the dictionary; an empty
// slice yields zero Params (callers check WordLen > 0).
func ParamsFor(date time.Time, salt string, lengths []int) Params {
	if len(lengths) == 0 {
		return Params{}
	}
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)

	// Separate bytes drive length, difficulty, and budget so the three
	// vary independently across dates.
	n := binary.BigEndian.Uint64(sum[:8])
	wordLen := lengths[int(n%uint64(len(lengths)))]

	diffs := []hangman.Difficulty{hangman.Easy, hangman.Medium, hangman.Hard}
	diff := diffs[int(sum[8])%len(diffs)]

	numGuesses := 6 + int(sum[9])%3 // 6..8 wrong guesses

	return Params{WordLen: wordLen, NumGuesses: numGuesses, Difficulty: diff}
}
