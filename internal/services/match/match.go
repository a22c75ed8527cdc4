// Package match implements the evaluator that scores a guess against a
// secret code.
package match

import "github.com/jtoman/codeduel/internal/model"

// Result is the feedback pair for a single guess.
type Result struct {
	// CorrectDigits counts digit values shared between secret and guess,
	// with repeats capped at the smaller occurrence count.
	CorrectDigits int
	// CorrectPositions counts indices where secret and guess agree exactly.
	CorrectPositions int
}

// IsWinning reports whether the result wins the game. Winning is
// positions-only: four matching digits in scrambled order do not win.
func (r Result) IsWinning() bool {
	return r.CorrectPositions == model.CodeLength
}

// Evaluate compares a guess against a secret code. Both inputs must already
// be validated as codes of length model.CodeLength; the evaluator does not
// re-check the format.
//
// The digit count treats both codes as multisets and sums
// min(occurrences in secret, occurrences in guess) per digit value, so a
// digit repeating more often in one code than the other never overcounts.
// The digit component is symmetric in its arguments.
func Evaluate(secret, guess model.Code) Result {
	var res Result

	var secretCounts, guessCounts [10]int
	for i := 0; i < model.CodeLength; i++ {
		if secret[i] == guess[i] {
			res.CorrectPositions++
		}
		secretCounts[secret[i]-'0']++
		guessCounts[guess[i]-'0']++
	}

	for d := 0; d < 10; d++ {
		if secretCounts[d] < guessCounts[d] {
			res.CorrectDigits += secretCounts[d]
		} else {
			res.CorrectDigits += guessCounts[d]
		}
	}

	return res
}
