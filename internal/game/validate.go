package game

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError means a token in the guess line is not an integer.
type ParseError struct {
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%q is not an integer", e.Token)
}

// LengthError means the guess has the wrong number of symbols.
type LengthError struct {
	Got  int
	Want int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("guess has %d symbols, want %d", e.Got, e.Want)
}

// RangeError means a symbol falls outside the variant's allowed range.
type RangeError struct {
	Value int
	Min   int
	Max   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("symbol %d out of range [%d, %d]", e.Value, e.Min, e.Max)
}

// ParseGuess turns one raw input line into a validated guess. Tokens may be
// separated by whitespace and/or commas. Checks run in order: integer parse,
// exact length, symbol range. The caller owns the re-prompt loop; this
// function never retries.
//
// Repeated symbols in a guess are accepted even when the rules forbid
// duplicates in the solution — guessing is unconstrained.
func ParseGuess(line string, rules Rules) (Sequence, error) {
	tokens := strings.Fields(strings.ReplaceAll(line, ",", " "))

	guess := make(Sequence, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil, &ParseError{Token: tok}
		}
		guess = append(guess, n)
	}

	if len(guess) != rules.Spaces {
		return nil, &LengthError{Got: len(guess), Want: rules.Spaces}
	}

	low, high := rules.MinSymbol(), rules.MaxSymbol()
	for _, v := range guess {
		if v < low || v > high {
			return nil, &RangeError{Value: v, Min: low, Max: high}
		}
	}
	return guess, nil
}
