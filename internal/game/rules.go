package game

import (
	"errors"
	"fmt"
)

// ErrConfiguration means the chosen rules cannot produce any valid solution.
var ErrConfiguration = errors.New("invalid rules")

// Rules describes one game variant: how long the code is, how many colors
// are available, and whether the solution may contain blanks or repeats.
//
// Colors are the integers 1..Colors; 0 is the blank and is only in play
// when AllowBlanks is set.
type Rules struct {
	Spaces          int  `json:"spaces"`
	Colors          int  `json:"colors"`
	AllowBlanks     bool `json:"allowBlanks"`
	AllowDuplicates bool `json:"allowDuplicates"`
}

// NewRules validates the variant parameters. Without blanks and without
// duplicates there must be at least as many colors as spaces, otherwise
// the generator could never fill the code.
func NewRules(spaces, colors int, allowBlanks, allowDuplicates bool) (Rules, error) {
	if spaces <= 0 {
		return Rules{}, fmt.Errorf("%w: spaces must be positive, got %d", ErrConfiguration, spaces)
	}
	if colors <= 0 {
		return Rules{}, fmt.Errorf("%w: colors must be positive, got %d", ErrConfiguration, colors)
	}
	if !allowBlanks && !allowDuplicates && colors < spaces {
		return Rules{}, fmt.Errorf("%w: not enough distinct symbols to fill the sequence without repetition or blanks (%d colors, %d spaces)", ErrConfiguration, colors, spaces)
	}
	return Rules{
		Spaces:          spaces,
		Colors:          colors,
		AllowBlanks:     allowBlanks,
		AllowDuplicates: allowDuplicates,
	}, nil
}

// RegularRules is the classic board: 4 spaces, 6 colors.
func RegularRules(allowBlanks, allowDuplicates bool) (Rules, error) {
	return NewRules(4, 6, allowBlanks, allowDuplicates)
}

// AdvancedRules is the bigger board: 5 spaces, 8 colors.
func AdvancedRules(allowBlanks, allowDuplicates bool) (Rules, error) {
	return NewRules(5, 8, allowBlanks, allowDuplicates)
}

// MinSymbol is the lowest value a symbol may take under these rules.
func (r Rules) MinSymbol() int {
	if r.AllowBlanks {
		return 0
	}
	return 1
}

// MaxSymbol is the highest value a symbol may take under these rules.
func (r Rules) MaxSymbol() int {
	return r.Colors
}
