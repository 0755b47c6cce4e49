package game

import "math/rand/v2"

// NewSolution draws a random code conforming to the rules. Symbols are
// drawn uniformly from [MinSymbol, MaxSymbol]; when duplicates are not
// allowed, a repeated draw is rejected and redrawn. The redraw loop
// terminates because NewRules guarantees enough distinct symbols exist —
// callers must not pass hand-built Rules that skipped that check.
func NewSolution(r *rand.Rand, rules Rules) Sequence {
	low := rules.MinSymbol()
	span := rules.MaxSymbol() - low + 1

	solution := make(Sequence, 0, rules.Spaces)
	for len(solution) < rules.Spaces {
		symbol := low + r.IntN(span)
		if !rules.AllowDuplicates && contains(solution, symbol) {
			continue
		}
		solution = append(solution, symbol)
	}
	return solution
}

func contains(s Sequence, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
