package game

// Clue is the feedback for one guess: Exact counts symbols in the right
// position, Present counts correct symbols in the wrong position.
// Exact+Present never exceeds the sequence length, and a single symbol
// occurrence is never counted twice.
type Clue struct {
	Exact   int `json:"exact"`
	Present int `json:"present"`
}

// Marker values shown to the player.
const (
	MarkerExact   = 2 // black peg
	MarkerPresent = 1 // white peg
)

// Score compares a guess against the solution. Both sequences must have the
// same length. Symmetric: swapping the arguments yields the same clue.
func Score(guess, solution Sequence) Clue {
	var clue Clue

	// exact positions first
	used := make([]bool, len(solution))
	for i := range solution {
		if guess[i] == solution[i] {
			clue.Exact++
			used[i] = true
		}
	}

	// symbol counts for the remainder
	cntS := make(map[int]int)
	cntG := make(map[int]int)
	for i := range solution {
		if !used[i] {
			cntS[solution[i]]++
			cntG[guess[i]]++
		}
	}

	for symbol, g := range cntG {
		if s := cntS[symbol]; s < g {
			clue.Present += s
		} else {
			clue.Present += g
		}
	}

	return clue
}

// Markers renders the clue in display order: all EXACT values, then all
// PRESENT values.
func (c Clue) Markers() []int {
	markers := make([]int, 0, c.Exact+c.Present)
	for i := 0; i < c.Exact; i++ {
		markers = append(markers, MarkerExact)
	}
	for i := 0; i < c.Present; i++ {
		markers = append(markers, MarkerPresent)
	}
	return markers
}
