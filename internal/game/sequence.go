package game

import (
	"strconv"
	"strings"
)

// Sequence is an ordered code: either the hidden solution or a player guess.
type Sequence []int

func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

func (s Sequence) Clone() Sequence {
	return append(Sequence(nil), s...)
}

// String renders the sequence as space-separated integers, e.g. "1 4 0 6".
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}
