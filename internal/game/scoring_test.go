package game

import (
	"math/rand/v2"
	"testing"
)

func TestScore_AllMatch(t *testing.T) {
	c := Score(Sequence{1, 2, 3, 4}, Sequence{1, 2, 3, 4})
	if c.Exact != 4 || c.Present != 0 {
		t.Fatalf("expected 4 exact,0 present got %d,%d", c.Exact, c.Present)
	}
}

func TestScore_NoMatch(t *testing.T) {
	c := Score(Sequence{5, 5, 5, 5}, Sequence{1, 2, 3, 4})
	if c.Exact != 0 || c.Present != 0 {
		t.Fatalf("expected 0,0 got %d,%d", c.Exact, c.Present)
	}
}

func TestScore_AllPresent(t *testing.T) {
	// full reversal: every symbol right, every position wrong
	c := Score(Sequence{4, 3, 2, 1}, Sequence{1, 2, 3, 4})
	if c.Exact != 0 || c.Present != 4 {
		t.Fatalf("expected 0,4 got %d,%d", c.Exact, c.Present)
	}
}

func TestScore_WithRepeats(t *testing.T) {
	// solution 1122, guess 1212 -> exact at positions 0 and 3, the
	// remaining 2,1 vs 1,2 pair off as present
	c := Score(Sequence{1, 2, 1, 2}, Sequence{1, 1, 2, 2})
	if c.Exact != 2 || c.Present != 2 {
		t.Fatalf("expected 2,2 got %d,%d", c.Exact, c.Present)
	}
}

func TestScore_RepeatsCountedAsMultiset(t *testing.T) {
	// a duplicated guess symbol must not over-count a single solution symbol
	c := Score(Sequence{1, 1, 1, 1}, Sequence{1, 2, 3, 4})
	if c.Exact != 1 || c.Present != 0 {
		t.Fatalf("expected 1,0 got %d,%d", c.Exact, c.Present)
	}
}

func TestScore_UnmatchedSymbolIgnored(t *testing.T) {
	c := Score(Sequence{1, 2, 3, 5}, Sequence{1, 2, 3, 4})
	if c.Exact != 3 || c.Present != 0 {
		t.Fatalf("expected 3,0 got %d,%d", c.Exact, c.Present)
	}
}

func TestScore_BlanksScoreLikeAnyOtherSymbol(t *testing.T) {
	c := Score(Sequence{0, 0, 1, 2}, Sequence{0, 1, 0, 3})
	if c.Exact != 1 || c.Present != 2 {
		t.Fatalf("expected 1,2 got %d,%d", c.Exact, c.Present)
	}
}

func TestScore_SymmetricAndBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 0))
	rules := Rules{Spaces: 5, Colors: 8, AllowBlanks: true, AllowDuplicates: true}

	for i := 0; i < 500; i++ {
		a := NewSolution(r, rules)
		b := NewSolution(r, rules)

		ab := Score(a, b)
		ba := Score(b, a)
		if ab != ba {
			t.Fatalf("score not symmetric: %+v vs %+v for %v / %v", ab, ba, a, b)
		}
		if ab.Exact+ab.Present > rules.Spaces {
			t.Fatalf("clue too large: %+v for %v / %v", ab, a, b)
		}
		if (ab.Exact == rules.Spaces) != a.Equal(b) {
			t.Fatalf("full-exact must coincide with equality: %+v for %v / %v", ab, a, b)
		}
	}
}

func TestClue_Markers(t *testing.T) {
	cases := []struct {
		clue Clue
		want []int
	}{
		{Clue{Exact: 2, Present: 1}, []int{2, 2, 1}},
		{Clue{Exact: 0, Present: 3}, []int{1, 1, 1}},
		{Clue{Exact: 4, Present: 0}, []int{2, 2, 2, 2}},
		{Clue{}, []int{}},
	}
	for _, tc := range cases {
		got := tc.clue.Markers()
		if len(got) != len(tc.want) {
			t.Fatalf("Markers(%+v)=%v want %v", tc.clue, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("Markers(%+v)=%v want %v", tc.clue, got, tc.want)
			}
		}
	}
}
