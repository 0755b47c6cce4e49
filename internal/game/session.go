package game

import (
	"errors"

	"github.com/google/uuid"
)

// DefaultMaxGuesses is the classic guess budget.
const DefaultMaxGuesses = 12

// ErrFinished is returned by Play once the session has been won or lost.
var ErrFinished = errors.New("session already finished")

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Turn records one accepted guess and its clue.
type Turn struct {
	Number int      `json:"number"`
	Guess  Sequence `json:"guess"`
	Clue   Clue     `json:"clue"`
}

// Session is one play-through: a hidden solution, a guess budget, and the
// turns taken so far. It owns its solution; Reveal hands it out only after
// the session has ended.
type Session struct {
	ID    string
	Rules Rules

	solution   Sequence
	maxGuesses int

	guesses int
	status  Status
	history []Turn
}

func NewSession(rules Rules, solution Sequence, maxGuesses int) *Session {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	return &Session{
		ID:         uuid.NewString(),
		Rules:      rules,
		solution:   solution.Clone(),
		maxGuesses: maxGuesses,
		status:     StatusInProgress,
	}
}

// Play accepts one validated guess: increments the guess count, scores it,
// and transitions the session. Won when the guess matches the solution
// element-wise, Lost when the budget runs out, otherwise still in progress.
func (s *Session) Play(guess Sequence) (Turn, error) {
	if s.status != StatusInProgress {
		return Turn{}, ErrFinished
	}

	s.guesses++
	turn := Turn{
		Number: s.guesses,
		Guess:  guess.Clone(),
		Clue:   Score(guess, s.solution),
	}
	s.history = append(s.history, turn)

	switch {
	case guess.Equal(s.solution):
		s.status = StatusWon
	case s.guesses == s.maxGuesses:
		s.status = StatusLost
	}
	return turn, nil
}

func (s *Session) Status() Status { return s.status }

// GuessCount is the number of accepted guesses so far; on a won session
// this is the score.
func (s *Session) GuessCount() int { return s.guesses }

func (s *Session) GuessesLeft() int { return s.maxGuesses - s.guesses }

// Reveal returns the solution once the session has ended, nil while the
// game is still in progress.
func (s *Session) Reveal() Sequence {
	if s.status == StatusInProgress {
		return nil
	}
	return s.solution.Clone()
}

// History returns the turns taken so far, oldest first.
func (s *Session) History() []Turn {
	return append([]Turn(nil), s.history...)
}
