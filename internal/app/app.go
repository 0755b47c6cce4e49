package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"golang.org/x/sync/errgroup"

	"example.com/mastermind/internal/cli"
	"example.com/mastermind/internal/config"
	"example.com/mastermind/internal/game"
)

const rulesText = `Welcome to Mastermind!
The basic premise of the game is that you are trying to guess a secret code.
The code is four different colors. There are six colors to choose from, so a code could be:
"Red blue green white" or "Yellow red black green"
Depending on the rules chosen, the code could possibly contain duplicate colors or blanks, making a large number of possibilities!

Gameplay is as follows: Guess the code, and your guess will be "graded". Your clue will be in the form of colored pegs.
A black peg means that one of your guessed colors is the correct color and in the correct position.
A white peg means that you have guessed a color correctly but it is in the incorrect location.

So a clue of four white pegs means you have guessed all of the correct colors, but they are not in the correct order.
One black peg and two white pegs means that one of your colors is in the correct position and
you have two other correct colors in the incorrect position.

"Regular Mastermind" has a code of 4 colors, with 6 different available colors.
"Advanced Mastermind" has a code of 5 colors, with 8 different available colors.
Have fun!

NOTE: For now, the colors are represented as integers from 1-8. Blanks are represented by zero.
Your grade will be numbers: Black pegs are represented by "2", and white pegs are represented by "1"
`

type App struct {
	cfg     config.Config
	log     *slog.Logger
	console *cli.Console
	rand    *rand.Rand
}

type Options struct {
	// Input is closed when the context is cancelled so a blocked read
	// unblocks; nil if the caller manages the reader itself.
	Input io.Closer
}

func New(cfg config.Config, log *slog.Logger, console *cli.Console) *App {
	if log == nil {
		log = slog.Default()
	}

	src := rand.NewPCG(cfg.Game.Seed, 0)
	if cfg.Game.Seed == 0 {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}

	return &App{
		cfg:     cfg,
		log:     log,
		console: console,
		rand:    rand.New(src),
	}
}

// Run plays one session to completion. Cancelling the context closes the
// input (when provided), which unblocks the pending read and ends the game.
func (a *App) Run(ctx context.Context, opts Options) error {
	done := make(chan struct{})
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(done)
		err := a.play()
		if err == nil || errors.Is(err, io.EOF) || errors.Is(err, os.ErrClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		select {
		case <-done:
		case <-gctx.Done():
			if opts.Input != nil {
				a.log.Info("shutting down")
				_ = opts.Input.Close()
			}
		}
		return nil
	})

	return g.Wait()
}

func (a *App) play() error {
	rules, err := a.setup()
	if err != nil {
		return err
	}

	solution := game.NewSolution(a.rand, rules)
	session := game.NewSession(rules, solution, a.cfg.Game.MaxGuesses)
	a.log.Info("session started",
		"sessionId", session.ID,
		"spaces", rules.Spaces,
		"colors", rules.Colors,
		"allowBlanks", rules.AllowBlanks,
		"allowDuplicates", rules.AllowDuplicates,
	)

	a.console.Display("Enter your guess!\n")
	for session.Status() == game.StatusInProgress {
		if err := a.playTurn(session, rules); err != nil {
			return err
		}
	}

	a.console.Display("\n\n")
	switch session.Status() {
	case game.StatusWon:
		a.console.Display("You win! Score: %d\n", session.GuessCount())
	case game.StatusLost:
		a.console.Display("Too many guesses... Here is the solution: %s\n", cli.RenderSequence(session.Reveal()))
	}
	a.log.Info("session finished", "transcript", session.Transcript())
	return nil
}

// setup walks the operator through the variant menu and derives the rules.
func (a *App) setup() (game.Rules, error) {
	printRules, err := a.console.RequestChoice("Print the rules (1) or not (0)?", 0, 1)
	if err != nil {
		return game.Rules{}, err
	}
	if printRules == 1 {
		a.console.Display("%s\n", rulesText)
	}

	variant, err := a.console.RequestChoice("Regular Mastermind (1) or Advanced Mastermind (2)?", 1, 2)
	if err != nil {
		return game.Rules{}, err
	}
	blanks, err := a.console.RequestChoice("Allow blanks (1) or no (0)?", 0, 1)
	if err != nil {
		return game.Rules{}, err
	}
	doubles, err := a.console.RequestChoice("Allow doubles (1) or no (0)?", 0, 1)
	if err != nil {
		return game.Rules{}, err
	}

	if variant == 1 {
		return game.RegularRules(blanks == 1, doubles == 1)
	}
	return game.AdvancedRules(blanks == 1, doubles == 1)
}

// playTurn reads one line, validates it, and plays it if valid. Validation
// failures print a corrective message naming the expected format and do not
// consume a guess.
func (a *App) playTurn(session *game.Session, rules game.Rules) error {
	line, err := a.console.RequestLine("")
	if err != nil {
		return err
	}

	guess, err := game.ParseGuess(line, rules)
	if err != nil {
		var parseErr *game.ParseError
		if errors.As(err, &parseErr) {
			a.console.Display("Please enter only integers from %d to %d separated by spaces. ", rules.MinSymbol(), rules.MaxSymbol())
			return nil
		}
		a.console.Display("Please enter %d integers between %d and %d. ", rules.Spaces, rules.MinSymbol(), rules.MaxSymbol())
		return nil
	}

	turn, err := session.Play(guess)
	if err != nil {
		return err
	}
	a.console.Display("%s %s\n", cli.RenderSequence(turn.Guess), cli.RenderClue(turn.Clue))
	return nil
}
