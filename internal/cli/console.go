package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Console is the terminal collaborator: it owns the one line reader for the
// process and handles all prompting and display. The retry-until-valid loop
// for menu choices lives here, not in the game core.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(r io.Reader, w io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(r),
		out: w,
	}
}

// RequestLine prompts (if prompt is non-empty) and blocks until a line is
// available, returning it with surrounding whitespace stripped. A transient
// read error is reported and retried; io.EOF means the input is exhausted
// and is returned to the caller.
func (c *Console) RequestLine(prompt string) (string, error) {
	for {
		if prompt != "" {
			c.Display("%s\n", prompt)
		}
		line, err := c.in.ReadString('\n')
		if err == io.EOF {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				return trimmed, nil
			}
			return "", io.EOF
		}
		if errors.Is(err, os.ErrClosed) {
			// the reader was closed under us (shutdown); nothing to retry
			return "", err
		}
		if err != nil {
			c.Display("There was an error reading the input, try again.\n")
			continue
		}
		return strings.TrimSpace(line), nil
	}
}

// RequestChoice prompts and re-prompts until the operator supplies one of
// the given options.
func (c *Console) RequestChoice(prompt string, options ...int) (int, error) {
	for {
		line, err := c.RequestLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || !containsInt(options, n) {
			c.Display("Please input one of the given options.\n")
			continue
		}
		return n, nil
	}
}

// Display writes fire-and-forget output.
func (c *Console) Display(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
