package confirm

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Decision is the outcome of prompting for one duplicate group.
type Decision int

const (
	// Skipped leaves the current group untouched and moves on.
	Skipped Decision = iota
	// Confirmed approves deletion for the current group.
	Confirmed
	// SkipAll leaves every remaining group untouched.
	SkipAll
	// Quit stops processing immediately.
	Quit
)

func (d Decision) String() string {
	switch d {
	case Confirmed:
		return "confirmed"
	case SkipAll:
		return "skip-all"
	case Quit:
		return "quit"
	default:
		return "skipped"
	}
}

// Prompter asks for one decision per duplicate group.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// New builds a Prompter reading answers from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Ask blocks for a single answer. `y` confirms, `s` skips all remaining
// groups, `q` quits, and anything else (including EOF or a read error)
// skips just the current group — except EOF, which quits, since no further
// answers can ever arrive.
func (p *Prompter) Ask() Decision {
	fmt.Fprint(p.out, "  Proceed with deletion? [y/N/s(kip all)/q(uit)]: ")

	if !p.in.Scan() {
		return Quit
	}

	switch strings.ToLower(strings.TrimSpace(p.in.Text())) {
	case "y":
		return Confirmed
	case "s":
		return SkipAll
	case "q":
		return Quit
	default:
		return Skipped
	}
}
