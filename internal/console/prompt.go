package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on out and reads one line of answer from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the terminal descriptor for in, or -1 when in is not a terminal.
	fd int
}

// NewPrompter returns a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out, fd: -1}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// Text prints message on its own line (if non-empty), then reads a line and
// returns it with surrounding whitespace removed. End of input yields
// whatever was read so far.
func (p *Prompter) Text(message string) (string, error) {
	if message != "" {
		fmt.Fprintln(p.out, message)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// YesNo returns true only when the answer is "y", ignoring case.
// Anything else, including "yes", counts as no.
func (p *Prompter) YesNo(message string) (bool, error) {
	answer, err := p.Text(message)
	if err != nil {
		return false, err
	}
	return strings.ToLower(answer) == "y", nil
}

// Secret reads a line like Text, but without echo when input is a terminal.
func (p *Prompter) Secret(message string) (string, error) {
	if p.fd < 0 {
		return p.Text(message)
	}

	if message != "" {
		fmt.Fprintln(p.out, message)
	}
	b, err := term.ReadPassword(p.fd)
	if err != nil {
		return "", fmt.Errorf("reading password: %w", err)
	}
	fmt.Fprintln(p.out)
	return strings.TrimSpace(string(b)), nil
}
