package checker

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter reads answers line by line, printing prompts only when a person is typing them
type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	interactive bool
}

// MakePrompter builds Prompter reading from in. Prompts are written to out when interactive is true
func MakePrompter(in io.Reader, out io.Writer, interactive bool) *Prompter {
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		interactive: interactive,
	}
}

// MakeStdinPrompter builds Prompter on os.Stdin, prompting on os.Stdout only if stdin is a terminal
func MakeStdinPrompter() *Prompter {
	return MakePrompter(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// Ask prints prompt and returns the next line with surrounding whitespace removed
func (p *Prompter) Ask(prompt string) (string, error) {
	if p.interactive {
		if _, err := fmt.Fprint(p.out, prompt); err != nil {
			return "", err
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || len(line) == 0) {
		return "", fmt.Errorf("reading answer to %q: %w", strings.TrimSpace(prompt), err)
	}
	return strings.TrimSpace(line), nil
}
