package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConsolePrompter asks overwrite questions on the terminal. An empty
// answer defaults to no, matching cp -i. It implements types.Prompter.
type ConsolePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsolePrompter creates a prompter reading answers from in and
// writing questions to out (normally stderr, so piped stdout stays
// clean).
func NewConsolePrompter(in io.Reader, out io.Writer) *ConsolePrompter {
	return &ConsolePrompter{in: bufio.NewReader(in), out: out}
}

// ConfirmOverwrite asks whether path may be overwritten.
func (p *ConsolePrompter) ConfirmOverwrite(path string) (bool, error) {
	if _, err := fmt.Fprintf(p.out, "overwrite %s? [y/N]: ", path); err != nil {
		return false, err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}
