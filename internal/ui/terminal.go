// Package ui abstracts the terminal so screens can be driven by tests.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// UI is the capability screens use to talk to the technician.
type UI interface {
	// Show renders one or more lines of screen content.
	Show(lines ...string)
	// Prompt asks for a line of input. io.EOF means the user quit.
	Prompt(label string) (string, error)
	// Alert displays a modal-style notification.
	Alert(message string)
}

// Terminal implements UI over an input reader and output writer.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

// NewTerminal creates a terminal UI.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (t *Terminal) Show(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(t.out, line)
	}
}

func (t *Terminal) Prompt(label string) (string, error) {
	fmt.Fprintf(t.out, "%s: ", label)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (t *Terminal) Alert(message string) {
	fmt.Fprintf(t.out, "\n[!] %s\n\n", message)
}
