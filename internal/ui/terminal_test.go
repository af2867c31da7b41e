package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestTerminal_Prompt(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader("  2389045  \n"), out)

	value, err := term.Prompt("Employee ID")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if value != "2389045" {
		t.Errorf("Expected trimmed input '2389045', got %q", value)
	}
	if !strings.Contains(out.String(), "Employee ID: ") {
		t.Errorf("Expected label in output, got %q", out.String())
	}
}

func TestTerminal_PromptEOF(t *testing.T) {
	term := NewTerminal(strings.NewReader(""), &bytes.Buffer{})

	if _, err := term.Prompt("Anything"); err != io.EOF {
		t.Errorf("Expected io.EOF, got %v", err)
	}
}

func TestTerminal_ShowAndAlert(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader(""), out)

	term.Show("line one", "line two")
	term.Alert("Something went wrong")

	output := out.String()
	if !strings.Contains(output, "line one\nline two\n") {
		t.Errorf("Expected shown lines, got %q", output)
	}
	if !strings.Contains(output, "[!] Something went wrong") {
		t.Errorf("Expected alert marker, got %q", output)
	}
}
