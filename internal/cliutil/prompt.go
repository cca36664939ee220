// Package cliutil holds the small terminal-prompting helpers shared by the
// client binary's subcommands.
package cliutil

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// MaybeInput returns value if non-empty, otherwise prompts the user on
// stdout and reads a line from stdin.
func MaybeInput(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Printf("[?] %s ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("cliutil: failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// MaybePassword returns value if non-empty, otherwise prompts the user and
// reads a password from the terminal without echoing it.
func MaybePassword(value, prompt string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Printf("[?] %s ", prompt)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("cliutil: failed to read password: %w", err)
	}
	return string(b), nil
}
