package prompt

import (
	// Stdlib
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Confirm prints the question and reads the answer from stdin.
// Only 'y' (case-insensitive) means yes; any other input means no.
func Confirm(question string) (bool, error) {
	fmt.Print(question)
	fmt.Print(" [y/N]: ")

	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	if err := scanner.Err(); err != nil {
		return false, err
	}

	return strings.ToLower(strings.TrimSpace(scanner.Text())) == "y", nil
}

// Prompt prints the message and returns the line typed by the user.
func Prompt(msg string) (string, error) {
	fmt.Print(msg)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Scan()
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return scanner.Text(), nil
}

// Prompter plugs stdin confirmation into the release flow.
type Prompter struct{}

func (Prompter) Confirm(question string) (bool, error) {
	return Confirm(question)
}
