package gate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ConfirmFunc asks the user a yes/no question and returns their answer.
// The gate treats any false as a decline and performs no delegation.
type ConfirmFunc func(prompt string) bool

// NewStdinConfirm returns a ConfirmFunc that reads y/N answers from r,
// writing the prompt to w. Empty input and EOF both decline.
func NewStdinConfirm(r io.Reader, w io.Writer) ConfirmFunc {
	reader := bufio.NewReader(r)
	return func(prompt string) bool {
		for {
			fmt.Fprintf(w, "\n%s (y/N): ", prompt)

			line, err := reader.ReadString('\n')
			if err != nil && line == "" {
				return false
			}

			switch strings.ToLower(strings.TrimSpace(line)) {
			case "y", "yes":
				return true
			case "n", "no", "":
				return false
			default:
				fmt.Fprintln(w, "Please enter 'y' for yes or 'n' for no.")
			}
		}
	}
}
