package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints prompt with a [y/N] suffix and reads one answer line.
// Only an answer starting with y or Y proceeds; empty input and anything
// else decline. Declining is a normal outcome, not an error. End of
// input counts as a decline, so a closed stdin can never start an
// upload.
func Confirm(r io.Reader, w io.Writer, prompt string) (bool, error) {
	fmt.Fprintf(w, "%s [y/N] > ", prompt)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, err
		}
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return strings.HasPrefix(answer, "y"), nil
}

// PromptToken asks the user to paste an Imgur access token, retrying
// until a non-empty line arrives. The token is echoed by the terminal as
// typed; it is the caller's job to keep it out of logs afterwards.
func PromptToken(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprintln(w, "No Imgur access token is configured.")

	scanner := bufio.NewScanner(r)
	for {
		fmt.Fprint(w, "Paste your Imgur access token > ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}

		token := strings.TrimSpace(scanner.Text())
		if token != "" {
			return token, nil
		}
		fmt.Fprintln(w, "The token cannot be empty.")
	}
}
