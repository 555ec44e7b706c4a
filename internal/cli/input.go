package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

var ErrEmptyInput = errors.New("empty input")

// GetPassword prints prompt to w and reads a line from the terminal without
// echo. Surrounding whitespace is trimmed and an empty answer is an error.
func GetPassword(w io.Writer, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	s := strings.TrimSpace(string(pw))
	if s == "" {
		return "", ErrEmptyInput
	}
	return s, nil
}

// GetNewPassword asks for a password twice and fails when the entries differ.
func GetNewPassword(w io.Writer, prompt string) (string, error) {
	first, err := GetPassword(w, prompt)
	if err != nil {
		return "", err
	}
	second, err := GetPassword(w, "Repeat "+strings.ToLower(prompt[:1])+prompt[1:])
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("entries do not match")
	}
	return first, nil
}
