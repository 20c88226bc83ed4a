package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	ErrEmailRequired    = errors.New("email is required")
	ErrPasswordRequired = errors.New("password is required")
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine prints prompt and returns the next trimmed line. A final line
// without a newline still counts.
func readLine(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetEmail asks for the account email. The value is passed on as typed
// (emails are case-sensitive); only a blank answer is rejected.
func GetEmail(reader *bufio.Reader, w io.Writer) (string, error) {
	email, err := readLine(reader, "Email", w)
	if err != nil {
		return "", err
	}
	if email == "" {
		return "", ErrEmailRequired
	}
	return email, nil
}

// GetDisplayName asks for an optional display name. An empty answer lets
// the server derive one from the email.
func GetDisplayName(reader *bufio.Reader, w io.Writer) (string, error) {
	return readLine(reader, "Display name (empty to use the part of your email before @)", w)
}

// GetPassword reads a password from the terminal without echo. The caller
// should clear the returned slice when done.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if len(pw) == 0 {
		return nil, ErrPasswordRequired
	}
	return pw, nil
}
