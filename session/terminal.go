package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal reads answers line by line. Passwords are read without echo when
// the input is an interactive terminal.
type Terminal struct {
	in     *bufio.Reader
	out    io.Writer
	fd     int
	hidden bool
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	t := &Terminal{
		in:  bufio.NewReader(in),
		out: out,
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.fd = int(f.Fd())
		t.hidden = true
	}
	return t
}

// Prompt prints the prompt and returns the next line without its line ending.
// It returns io.EOF once the input is exhausted.
func (t *Terminal) Prompt(prompt string) (string, error) {
	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", err
	}
	return t.readLine()
}

func (t *Terminal) PromptPassword(prompt string) (string, error) {
	if !t.hidden {
		return t.Prompt(prompt)
	}

	if _, err := fmt.Fprint(t.out, prompt); err != nil {
		return "", err
	}
	password, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", err
	}
	return string(password), nil
}

func (t *Terminal) Println(a ...any) {
	fmt.Fprintln(t.out, a...)
}

func (t *Terminal) Writer() io.Writer {
	return t.out
}

func (t *Terminal) readLine() (string, error) {
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
