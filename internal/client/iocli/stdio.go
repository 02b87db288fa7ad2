package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх произвольных потоков ввода/вывода
type Stdio struct {
	in    *bufio.Reader
	out   io.Writer
	stdin *os.File
}

// NewStdio возвращает IO поверх os.Stdin/os.Stdout
func NewStdio() IO {
	return &Stdio{
		in:    bufio.NewReader(os.Stdin),
		out:   os.Stdout,
		stdin: os.Stdin,
	}
}

// NewStreams возвращает IO поверх заданных потоков.
// Пароли читаются как обычные строки, т.к. in не терминал.
func NewStreams(in io.Reader, out io.Writer) IO {
	return &Stdio{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil && !(err == io.EOF && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	if s.stdin == nil || !term.IsTerminal(int(s.stdin.Fd())) {
		// Не терминал (pipe, тесты): читаем строку без эха
		input, err := s.ReadInput(prompt)
		return input, err
	}

	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(int(s.stdin.Fd()))
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
