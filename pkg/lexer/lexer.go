package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Line is one line of source, pre-split into tokens. Lines are immutable
// after lexing and are threaded through the compiler so every diagnostic
// can name its origin.
type Line struct {
	File   string
	Number int
	Tokens []string
}

func (l *Line) Position() string {
	return fmt.Sprintf("%s:%d", l.File, l.Number)
}

func (l *Line) WrapError(err error) error {
	if err == nil {
		return nil
	}

	var lineErr LineError
	if errors.As(err, &lineErr) {
		return err
	}

	return LineError{File: l.File, Number: l.Number, Err: err}
}

type LineError struct {
	File   string
	Number int
	Err    error
}

func (e LineError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.File, e.Number, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// Tokenize splits source text into lines of tokens. Blank lines and
// comment-only lines are dropped.
func Tokenize(file string, r io.Reader) ([]*Line, error) {
	var lines []*Line

	scanner := bufio.NewScanner(r)
	number := 0
	for scanner.Scan() {
		number++
		line := &Line{File: file, Number: number}

		tokens, err := splitTokens(scanner.Text())
		if err != nil {
			return nil, line.WrapError(err)
		}

		if len(tokens) == 0 {
			continue
		}

		line.Tokens = tokens
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", file, err)
	}

	return lines, nil
}

func isPunct(r rune) bool {
	return strings.ContainsRune("=+-*/%();", r)
}

func splitTokens(text string) ([]string, error) {
	var tokens []string

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == '/' && i+1 < len(runes) && runes[i+1] == '/':
			return tokens, nil
		case unicode.IsSpace(r):
		case isPunct(r):
			tokens = append(tokens, string(r))
		case r == '"':
			j := i + 1
			for j < len(runes) && runes[j] != '"' {
				j++
			}
			if j == len(runes) {
				return nil, fmt.Errorf("unterminated string literal")
			}
			tokens = append(tokens, string(runes[i:j+1]))
			i = j
		default:
			j := i
			for j < len(runes) && !unicode.IsSpace(runes[j]) && !isPunct(runes[j]) && runes[j] != '"' {
				j++
			}
			tokens = append(tokens, string(runes[i:j]))
			i = j - 1
		}
	}

	return tokens, nil
}
