// Package textio reads points from and writes dendrograms to plain text
// streams.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// ParseError reports a token that is not a finite number.
type ParseError struct {
	Line  int // 1-based line number
	Index int // 1-based position of the token within its line
	Token string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, token %d: invalid number %q", e.Line, e.Index, e.Token)
}

// ReadOptions controls ReadPoints.
type ReadOptions struct {
	// StopAtInvalid ends reading at the first token that is not a number and
	// returns the points read so far instead of a *ParseError.
	StopAtInvalid bool
}

// ReadPoints parses whitespace separated numbers from r until EOF. Input is
// consumed token by token, so line length is unbounded.
// A token that is not a finite number yields a *ParseError unless
// opts.StopAtInvalid is set.
func ReadPoints(r io.Reader, opts ReadOptions) ([]float64, error) {
	tk := &tokenizer{line: 1}
	scanner := bufio.NewScanner(r)
	scanner.Split(tk.split)

	var points []float64
	for scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			if opts.StopAtInvalid {
				return points, nil
			}
			return nil, &ParseError{Line: tk.line, Index: tk.index, Token: tok}
		}
		points = append(points, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "read points at line %d", tk.line)
	}
	return points, nil
}

// tokenizer is a bufio.SplitFunc source that yields whitespace separated
// tokens and tracks the line and in-line index of the last one returned.
type tokenizer struct {
	line  int
	index int
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (t *tokenizer) split(data []byte, atEOF bool) (int, []byte, error) {
	start, newlines := 0, 0
	for ; start < len(data) && isSpace(data[start]); start++ {
		if data[start] == '\n' {
			newlines++
		}
	}
	end := start
	for end < len(data) && !isSpace(data[end]) {
		end++
	}

	// State only changes when input is consumed; a zero advance means the
	// scanner calls again with the same bytes plus more.
	switch {
	case end > start && (end < len(data) || atEOF):
		t.skipLines(newlines)
		t.index++
		return end, data[start:end], nil
	case start > 0:
		t.skipLines(newlines)
		return start, nil, nil
	default:
		return 0, nil, nil
	}
}

func (t *tokenizer) skipLines(n int) {
	if n > 0 {
		t.line += n
		t.index = 0
	}
}
