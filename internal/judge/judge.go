// Package judge implements the stdin/stdout contract shared by contest
// solvers: whitespace-delimited token scanning on the way in, buffered
// printing on the way out. The answer stream must contain nothing but the
// answer, so nothing here ever logs to stdout.
package judge

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Scanner reads whitespace-delimited tokens from a judge input stream.
type Scanner struct {
	sc *bufio.Scanner
}

func NewScanner(r io.Reader) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &Scanner{sc: sc}
}

// Word returns the next token, or an error at end of input.
func (s *Scanner) Word() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

func (s *Scanner) Int() (int, error) {
	w, err := s.Word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("expected integer token: %w", err)
	}
	return v, nil
}

func (s *Scanner) Int64() (int64, error) {
	w, err := s.Word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseInt(w, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected int64 token: %w", err)
	}
	return v, nil
}

func (s *Scanner) Float() (float64, error) {
	w, err := s.Word()
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, fmt.Errorf("expected float token: %w", err)
	}
	return v, nil
}

// Ints reads n integer tokens.
func (s *Scanner) Ints(n int) ([]int, error) {
	res := make([]int, n)
	for i := range res {
		v, err := s.Int()
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// LineScanner reads a judge input stream one line at a time, for problems
// whose tokens are full lines (e.g. transaction strings).
type LineScanner struct {
	sc *bufio.Scanner
}

func NewLineScanner(r io.Reader) *LineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	return &LineScanner{sc: sc}
}

// Line returns the next line with surrounding whitespace trimmed, skipping
// blank lines.
func (s *LineScanner) Line() (string, error) {
	for s.sc.Scan() {
		line := strings.TrimSpace(s.sc.Text())
		if line != "" {
			return line, nil
		}
	}
	if err := s.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (s *LineScanner) Int() (int, error) {
	line, err := s.Line()
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("expected integer line: %w", err)
	}
	return v, nil
}

// Writer buffers answer lines; Flush must be called before process exit.
type Writer struct {
	bw *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriter(w)}
}

func (w *Writer) Println(args ...any) {
	fmt.Fprintln(w.bw, args...)
}

func (w *Writer) Printf(format string, args ...any) {
	fmt.Fprintf(w.bw, format, args...)
}

func (w *Writer) Flush() error {
	return w.bw.Flush()
}
