// SPDX-License-Identifier: MIT

// Package textformat - reader and writer of the delimited matrix text format.
//
// Grammar (bytes):
//
//	input  = row { delimiter row }
//	row    = { separator | number }
//	number = [ "-" ] digit { digit } [ "." { digit } ]
//
// Any byte that is neither the delimiter nor the start of a number is a
// separator. The column count is the longest row; shorter rows are padded
// with zeros. The last row needs no delimiter, so a trailing delimiter adds
// one empty (all zero) row.

package textformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/gemdet/matrix"
)

// Parse reads a whole matrix from r.
// Implementation:
//   - Stage 1: lex numbers byte by byte, closing a row on each delimiter.
//   - Stage 2: build the matrix with matrix.FromValues (zero padding).
//
// Errors:
//   - ErrMalformedNumber with the byte offset; read errors from r.
//
// Complexity:
//   - Time O(len(input)), Space O(r*c).
func Parse(r io.Reader, opts ...Option) (*matrix.Matrix, error) {
	o := gatherOptions(opts...)
	p := &parser{br: bufio.NewReader(r), delim: o.delimiter}
	rows, err := p.rows()
	if err != nil {
		return nil, err
	}

	return matrix.FromValues(rows, o.matrix...)
}

// ParseString is Parse over an in-memory string.
func ParseString(s string, opts ...Option) (*matrix.Matrix, error) {
	return Parse(strings.NewReader(s), opts...)
}

// ParseFile opens path and parses its content.
func ParseFile(path string, opts ...Option) (*matrix.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("textformat: cannot open %q: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("textformat: %s: %w", path, err)
	}

	return m, nil
}

// Format writes m back in the text format: values separated by a space,
// rows by the delimiter and a newline. ParseString(Format(m)) rebuilds m.
func Format(m *matrix.Matrix, opts ...Option) string {
	o := gatherOptions(opts...)
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		if i > 0 {
			sb.WriteByte(o.delimiter)
			sb.WriteByte('\n')
		}
		row, _ := m.Row(i)
		for j, v := range row.Values() {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(v.String())
		}
	}

	return sb.String()
}

type parser struct {
	br     *bufio.Reader
	delim  byte
	offset int // bytes consumed so far
	tok    []byte
}

func (p *parser) rows() ([][]decimal.Decimal, error) {
	var (
		rows [][]decimal.Decimal
		row  []decimal.Decimal
	)
	for {
		b, err := p.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		switch {
		case b == p.delim:
			rows = append(rows, row)
			row = nil
		case isDigit(b) || b == '-':
			v, err := p.number(b)
			if err != nil {
				return nil, err
			}
			row = append(row, v)
		}
	}

	return append(rows, row), nil
}

// number lexes the rest of a number whose first byte was already consumed.
func (p *parser) number(first byte) (decimal.Decimal, error) {
	start := p.offset - 1
	p.tok = append(p.tok[:0], first)
	if first == '-' {
		b, ok, err := p.peek()
		if err != nil {
			return decimal.Zero, err
		}
		if !ok || !isDigit(b) {
			return decimal.Zero, fmt.Errorf("offset %d: %w", start, ErrMalformedNumber)
		}
	}
	if err := p.digits(); err != nil {
		return decimal.Zero, err
	}
	if b, ok, err := p.peek(); err != nil {
		return decimal.Zero, err
	} else if ok && b == '.' {
		_, _ = p.next()
		p.tok = append(p.tok, '.')
		if err = p.digits(); err != nil {
			return decimal.Zero, err
		}
	}

	text := strings.TrimSuffix(string(p.tok), ".")
	v, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("offset %d: %q: %w", start, text, ErrMalformedNumber)
	}

	return v, nil
}

// digits consumes a run of ASCII digits into tok.
func (p *parser) digits() error {
	for {
		b, ok, err := p.peek()
		if err != nil {
			return err
		}
		if !ok || !isDigit(b) {
			return nil
		}
		_, _ = p.next()
		p.tok = append(p.tok, b)
	}
}

func (p *parser) next() (byte, error) {
	b, err := p.br.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return 0, err
		}

		return 0, fmt.Errorf("textformat: read at offset %d: %w", p.offset, err)
	}
	p.offset++

	return b, nil
}

// peek returns the next byte without consuming it; ok is false at EOF.
func (p *parser) peek() (byte, bool, error) {
	buf, err := p.br.Peek(1)
	if len(buf) == 1 {
		return buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0, false, nil
	}

	return 0, false, fmt.Errorf("textformat: read at offset %d: %w", p.offset, err)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
