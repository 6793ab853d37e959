// Package hexfloat parses C99 "%a" style hexadecimal floating-point
// literals such as "-0x1.8p+2".
package hexfloat

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrSyntax is returned for every malformed literal, regardless of which
// stage rejected it.
var ErrSyntax = errors.New("invalid hexadecimal float literal")

type scanner struct {
	src    string
	offset int
}

func (s *scanner) isDone() bool {
	return s.offset == len(s.src)
}

func (s *scanner) next() byte {
	if s.isDone() {
		return 0
	}
	return s.src[s.offset]
}

func (s *scanner) peek() byte {
	if s.offset+1 >= len(s.src) {
		return 0
	}
	return s.src[s.offset+1]
}

func (s *scanner) consume() byte {
	b := s.src[s.offset]
	s.offset++
	return b
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func (s *scanner) consumeHexDigits() string {
	start := s.offset
	for !s.isDone() && isHexDigit(s.next()) {
		s.consume()
	}
	return s.src[start:s.offset]
}

func (s *scanner) consumeSign() float64 {
	switch s.next() {
	case '-':
		s.consume()
		return -1
	case '+':
		s.consume()
	}
	return 1
}

func (s *scanner) consumePrefix() bool {
	if s.next() != '0' {
		return false
	}
	if b := s.peek(); b != 'x' && b != 'X' {
		return false
	}
	s.consume()
	s.consume()
	return true
}

// An absent integer part means 0: "0x.8" is a valid literal. A run too
// long for a uint64 is a failure rather than a silent wraparound.
func (s *scanner) consumeIntegerPart() (uint64, bool) {
	run := s.consumeHexDigits()
	if run == "" {
		return 0, true
	}
	value, err := strconv.ParseUint(run, 16, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// Parse interprets text as a hexadecimal floating-point literal of the
// form [sign]0x<hex>[.<hex>][{p|P}[sign]<digits>] and returns the binary
// value it denotes. At least one of the fractional part and the exponent
// must be present, and the entire input must be consumed; anything else
// returns ErrSyntax.
func Parse(text string) (float64, error) {
	s := &scanner{src: strings.TrimSpace(text)}

	sign := s.consumeSign()

	if !s.consumePrefix() {
		return 0, ErrSyntax
	}

	integer, ok := s.consumeIntegerPart()
	if !ok {
		return 0, ErrSyntax
	}

	fraction, hasFraction, ok := s.consumeFractionalPart()
	if !ok {
		return 0, ErrSyntax
	}

	exponent, hasExponent, ok := s.consumeExponentPart()
	if !ok {
		return 0, ErrSyntax
	}

	if !hasFraction && !hasExponent {
		return 0, ErrSyntax
	}
	if !s.isDone() {
		return 0, ErrSyntax
	}

	return math.Ldexp(sign*(float64(integer)+fraction), exponent), nil
}
