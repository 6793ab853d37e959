package hexfloat

import "strconv"

// The exponent is the maximal run of digits and sign characters after a
// "p" or "P", parsed as a signed decimal integer. An empty run or a
// misplaced sign fails the parse.
func (s *scanner) consumeExponentPart() (value int, present, ok bool) {
	if b := s.next(); b != 'p' && b != 'P' {
		return 0, false, true
	}
	s.consume()

	start := s.offset
	for !s.isDone() {
		if b := s.next(); isDigit(b) || b == '-' || b == '+' {
			s.consume()
		} else {
			break
		}
	}

	value, err := strconv.Atoi(s.src[start:s.offset])
	if err != nil {
		return 0, false, false
	}
	return value, true, true
}
