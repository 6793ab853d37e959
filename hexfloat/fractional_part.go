package hexfloat

// The fractional part is accumulated most significant digit first, each
// digit contributing digit * 16^-(position). A "." with no digits after
// it is a failure, so "0x1." is rejected.
func (s *scanner) consumeFractionalPart() (value float64, present, ok bool) {
	if s.next() != '.' {
		return 0, false, true
	}
	s.consume()

	run := s.consumeHexDigits()
	if run == "" {
		return 0, false, false
	}

	multiplier := 1.0 / 16
	for i := 0; i < len(run); i++ {
		value += float64(hexDigitValue(run[i])) * multiplier
		multiplier /= 16
	}
	return value, true, true
}

func hexDigitValue(b byte) int {
	switch {
	case b <= '9':
		return int(b - '0')
	case b >= 'a':
		return int(b-'a') + 10
	default:
		return int(b-'A') + 10
	}
}
