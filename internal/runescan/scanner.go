package runescan

import "unicode/utf8"

// Scanner provides single pass rune reading over a string with one rune of
// lookahead. The cursor only ever advances: Peek is the sole form of
// lookahead, and a consumed rune is never reconsidered.
// The zero value is an exhausted Scanner; aim it at input with Reset.
type Scanner struct {
	rest string
}

// Reset aims the scanner at the start of s, discarding any prior state.
func (sc *Scanner) Reset(s string) { sc.rest = s }

// Next consumes and returns the next rune.
// Returns false once the input is exhausted.
func (sc *Scanner) Next() (rune, bool) {
	if len(sc.rest) == 0 {
		return 0, false
	}
	r, n := utf8.DecodeRuneInString(sc.rest)
	sc.rest = sc.rest[n:]
	return r, true
}

// Peek returns the next rune without consuming it.
// Returns false once the input is exhausted.
func (sc *Scanner) Peek() (rune, bool) {
	if len(sc.rest) == 0 {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(sc.rest)
	return r, true
}
