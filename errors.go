package unescape

// DecodeError enumerates the ways that escape decoding can fail.
// Decoding stops at the first invalid construct, so a decode call returns at
// most one of these; no position information is carried.
type DecodeError int

// Decode failure kinds.
const (
	// ErrInvalidEscape: the character after a backslash selects no known
	// escape form, or input ended right after the backslash.
	ErrInvalidEscape DecodeError = iota + 1

	// ErrInvalidHexChar: a \x escape ended early or contained a non hex
	// digit in its two character window.
	ErrInvalidHexChar

	// ErrInvalidUnicode: a \u escape was missing a brace, had an empty or
	// overlong digit run, or named a value that is not a Unicode scalar.
	ErrInvalidUnicode
)

func (de DecodeError) Error() string {
	switch de {
	case ErrInvalidEscape:
		return "invalid escape sequence"
	case ErrInvalidHexChar:
		return "invalid hex character"
	case ErrInvalidUnicode:
		return "invalid unicode escape"
	}
	return "unknown decode error"
}
