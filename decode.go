package unescape

import (
	"strings"

	"github.com/jcorbin/unescape/internal/runescan"
)

// Decode interprets backslash escape sequences in input, returning the
// literal string that they denote.
//
// Recognized sequences are the simple escapes \t \n \r \0 \\ \" and \',
// two-digit hex byte escapes like \x41, and braced unicode escapes like
// \u{21B5}. Any other use of a backslash fails the whole decode with a
// DecodeError; no partial output is returned.
//
// Decode is a pure function over its input; concurrent calls on distinct
// inputs need no synchronization.
func Decode(input string) (string, error) {
	var dec decoder
	dec.in.Reset(input)
	return dec.decode()
}

type decoder struct {
	in  runescan.Scanner
	out strings.Builder
}

func (dec *decoder) decode() (string, error) {
	for {
		r, ok := dec.in.Next()
		if !ok {
			return dec.out.String(), nil
		}
		if r != '\\' {
			dec.out.WriteRune(r)
			continue
		}
		if err := dec.escape(); err != nil {
			return "", err
		}
	}
}

// simpleEscapes maps single character escape tags to their substitutions.
var simpleEscapes = map[rune]rune{
	't':  '\t',
	'n':  '\n',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'"':  '"',
	'\'': '\'',
}

// escape decodes one escape sequence, the leading backslash already consumed.
func (dec *decoder) escape() error {
	tag, ok := dec.in.Next()
	if !ok {
		return ErrInvalidEscape
	}
	switch tag {
	case 'x':
		return dec.hexEscape()
	case 'u':
		return dec.unicodeEscape()
	}
	if sub, defined := simpleEscapes[tag]; defined {
		dec.out.WriteRune(sub)
		return nil
	}
	return ErrInvalidEscape
}

// hexEscape decodes the fixed two digit window of a \x escape into one byte
// valued rune. Both runes are consumed before either is validated, so a
// malformed escape still consumes its window.
func (dec *decoder) hexEscape() error {
	var window [2]rune
	for i := range window {
		r, ok := dec.in.Next()
		if !ok {
			return ErrInvalidHexChar
		}
		window[i] = r
	}
	hi, hiok := hexDigit(window[0])
	lo, look := hexDigit(window[1])
	if !hiok || !look {
		return ErrInvalidHexChar
	}
	dec.out.WriteRune(rune(hi)<<4 | rune(lo))
	return nil
}

const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	maxScalar    = 0x10FFFF
)

// unicodeEscape decodes the brace delimited digit run of a \u escape into
// one rune. The run is consumed by peeking: a non hex rune is left in place
// for the closing brace check rather than consumed into the run.
func (dec *decoder) unicodeEscape() error {
	if r, ok := dec.in.Next(); !ok || r != '{' {
		return ErrInvalidUnicode
	}

	var value uint32
	digits := 0
	for {
		r, ok := dec.in.Peek()
		if !ok {
			break
		}
		d, isHex := hexDigit(r)
		if !isHex {
			break
		}
		dec.in.Next()
		if value > (1<<32-1)>>4 {
			// another digit would overflow 32 bits
			return ErrInvalidUnicode
		}
		value = value<<4 | uint32(d)
		digits++
	}

	if r, ok := dec.in.Next(); !ok || r != '}' {
		return ErrInvalidUnicode
	}
	if digits == 0 {
		return ErrInvalidUnicode
	}
	if value > maxScalar || (surrogateMin <= value && value <= surrogateMax) {
		return ErrInvalidUnicode
	}
	dec.out.WriteRune(rune(value))
	return nil
}

func hexDigit(r rune) (byte, bool) {
	switch {
	case '0' <= r && r <= '9':
		return byte(r - '0'), true
	case 'a' <= r && r <= 'f':
		return byte(r-'a') + 10, true
	case 'A' <= r && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
