/* Package unescape turns text containing backslash escape sequences into the
literal string those sequences denote.

Three escape forms are recognized, dispatched on the character after the
backslash:

	\t \n \r \0 \\ \" \'   fixed substitutions: tab, newline, carriage
	                       return, NUL, backslash, double and single quote
	\xNN                   exactly two hex digits naming a byte value;
	                       values 0-255 map one to one onto the first 256
	                       code points
	\u{N...}               one or more hex digits naming a Unicode scalar
	                       value, at most U+10FFFF and excluding the
	                       surrogate range U+D800-U+DFFF

Everything else passes through verbatim. A backslash followed by any other
character, or by end of input, is an error, as is any malformed hex or
unicode escape; the whole decode fails at the first such construct with one
of three DecodeError kinds and produces no output.

The whole input is decoded in one Decode call. There is no streaming form,
no escaping (encode) direction, and no support for octal escapes, named
escapes, or surrogate pair notation.
*/
package unescape
