/*
File: golox/lexer/lexer_utils.go
Author: akashmaji(@iisc.ac.in)
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit ('0'..'9'). Lox
// number literals are ASCII-digit runs only, so this deliberately does
// not use unicode.IsDigit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isAlpha reports whether c can start or continue an identifier: an
// ASCII letter or underscore.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isAlphaNumeric reports whether c can appear after the first character
// of an identifier.
func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}
