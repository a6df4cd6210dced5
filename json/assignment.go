package json

import (
	"strings"

	"github.com/fwojciec/tripkml"
)

// FindAssignment returns the object literal assigned to the global name in
// text, as in `name = {...};`. The assignment may span lines. The object is
// the balanced brace block following `=`; braces inside quoted strings are
// not counted.
//
// Returns EMISSINGPAYLOAD when no assignment of an object to name exists,
// and EINVALIDPAYLOAD when the object never closes or is not followed by
// a semicolon.
func FindAssignment(text, name string) (string, error) {
	offset := 0
	for {
		i := strings.Index(text[offset:], name)
		if i < 0 {
			return "", tripkml.Errorf(tripkml.EMISSINGPAYLOAD, "no JSON data found in HTML: %s is not assigned", name)
		}
		offset += i + len(name)

		pos := skipSpace(text, offset)
		if pos >= len(text) || text[pos] != '=' {
			continue
		}
		pos = skipSpace(text, pos+1)
		if pos >= len(text) || text[pos] != '{' {
			continue
		}

		end, ok := matchBrace(text, pos)
		if !ok {
			return "", tripkml.Errorf(tripkml.EINVALIDPAYLOAD, "error parsing trip data: %s object is not closed", name)
		}

		semi := skipSpace(text, end)
		if semi >= len(text) || text[semi] != ';' {
			return "", tripkml.Errorf(tripkml.EINVALIDPAYLOAD, "error parsing trip data: %s assignment is not terminated by a semicolon", name)
		}

		return text[pos:end], nil
	}
}

// matchBrace scans from the opening brace at start and returns the index just
// past its matching closing brace.
func matchBrace(text string, start int) (int, bool) {
	depth := 0
	var quote byte

	for i := start; i < len(text); i++ {
		c := text[i]

		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
	}

	return 0, false
}

func skipSpace(text string, i int) int {
	for i < len(text) {
		switch text[i] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			i++
		default:
			return i
		}
	}
	return i
}
