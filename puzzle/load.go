package puzzle

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Load reads the file at path fully into memory.
// A missing or unreadable file yields an error wrapping both ErrIO and the
// underlying *fs.PathError.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}

	return string(data), nil
}

// Lines splits text into lines. "\r\n" and "\n" both terminate a line and a
// single trailing terminator does not produce an empty last line, so an
// empty text has zero lines. Blank lines in the middle are preserved so that
// strict parsers can reject them.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// ParseLines runs parse over every line of text and stops at the first
// failure. The returned error is always a *ParseError naming the line.
// Complexity: O(n) calls to parse.
func ParseLines[T any](text string, parse func(line string) (T, error)) ([]T, error) {
	lines := Lines(text)
	out := make([]T, 0, len(lines))
	for i, line := range lines {
		v, err := parse(line)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				if pe.Line == 0 {
					pe.Line = i + 1
				}
				return nil, pe
			}
			return nil, &ParseError{Line: i + 1, Text: line, Err: err}
		}
		out = append(out, v)
	}

	return out, nil
}
