// Package llmtext cleans and decodes structured text returned by language models.
package llmtext

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrNoObject is returned when the text contains no JSON object.
var ErrNoObject = errors.New("no JSON object found in response")

// Clean removes surrounding markdown code fences and control characters
// other than newline and tab.
func Clean(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if nl := strings.IndexByte(s, '\n'); nl >= 0 {
			s = s[nl+1:]
		} else {
			s = strings.TrimPrefix(s, "```")
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}

	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// ExtractObject returns the text between the first '{' and the last '}'.
func ExtractObject(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", ErrNoObject
	}
	return s[start : end+1], nil
}

// Decode cleans s, extracts its JSON object and unmarshals it into T.
// Any failure is returned as an error; partial values are never returned.
func Decode[T any](s string) (T, error) {
	var zero, v T

	obj, err := ExtractObject(Clean(s))
	if err != nil {
		return zero, err
	}
	if err := json.Unmarshal([]byte(obj), &v); err != nil {
		return zero, fmt.Errorf("decode json: %w", err)
	}
	return v, nil
}
