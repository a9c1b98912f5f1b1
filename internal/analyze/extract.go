package analyze

import "encoding/json"

// firstJSONObject scans free text for the first syntactically complete,
// valid JSON object and returns it. Brace matching honors string literals
// and escapes, so an object embedded in prose or a code fence is found
// even when the surrounding text contains stray braces. Candidates that
// balance but fail validation are skipped and the scan continues.
func firstJSONObject(text string) ([]byte, bool) {
	for start := 0; start < len(text); start++ {
		if text[start] != '{' {
			continue
		}

		end, ok := matchBraces(text, start)
		if !ok {
			continue
		}

		candidate := []byte(text[start : end+1])
		if json.Valid(candidate) {
			return candidate, true
		}
		// Invalid despite balancing (e.g. single quotes); try the next
		// opening brace.
	}
	return nil, false
}

// matchBraces returns the index of the brace closing the object opened at
// start, or false if the text ends first.
func matchBraces(text string, start int) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
