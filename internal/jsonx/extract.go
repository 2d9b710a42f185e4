// Package jsonx extracts fields from small, flat, known JSON payloads by
// regex-anchored key lookup and depth scanning. It is not a general JSON
// parser: arrays of arrays, \uXXXX escapes, and exponent numbers are out of
// scope, which is all the consumed API shapes require.
package jsonx

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	reMu    sync.Mutex
	reCache = map[string]*regexp.Regexp{}
)

func keyedPattern(key, valuePattern string) *regexp.Regexp {
	pattern := `"` + regexp.QuoteMeta(key) + `"\s*:\s*` + valuePattern
	reMu.Lock()
	defer reMu.Unlock()
	if re, ok := reCache[pattern]; ok {
		return re
	}
	re := regexp.MustCompile(pattern)
	reCache[pattern] = re
	return re
}

// StringField returns the first string value for key, with simple escape
// sequences decoded. The second result is false when the key is absent or
// its value is not a string.
func StringField(doc, key string) (string, bool) {
	re := keyedPattern(key, `"((?:\\.|[^"\\])*)"`)
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return "", false
	}
	return unescape(m[1]), true
}

// IntField returns the first integer value for key.
func IntField(doc, key string) (int64, bool) {
	re := keyedPattern(key, `(-?\d+)`)
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// BoolField returns the first boolean value for key.
func BoolField(doc, key string) (bool, bool) {
	re := keyedPattern(key, `(true|false)`)
	m := re.FindStringSubmatch(doc)
	if m == nil {
		return false, false
	}
	return m[1] == "true", true
}

// Object returns the brace-balanced object value for key, delimiters
// included, so nested lookups compose.
func Object(doc, key string) (string, bool) {
	return balancedValue(doc, key, '{', '}')
}

// Array returns the bracket-balanced array value for key, delimiters
// included.
func Array(doc, key string) (string, bool) {
	return balancedValue(doc, key, '[', ']')
}

func balancedValue(doc, key string, open, closing byte) (string, bool) {
	re := keyedPattern(key, regexp.QuoteMeta(string(open)))
	loc := re.FindStringIndex(doc)
	if loc == nil {
		return "", false
	}
	start := loc[1] - 1 // position of the opening delimiter
	end, ok := scanBalanced(doc, start, open, closing)
	if !ok {
		return "", false
	}
	return doc[start : end+1], true
}

// scanBalanced walks from the opening delimiter at start to its matching
// closing delimiter, skipping quoted strings and escape characters. Returns the index
// of the closing delimiter.
func scanBalanced(doc string, start int, open, closing byte) (int, bool) {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(doc); i++ {
		c := doc[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case !inString && c == open:
			depth++
		case !inString && c == closing:
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// SplitObjects splits an array body into its top-level objects by
// brace-depth scanning. Surrounding brackets are optional. Non-object
// elements are skipped.
func SplitObjects(arr string) []string {
	body := strings.TrimSpace(arr)
	body = strings.TrimPrefix(body, "[")
	body = strings.TrimSuffix(body, "]")

	var out []string
	for i := 0; i < len(body); i++ {
		if body[i] != '{' {
			continue
		}
		end, ok := scanBalanced(body, i, '{', '}')
		if !ok {
			break
		}
		out = append(out, body[i:end+1])
		i = end
	}
	return out
}

// unescape decodes the simple JSON escape sequences. Unicode escapes are
// passed through untouched.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case '/':
			b.WriteByte('/')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
