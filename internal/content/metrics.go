package content

import "regexp"

// numberPattern matches a number with an optional unit, magnitude or percentage suffix
var numberPattern = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?(?:\s*%|percent|percentage|\s*million|\s*billion|\s*thousand|\s*k\b|\s*m\b|\s*bn\b)?`)

// FindMetrics returns the quantifiable values in line, in order of appearance.
// Bare years from 1900 to 2099 are not metrics.
func FindMetrics(line string) []string {
	var metrics []string
	for pos := 0; pos < len(line); {
		loc := numberPattern.FindStringIndex(line[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]

		// slicing the line makes its first byte look like a word start
		if start == pos && pos > 0 && isWordByte(line[pos-1]) {
			pos = start + 1
			continue
		}
		if isYearAt(line, start) {
			pos = start + 4
			continue
		}

		metrics = append(metrics, line[start:end])
		pos = end
	}
	return metrics
}

// isYearAt reports whether a four digit 19xx or 20xx year ends at a word boundary at position i
func isYearAt(s string, i int) bool {
	if i+4 > len(s) {
		return false
	}
	if !(s[i] == '1' && s[i+1] == '9') && !(s[i] == '2' && s[i+1] == '0') {
		return false
	}
	if !isDigit(s[i+2]) || !isDigit(s[i+3]) {
		return false
	}
	return i+4 == len(s) || !isWordByte(s[i+4])
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordByte(b byte) bool {
	return isDigit(b) || b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
