package xmlutil

import "strings"

// TrimIndentation normalizes XML character data the way hand-authored
// manifests indent it: it strips the minimum common leading whitespace
// shared by every non-blank line, then drops leading/trailing blank lines,
// preserving the relative indentation of the remaining lines. A single-line value is merely trimmed of surrounding whitespace.
//
// This normalization is stable under appending a trailing newline or
// uniformly indenting every non-empty line by the same amount: both
// transformations change only what gets stripped, never the stripped
// result.
func TrimIndentation(s string) string {
	if !strings.Contains(s, "\n") {
		return strings.TrimSpace(s)
	}
	lines := strings.Split(s, "\n")

	minIndent := -1
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := leadingWhitespace(line)
		if minIndent == -1 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent < 0 {
		minIndent = 0
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			out[i] = ""
			continue
		}
		if len(line) >= minIndent {
			out[i] = line[minIndent:]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
		out[i] = strings.TrimRight(out[i], " \t\r")
	}

	start := 0
	for start < len(out) && out[start] == "" {
		start++
	}
	end := len(out)
	for end > start && out[end-1] == "" {
		end--
	}
	return strings.Join(out[start:end], "\n")
}

func leadingWhitespace(line string) int {
	n := 0
	for _, r := range line {
		if r == ' ' || r == '\t' {
			n++
			continue
		}
		break
	}
	return n
}
