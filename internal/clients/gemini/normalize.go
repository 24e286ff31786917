package gemini

import (
	"regexp"
	"strings"
)

// listMarker matches the enumeration prefixes the model likes to emit:
// "1) ", "2. ", "3 - ", and bare bullets "- " / "* ".
var listMarker = regexp.MustCompile(`^(\d+[).\s-]+|[-*]\s+)`)

// CleanQuestionList turns raw model output into an ordered list of question
// strings: one per non-blank line, with leading list markers stripped.
func CleanQuestionList(text string) []string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = listMarker.ReplaceAllString(strings.TrimSpace(line), "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
