package corpus

import "strings"

// CleanLyrics drops lines that only carry song structure, such as
// "[Chorus]" or "(Verse 2)", and trims surrounding blank lines.
func CleanLyrics(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	lines := strings.Split(raw, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if isSectionHeader(strings.TrimSpace(line)) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func isSectionHeader(line string) bool {
	if len(line) < 2 {
		return false
	}
	open, end := line[0], line[len(line)-1]
	if !(open == '[' && end == ']') && !(open == '(' && end == ')') {
		return false
	}
	// Parenthesised ad-libs like "(oh, oh)" are lyrics; headers are short
	// labels like "(Chorus)" or "(Verse 2: Adam Levine)".
	if open == '(' {
		inner := strings.ToLower(line[1 : len(line)-1])
		for _, label := range sectionLabels {
			if strings.HasPrefix(inner, label) {
				return true
			}
		}
		return false
	}
	return true
}

var sectionLabels = []string{"verse", "chorus", "pre-chorus", "bridge", "intro", "outro", "hook", "refrain", "interlude"}
