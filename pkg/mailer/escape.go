package mailer

import "strings"

// markdownPunctuation lists the ASCII punctuation that carries meaning in
// CommonMark or GFM tables. Backslash escapes are valid for all of it.
const markdownPunctuation = "\\`*_{}[]()<>#+-.!|~&"

// EscapeMarkdown makes untrusted text render literally inside a markdown
// template. Line structure survives as hard breaks and blank lines stay
// paragraph separators. Leading indentation is dropped so input can never
// open a code block.
func EscapeMarkdown(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	var b strings.Builder
	b.Grow(len(s) + len(s)/8)
	for i, line := range lines {
		line = strings.TrimSpace(line)
		for _, r := range line {
			if r < 128 && strings.ContainsRune(markdownPunctuation, r) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
		if i == len(lines)-1 {
			break
		}
		if line != "" && strings.TrimSpace(lines[i+1]) != "" {
			b.WriteString("\\\n")
			continue
		}
		b.WriteByte('\n')
	}
	return b.String()
}
