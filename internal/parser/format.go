package parser

import (
	"regexp"
	"strings"
)

var (
	codeBlockPattern = regexp.MustCompile("```(?:\\w*\\n)?([\\s\\S]*?)```")
	codeHintPattern  = regexp.MustCompile(`(?i)(?:class |function |const |let |var |def |#include |import )`)
)

// FormatChatAnswer renders a chat answer as markdown. A fenced block in the
// answer is re-wrapped on its own; code-looking text is fenced whole; anything
// else gets an "**Answer:**" heading.
func FormatChatAnswer(answer string) string {
	if m := codeBlockPattern.FindStringSubmatch(answer); m != nil {
		return "```\n" + strings.TrimSpace(m[1]) + "\n```"
	}

	trimmed := strings.TrimSpace(answer)
	if codeHintPattern.MatchString(answer) {
		return "```\n" + trimmed + "\n```"
	}
	return "**Answer:**\n\n" + trimmed
}
