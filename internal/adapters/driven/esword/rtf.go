package esword

import (
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regular expressions for RTF stripping.
var (
	rtfStarGroup    = regexp.MustCompile(`\{\\\*[^{}]*\}`)
	rtfFontGroup    = regexp.MustCompile(`\{\\(?:fonttbl|colortbl|stylesheet|info)[^{}]*(?:\{[^{}]*\})*[^{}]*\}`)
	rtfLineBreak    = regexp.MustCompile(`\\(?:par|line|sect|page)d?\b`)
	rtfTab          = regexp.MustCompile(`\\tab\b`)
	rtfUnicode      = regexp.MustCompile(`\\u(-?\d+)\s?\??`)
	rtfHexEscape    = regexp.MustCompile(`\\'([0-9a-fA-F]{2})`)
	rtfControlWord  = regexp.MustCompile(`\\[a-zA-Z]+-?\d*\s?`)
	rtfMultiSpaces  = regexp.MustCompile(`[ \t]+`)
	rtfMultiBreaks  = regexp.MustCompile(`\n{3,}`)
	rtfEscapedChars = strings.NewReplacer(`\\`, `\`, `\{`, "{", `\}`, "}")
)

// rtfToText strips RTF control structure down to readable plain text.
// Definitions in e-Sword modules use a small RTF subset, so a full
// parser is not needed; unknown control words are simply dropped.
func rtfToText(content string) string {
	// Destination groups (\*\...) and the font/colour tables carry no
	// body text.
	content = rtfStarGroup.ReplaceAllString(content, "")
	content = rtfFontGroup.ReplaceAllString(content, "")

	// Paragraph-level control words become line structure.
	content = rtfLineBreak.ReplaceAllString(content, "\n")
	content = rtfTab.ReplaceAllString(content, " ")

	// \uN escapes carry a signed 16-bit code point.
	content = rtfUnicode.ReplaceAllStringFunc(content, func(m string) string {
		n, err := strconv.Atoi(rtfUnicode.FindStringSubmatch(m)[1])
		if err != nil {
			return ""
		}
		if n < 0 {
			n += 65536
		}
		return string(rune(n))
	})

	// \'hh escapes are single bytes; in the modules we care about they
	// fall in the ASCII range, anything else is dropped.
	content = rtfHexEscape.ReplaceAllStringFunc(content, func(m string) string {
		n, err := strconv.ParseInt(rtfHexEscape.FindStringSubmatch(m)[1], 16, 32)
		if err != nil || n > 127 {
			return ""
		}
		return string(rune(n))
	})

	// Remaining control words and group braces are formatting only.
	content = rtfControlWord.ReplaceAllString(content, "")
	content = rtfEscapedChars.Replace(content)
	content = strings.ReplaceAll(content, "{", "")
	content = strings.ReplaceAll(content, "}", "")

	// Collapse whitespace and trim each line.
	content = rtfMultiSpaces.ReplaceAllString(content, " ")
	content = rtfMultiBreaks.ReplaceAllString(content, "\n\n")

	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			result = append(result, line)
		}
	}
	return strings.Join(result, "\n")
}
