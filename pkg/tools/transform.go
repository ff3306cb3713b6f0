package tools

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Transform is a pure text transform applied to a tool's content argument.
type Transform func(content string) string

// whitespaceRun matches a maximal run of whitespace: ASCII whitespace
// including vertical tab, Unicode space separators, the line and paragraph
// separators, and the byte order mark.
var whitespaceRun = regexp.MustCompile(`[\t\n\v\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}]+`)

// UpperCase returns "Uppercase: " followed by content in upper case, using
// full Unicode case mapping ("ß" becomes "SS").
func UpperCase(content string) string {
	return "Uppercase: " + cases.Upper(language.Und).String(content)
}

// Reverse returns "Reverse: " followed by content with its code points in
// reverse order.
func Reverse(content string) string {
	return "Reverse: " + reverseRunes(content)
}

// Dashes returns "Dashed: " followed by content with every whitespace run
// replaced by a single dash.
func Dashes(content string) string {
	return "Dashed: " + whitespaceRun.ReplaceAllString(content, "-")
}

func reverseRunes(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// transforms is the closed mapping from tool name to transform.
var transforms = map[string]struct {
	action    string
	transform Transform
}{
	NameUpperCase: {action: "Converting to uppercase...", transform: UpperCase},
	NameReverse:   {action: "Reversing the string...", transform: Reverse},
	NameDashes:    {action: "Replacing spaces with dashes...", transform: Dashes},
}
