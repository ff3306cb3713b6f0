package completion

import "strings"

// DefaultRules are the behavioural rules sent as the system instruction on
// every request.
var DefaultRules = []string{
	"Be helpful.",
	"Summarize in 30 words max.",
	"Avoid repeating the question; give direct answers.",
}

// ScopeRule restricts the model to countries and capitals. When it is part
// of the rules the model answers OutOfScopeMarker for anything else.
const ScopeRule = `Limit scope to countries/capitals; reply just "#E-OS" otherwise.`

// OutOfScopeMarker is the reply the model gives under ScopeRule for an
// out-of-scope question.
const OutOfScopeMarker = "#E-OS"

// Rules returns a copy of DefaultRules, with ScopeRule appended when
// restrictScope is set.
func Rules(restrictScope bool) []string {
	rules := append([]string(nil), DefaultRules...)
	if restrictScope {
		rules = append(rules, ScopeRule)
	}
	return rules
}

// SystemInstruction joins rules into the single system message the model
// receives. Rules are concatenated with "," rather than itemized.
func SystemInstruction(rules []string) string {
	return strings.Join(rules, ",")
}
