package bot

import "sfa-hq/promptbot/pkg/completion"

// InvalidInputError is returned when a question fails validation. The
// message is safe to show to the caller.
type InvalidInputError = completion.InvalidInputError

// ValidateQuestion rejects a blank question, or one with more than maxWords
// words when split on a single space.
func ValidateQuestion(question string, maxWords int) error {
	return completion.ValidateInput(question, maxWords)
}
