package logging

import (
	"regexp"
	"strings"
)

// Redactor masks credentials in log values.
type Redactor struct {
	patterns []redactPattern
}

type redactPattern struct {
	regex       *regexp.Regexp
	replacement string
}

var (
	apiKeyPattern = redactPattern{
		regex:       regexp.MustCompile(`sk-[a-zA-Z0-9_\-]+`),
		replacement: "sk-***",
	}
	bearerPattern = redactPattern{
		regex:       regexp.MustCompile(`Bearer\s+[a-zA-Z0-9\-._~+/]+=*`),
		replacement: "Bearer ***",
	}
)

var sensitiveKeys = []string{
	"api_key", "apikey",
	"authorization", "auth_header",
	"secret", "token", "password",
}

// NewRedactor creates a Redactor for OpenAI-style keys and bearer tokens.
func NewRedactor() *Redactor {
	return &Redactor{patterns: []redactPattern{apiKeyPattern, bearerPattern}}
}

// RedactString masks every credential found in value.
func (r *Redactor) RedactString(value string) string {
	if value == "" {
		return value
	}
	for _, p := range r.patterns {
		value = p.regex.ReplaceAllString(value, p.replacement)
	}
	return value
}

// IsSensitiveKey reports whether an attribute key names a credential.
func (r *Redactor) IsSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveKeys {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// RedactAPIKey redacts an API key, keeping only a prefix.
func RedactAPIKey(apiKey string) string {
	if len(apiKey) <= 4 {
		return "***"
	}
	return apiKey[:4] + "***"
}
