package render

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	labelPolicyOnce sync.Once
	labelPolicy     *bluemonday.Policy

	plainPolicyOnce sync.Once
	plainPolicy     *bluemonday.Policy
)

// Label sanitizes a label for inline placement inside a <label> tag. Plain
// text passes through entity-escaped; a small set of inline markup survives
// so labels can carry emphasis or code spans.
func Label(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(labelSanitizer().Sanitize(trimmed))
}

// PlainLabel strips all markup from a label, leaving text only. Used where
// labels surface outside HTML, like terminal prompts.
func PlainLabel(raw string) string {
	plainPolicyOnce.Do(func() {
		plainPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(plainPolicy.Sanitize(raw))
}

func labelSanitizer() *bluemonday.Policy {
	labelPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("b", "i", "em", "strong", "small", "code", "abbr", "span")
		policy.AllowAttrs("class").OnElements("span")
		policy.AllowAttrs("title").OnElements("abbr")
		labelPolicy = policy
	})
	return labelPolicy
}
