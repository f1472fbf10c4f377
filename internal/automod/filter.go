// Package automod implements the content filter that runs on every publish.
// Filter is pure: a fixed keyword table checked in order (first match wins),
// then a shouting check, then a repeated-character check.
package automod

import (
	"strings"
	"unicode"

	"github.com/social360/social360/internal/domain"
)

// Verdict is the filter outcome for a piece of content.
type Verdict struct {
	Flagged  bool
	Reason   string
	Severity domain.Severity
}

// keywordRules is ordered: earlier entries short-circuit later ones.
var keywordRules = []struct {
	word     string
	severity domain.Severity
	reason   string
}{
	{"kill yourself", domain.SeverityCritical, "threatening language"},
	{"kill you", domain.SeverityCritical, "threatening language"},
	{"hate", domain.SeverityHigh, "hateful language"},
	{"racist", domain.SeverityHigh, "hateful language"},
	{"stupid", domain.SeverityMedium, "abusive language"},
	{"idiot", domain.SeverityMedium, "abusive language"},
	{"scam", domain.SeverityMedium, "deceptive content"},
	{"spam", domain.SeverityLow, "spam content"},
	{"click here", domain.SeverityLow, "spam content"},
	{"buy now", domain.SeverityLow, "spam content"},
}

const (
	shoutingMinLetters = 10
	shoutingRatio      = 0.7
	maxRepeatRun       = 3
)

// Filter checks content against the keyword table, then for shouting
// (uppercase ratio above 0.7 across more than 10 letters), then for any
// non-space character repeated more than 3 times in a row.
func Filter(content string) Verdict {
	lower := strings.ToLower(content)
	for _, rule := range keywordRules {
		if strings.Contains(lower, rule.word) {
			return Verdict{Flagged: true, Reason: rule.reason, Severity: rule.severity}
		}
	}

	if isShouting(content) {
		return Verdict{Flagged: true, Reason: "excessive capitalization", Severity: domain.SeverityLow}
	}

	if hasRepeatedRun(content) {
		return Verdict{Flagged: true, Reason: "repeated character spam", Severity: domain.SeverityLow}
	}

	return Verdict{}
}

func isShouting(content string) bool {
	letters := 0
	upper := 0
	for _, r := range content {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters <= shoutingMinLetters {
		return false
	}
	return float64(upper)/float64(letters) > shoutingRatio
}

func hasRepeatedRun(content string) bool {
	var prev rune
	run := 0
	for _, r := range content {
		if r == ' ' {
			prev = 0
			run = 0
			continue
		}
		if r == prev {
			run++
			if run > maxRepeatRun {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}
