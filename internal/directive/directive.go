// Package directive extracts embedded override comments of the form
// /* csslint ... */ from stylesheet source. Three directive families
// exist: "allow:" suppresses named rules on the directive's line,
// "ignore:start"/"ignore:end" bracket suppressed line spans, and bare
// id:value pairs rewrite ruleset severities before a run begins.
package directive

import (
	"regexp"
	"strings"

	"github.com/tidycss/tidycss/internal/lint"
)

// comment matches one embedded directive, case-insensitively. The
// capture holds the directive body up to the comment terminator.
var comment = regexp.MustCompile(`(?i)/\*[ \t]*csslint[ \t]+([^*]*)\*/`)

// severityValues maps directive values to levels. Anything not listed
// falls back to warning.
var severityValues = map[string]lint.Level{
	"true":  lint.Err,
	"2":     lint.Err,
	"":      lint.Warn,
	"1":     lint.Warn,
	"false": lint.Disabled,
	"0":     lint.Disabled,
}

// Present reports whether text contains any directive-looking comment.
// Used to skip the extraction pass (and ruleset cloning) entirely.
func Present(text string) bool {
	return strings.Contains(strings.ToLower(text), "csslint")
}

// Extract scans text for override directives in document order.
// Severity directives mutate ruleset in place; allow directives and
// ignore spans are returned with 1-based line numbers.
//
// Line attribution keeps a monotonically increasing 0-based counter
// that advances at each directive match by the newline distance from
// the previous match, reconciled to 1-based before use.
func Extract(text string, ruleset lint.Ruleset) (lint.AllowMap, []lint.LineRange) {
	allow := make(lint.AllowMap)
	var ranges []lint.LineRange

	if !Present(text) {
		return allow, nil
	}

	lineno := 0 // 0-based internally
	searched := 0
	ignoreStart := -1

	for _, m := range comment.FindAllStringSubmatchIndex(text, -1) {
		lineno += strings.Count(text[searched:m[0]], "\n")
		searched = m[0]

		body := strings.ToLower(strings.TrimSpace(text[m[2]:m[3]]))
		switch {
		case strings.HasPrefix(body, "allow:"):
			ids := make(map[string]bool)
			for _, id := range strings.Split(body[len("allow:"):], ",") {
				id = strings.TrimSpace(id)
				if id != "" {
					ids[id] = true
				}
			}
			if len(ids) > 0 {
				line := lineno + 1
				if allow[line] == nil {
					allow[line] = make(map[string]bool)
				}
				for id := range ids {
					allow[line][id] = true
				}
			}

		case body == "ignore:start":
			if ignoreStart < 0 {
				ignoreStart = lineno
			}

		case body == "ignore:end":
			if ignoreStart >= 0 {
				ranges = append(ranges, lint.LineRange{Start: ignoreStart + 1, End: lineno + 1})
				ignoreStart = -1
			}

		default:
			applySeverities(body, ruleset)
		}
	}

	// A span left open swallows everything through the last line.
	if ignoreStart >= 0 {
		last := lineno + strings.Count(text[searched:], "\n")
		ranges = append(ranges, lint.LineRange{Start: ignoreStart + 1, End: last + 1})
	}

	return allow, ranges
}

// applySeverities handles the bare id[:value] pair list.
func applySeverities(body string, ruleset lint.Ruleset) {
	for _, pair := range strings.Split(body, ",") {
		id, value, _ := strings.Cut(pair, ":")
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		lvl, ok := severityValues[strings.TrimSpace(value)]
		if !ok {
			lvl = lint.Warn
		}
		ruleset[id] = lvl
	}
}
