// Package engine composes the verification pipeline: effective
// ruleset, override directives, parser event stream, rule listeners,
// and the final sorted report.
package engine

import (
	"sort"
	"strings"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/directive"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

// Verify runs one verification pass of text against the rules in reg.
// A nil ruleset means the registry default (every rule at warning).
// The caller's ruleset is never mutated; parse-level failures surface
// as messages in the report, while a defective rule panics out of
// Verify rather than being misattributed to the input.
func Verify(reg *rule.Registry, text string, ruleset lint.Ruleset) *lint.Report {
	if ruleset == nil {
		ruleset = reg.DefaultRuleset()
	} else {
		ruleset = ruleset.Clone()
	}

	allow := make(lint.AllowMap)
	var ignore []lint.LineRange
	if directive.Present(text) {
		allow, ignore = directive.Extract(text, ruleset)
	}

	// Parser-level errors are always errors, never downgradable.
	ruleset["errors"] = lint.Err

	lines := strings.Split(text, "\n")
	reporter := lint.NewReporter(lines, ruleset, allow, ignore)
	parser := cssparse.New()

	// Attach listeners in stable id order so same-line findings keep a
	// deterministic emission order across runs. Ruleset ids that
	// resolve to no registered rule are silently skipped.
	for _, r := range reg.List() {
		if ruleset[r.Meta().ID] == lint.Disabled {
			continue
		}
		r.Init(&parser.Events, reporter)
	}

	parser.Parse(text)

	msgs := reporter.Messages()
	sort.SliceStable(msgs, func(i, j int) bool {
		a, b := msgs[i], msgs[j]
		if a.Rollup != b.Rollup {
			return !a.Rollup
		}
		if a.Rollup {
			return false // rollups keep emission order
		}
		return a.Line < b.Line
	})

	return &lint.Report{
		Messages: msgs,
		Stats:    reporter.Stats(),
		Ruleset:  ruleset,
		Allow:    allow,
		Ignore:   ignore,
	}
}
