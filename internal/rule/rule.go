package rule

import (
	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/lint"
)

// Rule is a single diagnostic check over the parser event stream.
// Implementations are stateless between runs: any accumulation state
// must live in locals captured inside Init, never on the Rule value.
type Rule interface {
	// Meta returns the rule's immutable identity and catalog data.
	Meta() lint.RuleMeta

	// Init attaches the rule's event listeners for one verification
	// run, reporting findings through rep.
	Init(events *cssparse.Handle, rep *lint.Reporter)
}
