package lint

// Reporter accumulates findings during one verification run. It is
// constructed per run and never shared across runs.
type Reporter struct {
	messages []Message
	stats    map[string]any
	lines    []string
	ruleset  Ruleset
	allow    AllowMap
	ignore   []LineRange
}

// NewReporter returns a Reporter for one run. lines holds the source
// split by newline for evidence snippets; allow and ignore hold the
// suppressions extracted from override directives.
func NewReporter(lines []string, ruleset Ruleset, allow AllowMap, ignore []LineRange) *Reporter {
	return &Reporter{
		stats:   make(map[string]any),
		lines:   lines,
		ruleset: ruleset,
		allow:   allow,
		ignore:  ignore,
	}
}

// Error appends a type:error message unconditionally. Allow and ignore
// directives never suppress it.
func (r *Reporter) Error(msg string, line, col int, rule RuleMeta) {
	r.append(Message{
		Type:     Error,
		Line:     line,
		Col:      col,
		Message:  msg,
		Evidence: r.evidence(line),
		Rule:     rule,
	})
}

// Report appends a finding classified by the effective ruleset: error
// when the rule is at level 2, warning otherwise. The finding is
// dropped entirely when the rule is allowed on that line or the line
// falls inside an ignore range.
func (r *Reporter) Report(msg string, line, col int, rule RuleMeta) {
	if ids, ok := r.allow[line]; ok && ids[rule.ID] {
		return
	}
	for _, span := range r.ignore {
		if span.Contains(line) {
			return
		}
	}

	typ := Warning
	if r.ruleset[rule.ID] == Err {
		typ = Error
	}
	r.append(Message{
		Type:     typ,
		Line:     line,
		Col:      col,
		Message:  msg,
		Evidence: r.evidence(line),
		Rule:     rule,
	})
}

// Warn is an alias for Report kept for readability at call sites that
// never escalate to error.
func (r *Reporter) Warn(msg string, line, col int, rule RuleMeta) {
	r.Report(msg, line, col, rule)
}

// Info appends a type:info message unconditionally.
func (r *Reporter) Info(msg string, line, col int, rule RuleMeta) {
	r.append(Message{
		Type:     Info,
		Line:     line,
		Col:      col,
		Message:  msg,
		Evidence: r.evidence(line),
		Rule:     rule,
	})
}

// RollupError appends a file-level aggregate error with no position.
func (r *Reporter) RollupError(msg string, rule RuleMeta) {
	r.append(Message{Type: Error, Message: msg, Rule: rule, Rollup: true})
}

// RollupWarn appends a file-level aggregate warning with no position.
func (r *Reporter) RollupWarn(msg string, rule RuleMeta) {
	r.append(Message{Type: Warning, Message: msg, Rule: rule, Rollup: true})
}

// Stat records a named statistic for the run. Last write per name wins.
func (r *Reporter) Stat(name string, value any) {
	r.stats[name] = value
}

// Messages returns the findings in emission order.
func (r *Reporter) Messages() []Message {
	return r.messages
}

// Stats returns the recorded statistics.
func (r *Reporter) Stats() map[string]any {
	return r.stats
}

func (r *Reporter) append(m Message) {
	r.messages = append(r.messages, m)
}

func (r *Reporter) evidence(line int) string {
	if line < 1 || line > len(r.lines) {
		return ""
	}
	return r.lines[line-1]
}
