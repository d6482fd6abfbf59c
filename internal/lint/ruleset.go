package lint

// Level is the severity assigned to a rule id in a Ruleset.
type Level int

// Ruleset levels.
const (
	Disabled Level = 0
	Warn     Level = 1
	Err      Level = 2
)

// Ruleset maps rule ids to severity levels.
type Ruleset map[string]Level

// Clone returns an independent copy of the ruleset.
func (rs Ruleset) Clone() Ruleset {
	out := make(Ruleset, len(rs))
	for id, lvl := range rs {
		out[id] = lvl
	}
	return out
}

// AllowMap maps 1-based line numbers to the set of rule ids explicitly
// allowed on that line.
type AllowMap map[int]map[string]bool

// LineRange is an inclusive [Start, End] span of 1-based line numbers
// whose report-level findings are suppressed.
type LineRange struct {
	Start int
	End   int
}

// Contains reports whether line falls inside the range.
func (r LineRange) Contains(line int) bool {
	return r.Start <= line && line <= r.End
}
