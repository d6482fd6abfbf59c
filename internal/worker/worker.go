// Package worker runs the linter behind a line-oriented JSON protocol,
// for embedding in editors and build daemons. Each request is one JSON
// object per line; each response is one JSON object per line, in
// request order.
package worker

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/tidycss/tidycss/internal/cssparse"
	"github.com/tidycss/tidycss/internal/engine"
	"github.com/tidycss/tidycss/internal/lint"
	"github.com/tidycss/tidycss/internal/rule"
)

// Request is one decoded command line.
type Request struct {
	Command string         `json:"command"`
	Text    string         `json:"text,omitempty"`
	Rule    string         `json:"rule,omitempty"`
	Ruleset map[string]int `json:"ruleset,omitempty"`
}

// Response is the envelope for every reply. Exactly one of the payload
// fields is set, matching the command; Error is set instead when the
// command failed.
type Response struct {
	Rules    []lint.RuleMeta `json:"rules,omitempty"`
	Rule     *lint.RuleMeta  `json:"ruleInfo,omitempty"`
	Messages []reportMessage `json:"messages,omitempty"`
	Stats    map[string]any  `json:"stats,omitempty"`
	Sections []section       `json:"sections,omitempty"`
	Error    *WorkerError    `json:"error,omitempty"`
}

// section is one style rule of a parse response: its selectors and how
// many declarations its block holds.
type section struct {
	Selectors    []string `json:"selectors"`
	Declarations int      `json:"declarations"`
	Line         int      `json:"line"`
	Col          int      `json:"col"`
}

// WorkerError is a structured failure payload. Defective-rule panics
// are recovered into this form instead of killing the worker.
type WorkerError struct {
	Message string `json:"message"`
	Line    int    `json:"line,omitempty"`
	Col     int    `json:"col,omitempty"`
}

type reportMessage struct {
	Type     string `json:"type"`
	Line     int    `json:"line,omitempty"`
	Col      int    `json:"col,omitempty"`
	Message  string `json:"message"`
	Evidence string `json:"evidence,omitempty"`
	Rule     string `json:"rule"`
	Rollup   bool   `json:"rollup,omitempty"`
}

// Worker serializes lint runs over one reader/writer pair. It is not
// safe for concurrent use; run one Worker per connection.
type Worker struct {
	reg *rule.Registry
}

// New returns a Worker backed by the given registry.
func New(reg *rule.Registry) *Worker {
	return &Worker{reg: reg}
}

// Serve reads newline-delimited JSON requests from r until EOF and
// writes one response line per request to w. Malformed requests produce
// an error response; they never stop the loop.
func (wk *Worker) Serve(r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	enc := json.NewEncoder(w)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if encErr := enc.Encode(Response{Error: &WorkerError{Message: fmt.Sprintf("malformed request: %v", err)}}); encErr != nil {
				return encErr
			}
			continue
		}

		if err := enc.Encode(wk.handle(req)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (wk *Worker) handle(req Request) Response {
	switch req.Command {
	case "rules":
		return wk.listRules()
	case "info":
		return wk.info(req)
	case "verify":
		return wk.verify(req)
	case "parse":
		return wk.parse(req)
	default:
		return Response{Error: &WorkerError{Message: fmt.Sprintf("unknown command %q", req.Command)}}
	}
}

func (wk *Worker) listRules() Response {
	var metas []lint.RuleMeta
	for _, r := range wk.reg.List() {
		metas = append(metas, r.Meta())
	}
	return Response{Rules: metas}
}

// info resolves one rule by id, or by exact name as a fallback.
func (wk *Worker) info(req Request) Response {
	if r := wk.reg.ByID(req.Rule); r != nil {
		meta := r.Meta()
		return Response{Rule: &meta}
	}
	for _, r := range wk.reg.List() {
		if meta := r.Meta(); meta.Name == req.Rule {
			return Response{Rule: &meta}
		}
	}
	return Response{Error: &WorkerError{Message: fmt.Sprintf("unknown rule %q", req.Rule)}}
}

// parse returns the stylesheet's rule structure without running any
// rules: one section per style rule with its selector texts and
// declaration count.
func (wk *Worker) parse(req Request) Response {
	var (
		sections []section
		open     *section
	)

	p := cssparse.New()
	p.Events.OnStartRule(func(ev cssparse.StartRuleEvent) {
		sel := make([]string, 0, len(ev.Selectors))
		for _, s := range ev.Selectors {
			sel = append(sel, s.Text)
		}
		sections = append(sections, section{Selectors: sel, Line: ev.Pos.Line, Col: ev.Pos.Col})
		open = &sections[len(sections)-1]
	})
	p.Events.OnProperty(func(cssparse.PropertyEvent) {
		if open != nil {
			open.Declarations++
		}
	})
	p.Events.OnEndRule(func(cssparse.EndRuleEvent) {
		open = nil
	})
	p.Parse(req.Text)

	return Response{Sections: sections}
}

func (wk *Worker) verify(req Request) (resp Response) {
	defer func() {
		if v := recover(); v != nil {
			resp = Response{Error: &WorkerError{Message: fmt.Sprintf("rule failure: %v", v)}}
		}
	}()

	var ruleset lint.Ruleset
	if req.Ruleset != nil {
		ruleset = make(lint.Ruleset, len(req.Ruleset))
		for id, level := range req.Ruleset {
			ruleset[id] = lint.Level(level)
		}
	}

	report := engine.Verify(wk.reg, req.Text, ruleset)

	messages := make([]reportMessage, 0, len(report.Messages))
	for _, m := range report.Messages {
		messages = append(messages, reportMessage{
			Type:     string(m.Type),
			Line:     m.Line,
			Col:      m.Col,
			Message:  m.Message,
			Evidence: m.Evidence,
			Rule:     m.Rule.ID,
			Rollup:   m.Rollup,
		})
	}
	return Response{Messages: messages, Stats: report.Stats}
}
