package output

import (
	"encoding/json"
	"io"

	"github.com/tidycss/tidycss/internal/lint"
)

// JSONFormatter outputs a report as one JSON object.
type JSONFormatter struct{}

type jsonMessage struct {
	File     string `json:"file"`
	Line     int    `json:"line,omitempty"`
	Column   int    `json:"column,omitempty"`
	Rule     string `json:"rule"`
	Name     string `json:"name"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Evidence string `json:"evidence,omitempty"`
	Rollup   bool   `json:"rollup,omitempty"`
}

type jsonReport struct {
	Messages []jsonMessage  `json:"messages"`
	Stats    map[string]any `json:"stats"`
}

// Format writes the report as a pretty-printed JSON object.
// A report with no findings produces an empty messages array.
func (f *JSONFormatter) Format(w io.Writer, file string, report *lint.Report) error {
	out := jsonReport{
		Messages: make([]jsonMessage, 0, len(report.Messages)),
		Stats:    report.Stats,
	}
	if out.Stats == nil {
		out.Stats = map[string]any{}
	}
	for _, m := range report.Messages {
		out.Messages = append(out.Messages, jsonMessage{
			File:     file,
			Line:     m.Line,
			Column:   m.Col,
			Rule:     m.Rule.ID,
			Name:     m.Rule.Name,
			Severity: string(m.Type),
			Message:  m.Message,
			Evidence: m.Evidence,
			Rollup:   m.Rollup,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
