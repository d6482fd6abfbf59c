package output

import (
	"fmt"
	"io"

	"github.com/tidycss/tidycss/internal/lint"
)

// TextFormatter outputs findings in human-readable text format.
// When Color is true, the file location is printed in cyan and the rule ID in yellow.
type TextFormatter struct {
	Color bool
}

// Format writes each finding as a single line in the pattern:
// file:line:col severity rule message
// Rollup findings carry no location and print as:
// file severity rule message
func (f *TextFormatter) Format(w io.Writer, file string, report *lint.Report) error {
	for _, m := range report.Messages {
		var err error
		switch {
		case m.Rollup && f.Color:
			_, err = fmt.Fprintf(w, "\033[36m%s\033[0m %s \033[33m%s\033[0m %s\n",
				file, m.Type, m.Rule.ID, m.Message)
		case m.Rollup:
			_, err = fmt.Fprintf(w, "%s %s %s %s\n",
				file, m.Type, m.Rule.ID, m.Message)
		case f.Color:
			// file in cyan, rule in yellow
			_, err = fmt.Fprintf(w, "\033[36m%s:%d:%d\033[0m %s \033[33m%s\033[0m %s\n",
				file, m.Line, m.Col, m.Type, m.Rule.ID, m.Message)
		default:
			_, err = fmt.Fprintf(w, "%s:%d:%d %s %s %s\n",
				file, m.Line, m.Col, m.Type, m.Rule.ID, m.Message)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
