package output

import (
	"io"

	"github.com/tidycss/tidycss/internal/lint"
)

// Formatter defines the interface for outputting lint reports.
type Formatter interface {
	Format(w io.Writer, file string, report *lint.Report) error
}
