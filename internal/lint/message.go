package lint

// Severity indicates the severity level of a message.
type Severity string

// Severity levels.
const (
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

// RuleMeta is the serializable identity of a rule. Messages carry a
// copy so reports can be rendered without resolving the registry.
type RuleMeta struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"desc"`
	URL         string   `json:"url,omitempty"`
	Browsers    string   `json:"browsers,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Message represents a single finding. Rollup messages are
// file-level aggregates and carry no line/col.
type Message struct {
	Type     Severity
	Line     int
	Col      int
	Message  string
	Evidence string
	Rule     RuleMeta
	Rollup   bool
}

// Report is the result of one verification run.
type Report struct {
	Messages []Message
	Stats    map[string]any
	Ruleset  Ruleset
	Allow    AllowMap
	Ignore   []LineRange
}
