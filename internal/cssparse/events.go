package cssparse

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line int
	Col  int
}

// StartStylesheetEvent fires once before any other event.
type StartStylesheetEvent struct{}

// EndStylesheetEvent fires once after event emission stops, whether the
// stylesheet parsed cleanly or not.
type EndStylesheetEvent struct{}

// CharsetEvent fires for an @charset directive.
type CharsetEvent struct {
	Charset string
	Pos     Position
}

// NamespaceEvent fires for an @namespace directive.
type NamespaceEvent struct {
	Prefix string
	URI    string
	Pos    Position
}

// ImportEvent fires for an @import directive.
type ImportEvent struct {
	URI string
	Pos Position
}

// StartRuleEvent fires at the opening brace of a style rule, carrying
// every selector of the rule's prelude.
type StartRuleEvent struct {
	Selectors []Selector
	Pos       Position
}

// EndRuleEvent fires at the closing brace of a style rule.
type EndRuleEvent struct {
	Selectors []Selector
	Pos       Position
}

// PropertyEvent fires for each declaration inside any block.
type PropertyEvent struct {
	Property  Property
	Value     Value
	Important bool
	Pos       Position
}

// StartMediaEvent and EndMediaEvent bracket an @media block.
type StartMediaEvent struct {
	Media string
	Pos   Position
}

// EndMediaEvent closes an @media block.
type EndMediaEvent struct {
	Media string
	Pos   Position
}

// StartFontFaceEvent and EndFontFaceEvent bracket an @font-face block.
type StartFontFaceEvent struct {
	Pos Position
}

// EndFontFaceEvent closes an @font-face block.
type EndFontFaceEvent struct {
	Pos Position
}

// StartKeyframesEvent fires at the opening of an @keyframes block,
// including vendor-prefixed forms.
type StartKeyframesEvent struct {
	Name   string
	Prefix string // "-webkit-", "-moz-", "-o-" or "" for the standard form
	Pos    Position
}

// EndKeyframesEvent closes an @keyframes block.
type EndKeyframesEvent struct {
	Pos Position
}

// StartKeyframeRuleEvent fires for each keyframe selector block
// (from/to/percentage) inside @keyframes.
type StartKeyframeRuleEvent struct {
	Key string
	Pos Position
}

// EndKeyframeRuleEvent closes a keyframe selector block.
type EndKeyframeRuleEvent struct {
	Pos Position
}

// StartPageEvent and EndPageEvent bracket an @page block.
type StartPageEvent struct {
	Pos Position
}

// EndPageEvent closes an @page block.
type EndPageEvent struct {
	Pos Position
}

// StartViewportEvent and EndViewportEvent bracket an @viewport block.
type StartViewportEvent struct {
	Pos Position
}

// EndViewportEvent closes an @viewport block.
type EndViewportEvent struct {
	Pos Position
}

// ErrorEvent fires for a malformed-CSS condition. Emission of further
// structural events stops after the first error.
type ErrorEvent struct {
	Message string
	Pos     Position
}

// Handle is the subscription point handed to each rule. Rules attach
// listeners for the events they care about; the parser fires them in
// document order. Listeners for one event run in attach order.
type Handle struct {
	startStylesheet  []func(StartStylesheetEvent)
	endStylesheet    []func(EndStylesheetEvent)
	charset          []func(CharsetEvent)
	namespace        []func(NamespaceEvent)
	imports          []func(ImportEvent)
	startRule        []func(StartRuleEvent)
	endRule          []func(EndRuleEvent)
	property         []func(PropertyEvent)
	startMedia       []func(StartMediaEvent)
	endMedia         []func(EndMediaEvent)
	startFontFace    []func(StartFontFaceEvent)
	endFontFace      []func(EndFontFaceEvent)
	startKeyframes   []func(StartKeyframesEvent)
	endKeyframes     []func(EndKeyframesEvent)
	startKeyframeRl  []func(StartKeyframeRuleEvent)
	endKeyframeRl    []func(EndKeyframeRuleEvent)
	startPage        []func(StartPageEvent)
	endPage          []func(EndPageEvent)
	startViewport    []func(StartViewportEvent)
	endViewport      []func(EndViewportEvent)
	parseError       []func(ErrorEvent)
}

// OnStartStylesheet subscribes to StartStylesheetEvent.
func (h *Handle) OnStartStylesheet(fn func(StartStylesheetEvent)) {
	h.startStylesheet = append(h.startStylesheet, fn)
}

// OnEndStylesheet subscribes to EndStylesheetEvent.
func (h *Handle) OnEndStylesheet(fn func(EndStylesheetEvent)) {
	h.endStylesheet = append(h.endStylesheet, fn)
}

// OnCharset subscribes to CharsetEvent.
func (h *Handle) OnCharset(fn func(CharsetEvent)) {
	h.charset = append(h.charset, fn)
}

// OnNamespace subscribes to NamespaceEvent.
func (h *Handle) OnNamespace(fn func(NamespaceEvent)) {
	h.namespace = append(h.namespace, fn)
}

// OnImport subscribes to ImportEvent.
func (h *Handle) OnImport(fn func(ImportEvent)) {
	h.imports = append(h.imports, fn)
}

// OnStartRule subscribes to StartRuleEvent.
func (h *Handle) OnStartRule(fn func(StartRuleEvent)) {
	h.startRule = append(h.startRule, fn)
}

// OnEndRule subscribes to EndRuleEvent.
func (h *Handle) OnEndRule(fn func(EndRuleEvent)) {
	h.endRule = append(h.endRule, fn)
}

// OnProperty subscribes to PropertyEvent.
func (h *Handle) OnProperty(fn func(PropertyEvent)) {
	h.property = append(h.property, fn)
}

// OnStartMedia subscribes to StartMediaEvent.
func (h *Handle) OnStartMedia(fn func(StartMediaEvent)) {
	h.startMedia = append(h.startMedia, fn)
}

// OnEndMedia subscribes to EndMediaEvent.
func (h *Handle) OnEndMedia(fn func(EndMediaEvent)) {
	h.endMedia = append(h.endMedia, fn)
}

// OnStartFontFace subscribes to StartFontFaceEvent.
func (h *Handle) OnStartFontFace(fn func(StartFontFaceEvent)) {
	h.startFontFace = append(h.startFontFace, fn)
}

// OnEndFontFace subscribes to EndFontFaceEvent.
func (h *Handle) OnEndFontFace(fn func(EndFontFaceEvent)) {
	h.endFontFace = append(h.endFontFace, fn)
}

// OnStartKeyframes subscribes to StartKeyframesEvent.
func (h *Handle) OnStartKeyframes(fn func(StartKeyframesEvent)) {
	h.startKeyframes = append(h.startKeyframes, fn)
}

// OnEndKeyframes subscribes to EndKeyframesEvent.
func (h *Handle) OnEndKeyframes(fn func(EndKeyframesEvent)) {
	h.endKeyframes = append(h.endKeyframes, fn)
}

// OnStartKeyframeRule subscribes to StartKeyframeRuleEvent.
func (h *Handle) OnStartKeyframeRule(fn func(StartKeyframeRuleEvent)) {
	h.startKeyframeRl = append(h.startKeyframeRl, fn)
}

// OnEndKeyframeRule subscribes to EndKeyframeRuleEvent.
func (h *Handle) OnEndKeyframeRule(fn func(EndKeyframeRuleEvent)) {
	h.endKeyframeRl = append(h.endKeyframeRl, fn)
}

// OnStartPage subscribes to StartPageEvent.
func (h *Handle) OnStartPage(fn func(StartPageEvent)) {
	h.startPage = append(h.startPage, fn)
}

// OnEndPage subscribes to EndPageEvent.
func (h *Handle) OnEndPage(fn func(EndPageEvent)) {
	h.endPage = append(h.endPage, fn)
}

// OnStartViewport subscribes to StartViewportEvent.
func (h *Handle) OnStartViewport(fn func(StartViewportEvent)) {
	h.startViewport = append(h.startViewport, fn)
}

// OnEndViewport subscribes to EndViewportEvent.
func (h *Handle) OnEndViewport(fn func(EndViewportEvent)) {
	h.endViewport = append(h.endViewport, fn)
}

// OnError subscribes to ErrorEvent.
func (h *Handle) OnError(fn func(ErrorEvent)) {
	h.parseError = append(h.parseError, fn)
}

// EmitStartStylesheet fires StartStylesheetEvent to all subscribers.
func (h *Handle) EmitStartStylesheet(ev StartStylesheetEvent) {
	for _, fn := range h.startStylesheet {
		fn(ev)
	}
}

// EmitEndStylesheet fires EndStylesheetEvent to all subscribers.
func (h *Handle) EmitEndStylesheet(ev EndStylesheetEvent) {
	for _, fn := range h.endStylesheet {
		fn(ev)
	}
}

// EmitCharset fires CharsetEvent to all subscribers.
func (h *Handle) EmitCharset(ev CharsetEvent) {
	for _, fn := range h.charset {
		fn(ev)
	}
}

// EmitNamespace fires NamespaceEvent to all subscribers.
func (h *Handle) EmitNamespace(ev NamespaceEvent) {
	for _, fn := range h.namespace {
		fn(ev)
	}
}

// EmitImport fires ImportEvent to all subscribers.
func (h *Handle) EmitImport(ev ImportEvent) {
	for _, fn := range h.imports {
		fn(ev)
	}
}

// EmitStartRule fires StartRuleEvent to all subscribers.
func (h *Handle) EmitStartRule(ev StartRuleEvent) {
	for _, fn := range h.startRule {
		fn(ev)
	}
}

// EmitEndRule fires EndRuleEvent to all subscribers.
func (h *Handle) EmitEndRule(ev EndRuleEvent) {
	for _, fn := range h.endRule {
		fn(ev)
	}
}

// EmitProperty fires PropertyEvent to all subscribers.
func (h *Handle) EmitProperty(ev PropertyEvent) {
	for _, fn := range h.property {
		fn(ev)
	}
}

// EmitStartMedia fires StartMediaEvent to all subscribers.
func (h *Handle) EmitStartMedia(ev StartMediaEvent) {
	for _, fn := range h.startMedia {
		fn(ev)
	}
}

// EmitEndMedia fires EndMediaEvent to all subscribers.
func (h *Handle) EmitEndMedia(ev EndMediaEvent) {
	for _, fn := range h.endMedia {
		fn(ev)
	}
}

// EmitStartFontFace fires StartFontFaceEvent to all subscribers.
func (h *Handle) EmitStartFontFace(ev StartFontFaceEvent) {
	for _, fn := range h.startFontFace {
		fn(ev)
	}
}

// EmitEndFontFace fires EndFontFaceEvent to all subscribers.
func (h *Handle) EmitEndFontFace(ev EndFontFaceEvent) {
	for _, fn := range h.endFontFace {
		fn(ev)
	}
}

// EmitStartKeyframes fires StartKeyframesEvent to all subscribers.
func (h *Handle) EmitStartKeyframes(ev StartKeyframesEvent) {
	for _, fn := range h.startKeyframes {
		fn(ev)
	}
}

// EmitEndKeyframes fires EndKeyframesEvent to all subscribers.
func (h *Handle) EmitEndKeyframes(ev EndKeyframesEvent) {
	for _, fn := range h.endKeyframes {
		fn(ev)
	}
}

// EmitStartKeyframeRule fires StartKeyframeRuleEvent to all subscribers.
func (h *Handle) EmitStartKeyframeRule(ev StartKeyframeRuleEvent) {
	for _, fn := range h.startKeyframeRl {
		fn(ev)
	}
}

// EmitEndKeyframeRule fires EndKeyframeRuleEvent to all subscribers.
func (h *Handle) EmitEndKeyframeRule(ev EndKeyframeRuleEvent) {
	for _, fn := range h.endKeyframeRl {
		fn(ev)
	}
}

// EmitStartPage fires StartPageEvent to all subscribers.
func (h *Handle) EmitStartPage(ev StartPageEvent) {
	for _, fn := range h.startPage {
		fn(ev)
	}
}

// EmitEndPage fires EndPageEvent to all subscribers.
func (h *Handle) EmitEndPage(ev EndPageEvent) {
	for _, fn := range h.endPage {
		fn(ev)
	}
}

// EmitStartViewport fires StartViewportEvent to all subscribers.
func (h *Handle) EmitStartViewport(ev StartViewportEvent) {
	for _, fn := range h.startViewport {
		fn(ev)
	}
}

// EmitEndViewport fires EndViewportEvent to all subscribers.
func (h *Handle) EmitEndViewport(ev EndViewportEvent) {
	for _, fn := range h.endViewport {
		fn(ev)
	}
}

// EmitError fires ErrorEvent to all subscribers.
func (h *Handle) EmitError(ev ErrorEvent) {
	for _, fn := range h.parseError {
		fn(ev)
	}
}
