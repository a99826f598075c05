// Package tools exposes the citation engine as JSON-serializable
// request/response pairs for an assistant-tool runtime. It knows nothing of
// transport, authentication, or request envelopes; callers decode a request,
// invoke a handler, and encode the result.
package tools

import (
	"fmt"

	"github.com/coolbeans/swisscite/pkg/citation"
)

// Handler answers tool requests against one engine. Handlers are immutable
// and safe for concurrent use.
type Handler struct {
	engine *citation.Engine
}

// NewHandler wraps an engine; a nil engine selects the default one.
func NewHandler(engine *citation.Engine) *Handler {
	if engine == nil {
		engine = citation.New()
	}
	return &Handler{engine: engine}
}

var defaultHandler = NewHandler(nil)

// ValidateRequest asks for a citation to be parsed and validated.
type ValidateRequest struct {
	Citation string `json:"citation"`
	// CitationType optionally pins the expected kind: "case", "statute",
	// or "doctrine".
	CitationType string `json:"citationType,omitempty"`
}

// Validate answers a validation request. The error is non-nil only for a
// malformed request (an unknown citationType); citation problems are
// reported inside the Result.
func Validate(req ValidateRequest) (*citation.Result, error) { return defaultHandler.Validate(req) }

// Validate answers a validation request against the handler's engine.
func (h *Handler) Validate(req ValidateRequest) (*citation.Result, error) {
	kind, err := parseKindField(req.CitationType)
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return h.engine.Validate(req.Citation), nil
	}
	return h.engine.ValidateKind(req.Citation, kind), nil
}

// FormatRequest asks for a citation to be re-rendered in another language.
type FormatRequest struct {
	Citation       string `json:"citation"`
	TargetLanguage string `json:"targetLanguage"`
	// Style is "full", "short", or "inline"; empty selects "full".
	Style string `json:"style,omitempty"`
}

// FormatResponse reports a formatting outcome in-band; formatting never
// fails with a Go error.
type FormatResponse struct {
	Success   bool   `json:"success"`
	Formatted string `json:"formatted,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Format answers a formatting request.
func Format(req FormatRequest) FormatResponse { return defaultHandler.Format(req) }

// Format answers a formatting request against the handler's engine.
func (h *Handler) Format(req FormatRequest) FormatResponse {
	target, ok := citation.ParseLanguage(req.TargetLanguage)
	if !ok {
		return FormatResponse{Error: fmt.Sprintf("unsupported target language %q (expected de, fr, it, or en)", req.TargetLanguage)}
	}
	style, ok := citation.ParseStyle(req.Style)
	if !ok {
		return FormatResponse{Error: fmt.Sprintf("unsupported style %q (expected full, short, or inline)", req.Style)}
	}
	formatted, err := h.engine.Format(req.Citation, target, style)
	if err != nil {
		return FormatResponse{Error: err.Error()}
	}
	return FormatResponse{Success: true, Formatted: formatted}
}

// ExtractRequest asks for every citation in a block of running text.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse lists the citations found, in order of appearance.
type ExtractResponse struct {
	Matches []citation.Match `json:"matches"`
}

// Extract answers an extraction request.
func Extract(req ExtractRequest) ExtractResponse { return defaultHandler.Extract(req) }

// Extract answers an extraction request against the handler's engine.
func (h *Handler) Extract(req ExtractRequest) ExtractResponse {
	matches := h.engine.Scan(req.Text)
	if matches == nil {
		matches = []citation.Match{}
	}
	return ExtractResponse{Matches: matches}
}

// parseKindField maps the wire citationType to a Kind; empty means
// auto-detect.
func parseKindField(citationType string) (citation.Kind, error) {
	switch citation.Kind(citationType) {
	case "":
		return "", nil
	case citation.KindCase, citation.KindStatute, citation.KindDoctrine:
		return citation.Kind(citationType), nil
	default:
		return "", fmt.Errorf("unknown citationType %q (expected case, statute, or doctrine)", citationType)
	}
}
