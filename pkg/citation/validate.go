package citation

import (
	"errors"
	"fmt"
	"strings"
)

// Diagnostic is one actionable finding about a malformed citation.
type Diagnostic struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	// Position is the byte offset of the offending token in the
	// whitespace-normalized input, or -1 when no single token is to blame.
	Position int `json:"position"`
}

// Result is the outcome of validating one citation string.
type Result struct {
	Valid       bool         `json:"valid"`
	Kind        Kind         `json:"kind,omitempty"`
	Input       string       `json:"input"`
	Normalized  string       `json:"normalized,omitempty"`
	Diagnostics []Diagnostic `json:"diagnostics"`
	// Suggestions are advisory hints from known-mistake heuristics; their
	// presence never changes Valid.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Validate checks a citation string and classifies common malformations
// into diagnostics with suggested fixes. It never panics, whatever the
// input.
func Validate(text string) *Result { return defaultEngine.Validate(text) }

// ValidateKind validates against an expected citation kind.
func ValidateKind(text string, kind Kind) *Result { return defaultEngine.ValidateKind(text, kind) }

// Validate checks a citation string against the auto-detected kind.
func (e *Engine) Validate(text string) *Result {
	return e.validate(text, "")
}

// ValidateKind validates against an expected citation kind.
func (e *Engine) ValidateKind(text string, kind Kind) *Result {
	return e.validate(text, kind)
}

func (e *Engine) validate(text string, hint Kind) *Result {
	result := &Result{
		Input:       text,
		Diagnostics: []Diagnostic{},
	}

	parsed, err := e.parseForValidation(text, hint)
	if err != nil {
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			// The parser only returns *ParseError; keep the contract total
			// anyway.
			parseErr = newParseError(CodeUnrecognizedFormat, text, -1, "%v", err)
		}
		if hint == "" {
			if normalized := normalizeWhitespace(text); normalized != "" {
				result.Kind = sniffKind(normalized)
			}
		} else {
			result.Kind = hint
		}
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Code:     parseErr.Code,
			Message:  parseErr.Message,
			Position: parseErr.Position,
		})
		result.Suggestions = suggestions(text)
		return result
	}

	result.Kind = parsed.Kind()

	// A statute citation without its abbreviation matches structurally but
	// is incomplete for any downstream use.
	if statute, ok := parsed.(*StatuteCitation); ok && statute.Statute == "" {
		result.Diagnostics = append(result.Diagnostics, Diagnostic{
			Code:     CodeMissingStatute,
			Message:  "statute citation is missing its statute abbreviation (e.g. \"Art. 97 OR\")",
			Position: -1,
		})
		result.Suggestions = suggestions(text)
		return result
	}

	result.Valid = true
	result.Normalized = Normalize(parsed)
	return result
}

// parseForValidation behaves like parse but reports kind-specific format
// codes for hinted parses, matching the parser's hint-conflict policy.
func (e *Engine) parseForValidation(text string, hint Kind) (Citation, error) {
	if hint == "" {
		return e.Parse(text)
	}
	return e.ParseKind(text, hint)
}

// suggestions runs the known-mistake heuristics over the normalized input.
// They are advisory only and generated independently of the diagnostics.
func suggestions(text string) []string {
	normalized := normalizeWhitespace(text)
	if normalized == "" {
		return nil
	}
	var hints []string
	tokens := tokenize(normalized)
	first := tokens[0].text

	// Digits glued to a case prefix: "BGE145 III 229".
	if prefix, rest, ok := splitGluedPrefix(first); ok && isDigits(rest) {
		hints = append(hints, fmt.Sprintf("insert a space after the prefix: %q", prefix+" "+rest))
	}

	// A case citation cut short before its page number: "BGE 145 III".
	if _, ok := casePrefixes[upperASCII(first)]; ok && len(tokens) == 3 &&
		isDigits(tokens[1].text) && isAlpha(tokens[2].text) {
		hints = append(hints, "a decision citation needs a page number after the section code (e.g. \"BGE 145 III 229\")")
	}

	// Common consideration-marker misspellings.
	lower := lowerASCII(normalized)
	if strings.Contains(lower, " erw.") || strings.Contains(lower, " cons.") {
		hints = append(hints, "use \"E.\" or \"consid.\" to introduce the consideration")
	}

	// Statute citation without its abbreviation.
	if isArticleMarker(first) {
		if match, ok := matchStatute(tokens); ok && match.statute == "" {
			hints = append(hints, "append the statute abbreviation (e.g. \"Art. 97 OR\")")
		}
	}

	return hints
}

// splitGluedPrefix splits tokens like "BGE145" into prefix and remainder.
func splitGluedPrefix(token string) (prefix, rest string, ok bool) {
	upper := upperASCII(token)
	for candidate := range casePrefixes {
		if strings.HasPrefix(upper, candidate) && len(token) > len(candidate) {
			return candidate, token[len(candidate):], true
		}
	}
	return "", "", false
}
