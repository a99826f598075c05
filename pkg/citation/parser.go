package citation

import (
	"fmt"
	"strconv"
)

// ErrorCode is the closed taxonomy of citation diagnostics.
type ErrorCode string

const (
	// CodeEmptyCitation: input is empty or whitespace-only.
	CodeEmptyCitation ErrorCode = "EMPTY_CITATION"
	// CodeUnrecognizedFormat: input matches no kind's sniff pattern.
	CodeUnrecognizedFormat ErrorCode = "UNRECOGNIZED_FORMAT"
	// CodeInvalidCaseFormat: sniffed or hinted as a case citation but the
	// shape is wrong.
	CodeInvalidCaseFormat ErrorCode = "INVALID_BGE_FORMAT"
	// CodeInvalidStatuteFormat: sniffed or hinted as a statute citation but
	// the shape is wrong.
	CodeInvalidStatuteFormat ErrorCode = "INVALID_STATUTE_FORMAT"
	// CodeInvalidSection: case citation with a section code outside the
	// seven canonical values.
	CodeInvalidSection ErrorCode = "INVALID_SECTION"
	// CodeMissingStatute: statute citation without a trailing abbreviation;
	// reported by the validator, not the parser.
	CodeMissingStatute ErrorCode = "MISSING_STATUTE"
)

// ParseError describes why an input failed to parse. Malformed input is an
// expected outcome, not an exceptional one: Parse returns it as a value and
// never panics.
type ParseError struct {
	Code    ErrorCode
	Message string
	// Position is the byte offset of the offending token in the
	// whitespace-normalized input, or -1 when no single token is to blame.
	Position int
	// Input is the original, untouched input text.
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newParseError(code ErrorCode, input string, position int, format string, args ...any) *ParseError {
	return &ParseError{
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
		Position: position,
		Input:    input,
	}
}

// Engine bundles the grammar with a statute registry. The zero-cost default
// engine behind the package-level functions uses DefaultStatutes; build an
// Engine of your own to recognize additional statutes. Engines are immutable
// and safe for concurrent use.
type Engine struct {
	statutes *StatuteTable
}

// New returns an engine over the default statute registry.
func New() *Engine {
	return &Engine{statutes: DefaultStatutes()}
}

// NewWithStatutes returns an engine over a custom statute registry.
func NewWithStatutes(statutes *StatuteTable) *Engine {
	if statutes == nil {
		statutes = DefaultStatutes()
	}
	return &Engine{statutes: statutes}
}

// Statutes returns the engine's statute registry.
func (e *Engine) Statutes() *StatuteTable {
	return e.statutes
}

var defaultEngine = New()

// Parse parses a single citation, auto-detecting its kind from the leading
// token. On failure the returned error is a *ParseError.
func Parse(text string) (Citation, error) { return defaultEngine.Parse(text) }

// ParseKind parses a single citation of the given kind. A hint that
// contradicts the content fails with that kind's format code rather than
// silently reinterpreting the input.
func ParseKind(text string, kind Kind) (Citation, error) { return defaultEngine.ParseKind(text, kind) }

// Parse parses a single citation, auto-detecting its kind.
func (e *Engine) Parse(text string) (Citation, error) {
	return e.parse(text, "")
}

// ParseKind parses a single citation of the given kind.
func (e *Engine) ParseKind(text string, kind Kind) (Citation, error) {
	switch kind {
	case KindCase, KindStatute, KindDoctrine:
		return e.parse(text, kind)
	case "":
		return e.parse(text, "")
	default:
		return nil, newParseError(CodeUnrecognizedFormat, text, -1, "unknown citation kind %q", kind)
	}
}

func (e *Engine) parse(text string, hint Kind) (Citation, error) {
	normalized := normalizeWhitespace(text)
	if normalized == "" {
		return nil, newParseError(CodeEmptyCitation, text, -1, "citation is empty")
	}

	kind := hint
	if kind == "" {
		kind = sniffKind(normalized)
		if kind == "" {
			return nil, newParseError(CodeUnrecognizedFormat, text, -1,
				"input does not look like a Swiss legal citation: %q", normalized)
		}
	}

	tokens := tokenize(normalized)
	switch kind {
	case KindCase:
		return e.parseCase(text, tokens)
	case KindStatute:
		return e.parseStatute(text, tokens)
	default:
		return e.parseDoctrine(text, normalized)
	}
}

// sniffKind detects the citation kind from the leading token; doctrine is
// the residual shape.
func sniffKind(normalized string) Kind {
	tokens := tokenize(normalized)
	first := tokens[0].text
	if _, ok := casePrefixes[upperASCII(first)]; ok {
		return KindCase
	}
	if isArticleMarker(first) {
		return KindStatute
	}
	if _, ok := matchDoctrine(normalized); ok {
		return KindDoctrine
	}
	return ""
}

func (e *Engine) parseCase(text string, tokens []token) (Citation, error) {
	match, ok := matchCase(tokens)
	if !ok {
		return nil, newParseError(CodeInvalidCaseFormat, text, -1,
			"expected PREFIX VOLUME SECTION PAGE with an optional consideration (e.g. \"BGE 145 III 229 E. 4.2\")")
	}
	section, ok := canonicalSection(match.section)
	if !ok {
		return nil, newParseError(CodeInvalidSection, text, match.sectionOffset,
			"%q is not a section of the Federal Supreme Court (expected one of I, Ia, II, III, IV, V, VI)", match.section)
	}
	volume, err := positiveInt(match.volume)
	if err != nil {
		return nil, newParseError(CodeInvalidCaseFormat, text, -1, "invalid volume %q", match.volume)
	}
	page, err := positiveInt(match.page)
	if err != nil {
		return nil, newParseError(CodeInvalidCaseFormat, text, -1, "invalid page %q", match.page)
	}
	return &CaseCitation{
		RawText:             text,
		Prefix:              match.prefix,
		Volume:              volume,
		Section:             section,
		Page:                page,
		Consideration:       match.consideration,
		ConsiderationMarker: match.marker,
		Lang:                casePrefixes[match.prefix],
	}, nil
}

func (e *Engine) parseStatute(text string, tokens []token) (Citation, error) {
	match, ok := matchStatute(tokens)
	if !ok {
		return nil, newParseError(CodeInvalidStatuteFormat, text, -1,
			"expected Art. N with optional Abs./lit./Ziff. components and a statute abbreviation (e.g. \"Art. 8 Abs. 1 lit. a ZGB\")")
	}
	article, err := positiveInt(match.article)
	if err != nil {
		return nil, newParseError(CodeInvalidStatuteFormat, text, -1, "invalid article number %q", match.article)
	}
	citation := &StatuteCitation{
		RawText: text,
		Article: article,
		Lang:    match.lang,
	}
	if match.paragraph != "" {
		if citation.Paragraph, err = positiveInt(match.paragraph); err != nil {
			return nil, newParseError(CodeInvalidStatuteFormat, text, -1, "invalid paragraph %q", match.paragraph)
		}
	}
	if match.letter != "" {
		citation.Letter = lowerASCII(match.letter)
	}
	if match.number != "" {
		if citation.Number, err = positiveInt(match.number); err != nil {
			return nil, newParseError(CodeInvalidStatuteFormat, text, -1, "invalid number %q", match.number)
		}
	}
	if match.statute != "" {
		if canonical, ok := e.statutes.Canonical(match.statute); ok {
			citation.Statute = canonical
		} else {
			citation.Statute = upperASCII(match.statute)
		}
	}
	return citation, nil
}

func (e *Engine) parseDoctrine(text, normalized string) (Citation, error) {
	match, ok := matchDoctrine(normalized)
	if !ok {
		return nil, newParseError(CodeUnrecognizedFormat, text, -1,
			"input does not look like a doctrine citation (expected \"Author, Title, Year\")")
	}
	year, err := positiveInt(match.year)
	if err != nil {
		return nil, newParseError(CodeUnrecognizedFormat, text, -1, "invalid year %q", match.year)
	}
	return &DoctrineCitation{
		RawText: text,
		Author:  match.author,
		Title:   match.title,
		Year:    year,
	}, nil
}

// positiveInt converts a digit token, rejecting zero and values that do not
// fit in an int.
func positiveInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, fmt.Errorf("value must be positive, got %d", n)
	}
	return n, nil
}
