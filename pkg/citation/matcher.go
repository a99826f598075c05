package citation

import (
	"regexp"
	"strings"
)

// The matchers turn a whitespace-normalized input into raw per-slot values
// for one citation kind. They are token-sequence recognizers rather than
// capture-group regexes: each optional component is a marker+value pair
// consumed in canonical order, so new components slot in without disturbing
// the rest of the grammar. Set membership of the section code and the
// numeric range checks are the parser's job; the section slot accepts any
// alphabetic token here so the parser can tell a bad code apart from
// something that is not a case citation at all.

// token is one whitespace-delimited word of the normalized input, with its
// byte offset in the normalized string.
type token struct {
	text   string
	offset int
}

// normalizeWhitespace collapses all whitespace runs to a single space and
// trims both ends. All positions reported downstream refer to the string
// this returns.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// tokenize splits a normalized string into tokens with offsets. Because the
// input has single-space separators, offsets accumulate directly.
func tokenize(normalized string) []token {
	if normalized == "" {
		return nil
	}
	parts := strings.Split(normalized, " ")
	tokens := make([]token, len(parts))
	offset := 0
	for i, part := range parts {
		tokens[i] = token{text: part, offset: offset}
		offset += len(part) + 1
	}
	return tokens
}

// isDigits reports whether s is a non-empty ASCII digit run.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// isDottedDigits reports whether s is digit runs joined by single dots
// ("4", "4.2.1"). Leading, trailing, and doubled dots are rejected.
func isDottedDigits(s string) bool {
	for _, part := range strings.Split(s, ".") {
		if !isDigits(part) {
			return false
		}
	}
	return s != ""
}

// isAlpha reports whether s is a non-empty ASCII letter run.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// caseMatch holds the raw slot values of a case-citation match.
type caseMatch struct {
	prefix        string // uppercase canonical prefix
	volume        string
	section       string // raw section token, not yet canonicalized
	sectionOffset int
	page          string
	marker        string // consideration marker as matched, may be empty
	consideration string // empty when no consideration was cited
}

// matchCase recognizes PREFIX VOLUME SECTION PAGE [MARKER [CONSIDERATION]].
// A marker with no digits after it is consumed and dropped; any other
// surplus token fails the match.
func matchCase(tokens []token) (*caseMatch, bool) {
	if len(tokens) < 4 || len(tokens) > 6 {
		return nil, false
	}
	prefix := upperASCII(tokens[0].text)
	if _, ok := casePrefixes[prefix]; !ok {
		return nil, false
	}
	if !isDigits(tokens[1].text) || !isAlpha(tokens[2].text) || !isDigits(tokens[3].text) {
		return nil, false
	}
	match := &caseMatch{
		prefix:        prefix,
		volume:        tokens[1].text,
		section:       tokens[2].text,
		sectionOffset: tokens[2].offset,
		page:          tokens[3].text,
	}
	if len(tokens) >= 5 {
		if !considerationMarkers[lowerASCII(tokens[4].text)] {
			return nil, false
		}
		if len(tokens) == 6 {
			if !isDottedDigits(tokens[5].text) {
				return nil, false
			}
			match.marker = tokens[4].text
			match.consideration = tokens[5].text
		}
		// Marker without digits: the component is simply not present.
	}
	return match, true
}

// statuteMatch holds the raw slot values of a statute-citation match.
type statuteMatch struct {
	article       string
	paragraph     string // empty when the pair did not match
	letter        string
	number        string
	statute       string // raw abbreviation token, may be empty
	statuteOffset int
	lang          Language // from the first language-distinctive marker
}

// statuteStages describes the optional marker+value pairs of a statute
// citation in canonical order.
var statuteStages = []struct {
	markers map[string]Language
	isValue func(string) bool
	assign  func(*statuteMatch, string, Language)
}{
	{
		markers: paragraphMarkers,
		isValue: isDigits,
		assign:  func(m *statuteMatch, v string, l Language) { m.paragraph = v; m.noteLanguage(l) },
	},
	{
		markers: letterMarkers,
		isValue: func(s string) bool { return len(s) == 1 && isAlpha(s) },
		assign:  func(m *statuteMatch, v string, l Language) { m.letter = v; m.noteLanguage(l) },
	},
	{
		markers: numberMarkers,
		isValue: isDigits,
		assign:  func(m *statuteMatch, v string, l Language) { m.number = v; m.noteLanguage(l) },
	},
}

// noteLanguage records the language of the first distinctive marker.
func (m *statuteMatch) noteLanguage(lang Language) {
	if m.lang == "" {
		m.lang = lang
	}
}

// matchStatute recognizes
// Art. ARTICLE [Abs.|al.|cpv. N] [lit.|let.|lett. x] [Ziff.|ch.|n. N] [ABBR].
// Markers and values only count as a pair; a dangling marker is consumed and
// its component dropped. More than one leftover token fails the match.
func matchStatute(tokens []token) (*statuteMatch, bool) {
	if len(tokens) < 2 {
		return nil, false
	}
	if !isArticleMarker(tokens[0].text) || !isDigits(tokens[1].text) {
		return nil, false
	}
	match := &statuteMatch{article: tokens[1].text}

	i := 2
	for _, stage := range statuteStages {
		if i >= len(tokens) {
			break
		}
		lang, ok := stage.markers[lowerASCII(tokens[i].text)]
		if !ok {
			continue
		}
		if i+1 < len(tokens) && stage.isValue(tokens[i+1].text) {
			stage.assign(match, tokens[i+1].text, lang)
			i += 2
		} else {
			// Keyword without a value: drop the component, keep matching.
			i++
		}
	}

	switch len(tokens) - i {
	case 0:
	case 1:
		if !isAbbrevToken(tokens[i].text) {
			return nil, false
		}
		match.statute = tokens[i].text
		match.statuteOffset = tokens[i].offset
	default:
		return nil, false
	}
	if match.lang == "" {
		match.lang = German
	}
	return match, true
}

// isAbbrevToken reports whether a token can stand in the statute slot:
// letters (any script, to admit forms like "LugÜ"), optionally ending in a
// single dot ("Cst.").
func isAbbrevToken(s string) bool {
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isLetterRune(r) {
			return false
		}
	}
	return true
}

func isLetterRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return true
	case r >= 0xC0 && r <= 0x17F: // Latin-1 supplement and Latin extended-A
		return true
	}
	return false
}

// doctrinePattern is the residual author/title/year shape, e.g.
// "Gauch, Schweizerisches Obligationenrecht, 2020". Doctrine citations are
// not modeled beyond these three components.
var doctrinePattern = regexp.MustCompile(`^(\pL[\pL'.\- ]*?), (.+), (\d{4})$`)

// doctrineMatch holds the raw components of a doctrine match.
type doctrineMatch struct {
	author string
	title  string
	year   string
}

func matchDoctrine(normalized string) (*doctrineMatch, bool) {
	groups := doctrinePattern.FindStringSubmatch(normalized)
	if groups == nil {
		return nil, false
	}
	return &doctrineMatch{author: groups[1], title: groups[2], year: groups[3]}, true
}
