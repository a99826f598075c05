package citation

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Match is one citation found in running text. Offset and Length are byte
// positions in the original text (the scanner slices the original, so they
// are not subject to whitespace normalization).
type Match struct {
	Citation Citation `json:"citation"`
	Raw      string   `json:"raw"`
	Offset   int      `json:"offset"`
	Length   int      `json:"length"`
}

// Candidate spans are located with broad compiled patterns and then
// confirmed by the strict parser, so the scanner cannot accept anything the
// parser would reject.
var (
	caseScanPattern = regexp.MustCompile(
		`(?i)\b(?:BGE|ATF|DTF)\s+\d+\s+[A-Za-z]{1,4}\s+\d+(?:\s+(?:E\.|consid\.)\s+\d+(?:\.\d+)*)?`)

	// The trailing abbreviation slot stays case-sensitive so ordinary prose
	// after the citation is not swallowed.
	statuteScanPattern = regexp.MustCompile(
		`\b(?i:Art)\.\s+\d+` +
			`(?:\s+(?i:Abs|al|cpv)\.\s+\d+)?` +
			`(?:\s+(?i:lit|let|lett)\.\s+[A-Za-z]\b)?` +
			`(?:\s+(?i:Ziff|ch|n)\.\s+\d+)?` +
			`(?:\s+[A-ZÀ-Þ][A-Za-zÀ-ÿ]*\.?)?`)
)

// Scan extracts every parseable citation from running text, in order of
// appearance. Overlapping candidates keep the longer span.
func Scan(text string) []Match { return defaultEngine.Scan(text) }

// Scan extracts every parseable citation from running text.
func (e *Engine) Scan(text string) []Match {
	var matches []Match
	matches = append(matches, e.scanWith(caseScanPattern, text, KindCase)...)
	matches = append(matches, e.scanWith(statuteScanPattern, text, KindStatute)...)

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Offset != matches[j].Offset {
			return matches[i].Offset < matches[j].Offset
		}
		return matches[i].Length > matches[j].Length
	})
	return dedupeMatches(matches)
}

func (e *Engine) scanWith(pattern *regexp.Regexp, text string, kind Kind) []Match {
	var matches []Match
	for _, span := range pattern.FindAllStringIndex(text, -1) {
		start, end := span[0], span[1]
		raw := text[start:end]
		if kind == KindStatute && strings.HasSuffix(raw, ".") {
			// A trailing dot belongs to the abbreviation only when it is
			// registered that way ("Cst."); otherwise it ends the sentence.
			if _, known := e.statutes.Canonical(lastToken(raw)); !known {
				raw = strings.TrimSuffix(raw, ".")
				end--
			}
		}
		parsed, err := e.ParseKind(raw, kind)
		if err != nil && kind == KindStatute {
			// The trailing capitalized word may be ordinary prose rather
			// than a statute abbreviation; retry without it.
			if trimmed, ok := trimTrailingToken(raw); ok {
				raw = trimmed
				end = start + len(raw)
				parsed, err = e.ParseKind(raw, kind)
			}
		}
		if err != nil {
			continue
		}
		if statute, ok := parsed.(*StatuteCitation); ok && statute.Statute != "" {
			// Keep prose words out of the statute slot: accept the trailing
			// token only when it is registered or looks like an abbreviation.
			if _, known := e.statutes.Canonical(statute.Statute); !known && !looksLikeAbbrev(lastToken(raw)) {
				if trimmed, ok := trimTrailingToken(raw); ok {
					raw = trimmed
					end = start + len(raw)
					reparsed, reparseErr := e.ParseKind(raw, kind)
					if reparseErr != nil {
						continue
					}
					parsed = reparsed
				}
			}
		}
		matches = append(matches, Match{
			Citation: parsed,
			Raw:      raw,
			Offset:   start,
			Length:   end - start,
		})
	}
	return matches
}

// dedupeMatches removes overlapping matches, keeping the first of each
// overlapping pair; the sort order makes that the longer span.
func dedupeMatches(matches []Match) []Match {
	if len(matches) == 0 {
		return matches
	}
	deduped := make([]Match, 0, len(matches))
	for _, candidate := range matches {
		overlaps := false
		for _, kept := range deduped {
			if candidate.Offset < kept.Offset+kept.Length && kept.Offset < candidate.Offset+candidate.Length {
				overlaps = true
				break
			}
		}
		if !overlaps {
			deduped = append(deduped, candidate)
		}
	}
	return deduped
}

// trimTrailingToken drops the last whitespace-delimited token of s.
func trimTrailingToken(s string) (string, bool) {
	end := len(s)
	for end > 0 && !isSpaceByte(s[end-1]) {
		end--
	}
	for end > 0 && isSpaceByte(s[end-1]) {
		end--
	}
	if end == 0 {
		return "", false
	}
	return s[:end], true
}

// lastToken returns the final whitespace-delimited token of s.
func lastToken(s string) string {
	end := len(s)
	start := end
	for start > 0 && !isSpaceByte(s[start-1]) {
		start--
	}
	return s[start:end]
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// looksLikeAbbrev reports whether a token has the shape of a statute
// abbreviation rather than a prose word: at least two uppercase letters, or
// a trailing abbreviation dot.
func looksLikeAbbrev(token string) bool {
	upper := 0
	for _, r := range token {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if upper >= 2 {
		return true
	}
	return len(token) > 1 && strings.HasSuffix(token, ".")
}
