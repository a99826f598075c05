package citation

import (
	"fmt"
	"strings"
)

// Style selects how much of a citation a formatter renders.
type Style string

const (
	// StyleFull renders every parsed component.
	StyleFull Style = "full"
	// StyleShort renders the identifying core without consideration or
	// statute sub-components.
	StyleShort Style = "short"
	// StyleInline renders the tersest in-text form.
	StyleInline Style = "inline"
)

// ParseStyle maps a style token to a Style; the empty string selects
// StyleFull.
func ParseStyle(s string) (Style, bool) {
	switch Style(lowerASCII(s)) {
	case StyleFull, "":
		return StyleFull, true
	case StyleShort:
		return StyleShort, true
	case StyleInline:
		return StyleInline, true
	}
	return "", false
}

// Format re-renders a citation string in the target language and style.
// The input is parsed first, so formatting inherits every parse failure
// mode of Parse verbatim.
func Format(text string, target Language, style Style) (string, error) {
	return defaultEngine.Format(text, target, style)
}

// Format re-renders a citation string in the target language and style.
func (e *Engine) Format(text string, target Language, style Style) (string, error) {
	switch target {
	case German, French, Italian, English:
	default:
		return "", fmt.Errorf("unsupported target language %q (expected de, fr, it, or en)", target)
	}
	switch style {
	case "":
		style = StyleFull
	case StyleFull, StyleShort, StyleInline:
	default:
		return "", fmt.Errorf("unsupported style %q (expected full, short, or inline)", style)
	}

	parsed, err := e.Parse(text)
	if err != nil {
		return "", err
	}
	return e.FormatCitation(parsed, target, style), nil
}

// FormatCitation renders an already-parsed citation. Target and style must
// be valid; Format is the checked entry point for raw text.
func (e *Engine) FormatCitation(c Citation, target Language, style Style) string {
	switch c := c.(type) {
	case *CaseCitation:
		return formatCase(c, target, style)
	case *StatuteCitation:
		return e.formatStatute(c, target, style)
	case *DoctrineCitation:
		// Doctrine citations have no language-bound components.
		return Normalize(c)
	default:
		panic(fmt.Sprintf("citation: unhandled citation kind %q", c.Kind()))
	}
}

func formatCase(c *CaseCitation, target Language, style Style) string {
	core := fmt.Sprintf("%d %s %d", c.Volume, c.Section, c.Page)
	if style == StyleInline {
		return core
	}
	short := prefixForLanguage(target) + " " + core
	if style == StyleShort || c.Consideration == "" {
		return short
	}
	return fmt.Sprintf("%s %s %s", short, wordsByLanguage[target].Consideration, c.Consideration)
}

func (e *Engine) formatStatute(c *StatuteCitation, target Language, style Style) string {
	words := wordsByLanguage[target]
	statute := e.statutes.Translate(c.Statute, target)

	var b strings.Builder
	switch style {
	case StyleInline:
		fmt.Fprintf(&b, "%d", c.Article)
	case StyleShort:
		fmt.Fprintf(&b, "%s %d", words.Article, c.Article)
	default:
		fmt.Fprintf(&b, "%s %d", words.Article, c.Article)
		if c.Paragraph > 0 {
			fmt.Fprintf(&b, " %s %d", words.Paragraph, c.Paragraph)
		}
		if c.Letter != "" {
			fmt.Fprintf(&b, " %s %s", words.Letter, c.Letter)
		}
		if c.Number > 0 {
			fmt.Fprintf(&b, " %s %d", words.Number, c.Number)
		}
	}
	if statute != "" {
		fmt.Fprintf(&b, " %s", statute)
	}
	return b.String()
}
