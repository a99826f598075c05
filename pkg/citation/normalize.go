package citation

import (
	"fmt"
	"strings"
)

// Normalize renders a citation in its canonical same-language string form.
// It is total and deterministic: every valid citation has exactly one
// canonical form, and parsing that form yields the same citation back.
//
// Statute markers are always rendered in their canonical German spelling
// (Art./Abs./lit./Ziff.) even when the input matched French or Italian
// markers; use Format with the citation's own language as target for a
// language-faithful rendering.
func Normalize(c Citation) string {
	switch c := c.(type) {
	case *CaseCitation:
		return normalizeCase(c)
	case *StatuteCitation:
		return normalizeStatute(c)
	case *DoctrineCitation:
		// Years render zero-padded to four digits so the canonical form
		// stays within the author/title/year grammar.
		return fmt.Sprintf("%s, %s, %04d", c.Author, c.Title, c.Year)
	default:
		// The variant set is closed; reaching this is a programming error.
		panic(fmt.Sprintf("citation: unhandled citation kind %q", c.Kind()))
	}
}

func normalizeCase(c *CaseCitation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d %s %d", c.Prefix, c.Volume, c.Section, c.Page)
	if c.Consideration != "" {
		fmt.Fprintf(&b, " %s %s", considerationMarkerFor(c.ConsiderationMarker), c.Consideration)
	}
	return b.String()
}

// considerationMarkerFor picks the canonical marker spelling: "consid." for
// any matched marker whose lowercase form contains "consid", "E." for the
// rest. This exact tie-break keeps normalization a fixed point for
// mixed-case and mixed-language input.
func considerationMarkerFor(matched string) string {
	if strings.Contains(lowerASCII(matched), "consid") {
		return "consid."
	}
	return "E."
}

func normalizeStatute(c *StatuteCitation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Art. %d", c.Article)
	if c.Paragraph > 0 {
		fmt.Fprintf(&b, " Abs. %d", c.Paragraph)
	}
	if c.Letter != "" {
		fmt.Fprintf(&b, " lit. %s", c.Letter)
	}
	if c.Number > 0 {
		fmt.Fprintf(&b, " Ziff. %d", c.Number)
	}
	if c.Statute != "" {
		fmt.Fprintf(&b, " %s", c.Statute)
	}
	return b.String()
}
