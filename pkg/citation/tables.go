package citation

// Grammar tables. Package-level values are built at init and treated as
// read-only; nothing in this package mutates them after construction.

// casePrefixes maps the uppercase court-report prefix to its language.
var casePrefixes = map[string]Language{
	"BGE": German,
	"ATF": French,
	"DTF": Italian,
}

// prefixForLanguage returns the case-citation prefix for a target language.
// English has no prefix of its own and maps to the German reports.
func prefixForLanguage(lang Language) string {
	switch lang {
	case French:
		return "ATF"
	case Italian:
		return "DTF"
	default:
		return "BGE"
	}
}

// sectionCodes lists the seven canonical section codes of the Federal
// Supreme Court in their canonical casing.
var sectionCodes = []string{"I", "Ia", "II", "III", "IV", "V", "VI"}

// canonicalSections maps lowercase section tokens to canonical casing.
var canonicalSections = func() map[string]string {
	m := make(map[string]string, len(sectionCodes))
	for _, code := range sectionCodes {
		m[lowerASCII(code)] = code
	}
	return m
}()

// canonicalSection canonicalizes a section token: "ia"/"IA"/"Ia" become
// "Ia", the other six codes uppercase. The second return reports membership
// in the canonical set.
func canonicalSection(token string) (string, bool) {
	code, ok := canonicalSections[lowerASCII(token)]
	return code, ok
}

// Marker families, keyed by the lowercase marker token. The value is the
// language the marker betrays; shared markers (Art./art.) carry no language
// signal and are matched separately.
var (
	paragraphMarkers = map[string]Language{
		"abs.": German,
		"al.":  French,
		"cpv.": Italian,
	}
	letterMarkers = map[string]Language{
		"lit.":  German,
		"let.":  French,
		"lett.": Italian,
	}
	numberMarkers = map[string]Language{
		"ziff.": German,
		"ch.":   French,
		"n.":    Italian,
	}
)

// considerationMarkers holds the lowercase forms introducing a
// consideration pointer in a case citation.
var considerationMarkers = map[string]bool{
	"e.":      true,
	"consid.": true,
}

// isArticleMarker reports whether the token introduces a statute citation.
func isArticleMarker(token string) bool {
	return lowerASCII(token) == "art."
}

// markerWords holds the rendering vocabulary of one output language.
type markerWords struct {
	Article       string
	Paragraph     string
	Letter        string
	Number        string
	Consideration string
}

// wordsByLanguage is the formatting vocabulary per target language. The
// German column doubles as the canonical normalization spelling.
var wordsByLanguage = map[Language]markerWords{
	German:  {Article: "Art.", Paragraph: "Abs.", Letter: "lit.", Number: "Ziff.", Consideration: "E."},
	French:  {Article: "art.", Paragraph: "al.", Letter: "let.", Number: "ch.", Consideration: "consid."},
	Italian: {Article: "art.", Paragraph: "cpv.", Letter: "lett.", Number: "n.", Consideration: "consid."},
	English: {Article: "Art.", Paragraph: "para.", Letter: "let.", Number: "no.", Consideration: "consid."},
}

// lowerASCII lowercases ASCII letters without touching other bytes. The
// grammar's keywords are all ASCII; input may not be.
func lowerASCII(s string) string {
	hasUpper := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// upperASCII uppercases ASCII letters without touching other bytes.
func upperASCII(s string) string {
	hasLower := false
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return s
	}
	b := []byte(s)
	for i := 0; i < len(b); i++ {
		if b[i] >= 'a' && b[i] <= 'z' {
			b[i] -= 'a' - 'A'
		}
	}
	return string(b)
}
