// Package citation parses, validates, normalizes, and re-renders Swiss legal
// citations: Federal Supreme Court decisions (BGE/ATF/DTF) and statutory
// provisions (Art./Abs./lit./Ziff. with a statute abbreviation), across
// German, French, and Italian.
//
// All operations are pure functions over immutable inputs; the grammar and
// translation tables are built once and never mutated, so every exported
// function is safe for concurrent use.
package citation

// Kind classifies the kind of Swiss legal citation.
type Kind string

const (
	KindCase     Kind = "case"
	KindStatute  Kind = "statute"
	KindDoctrine Kind = "doctrine"
)

// Language identifies one of the official citation languages.
// English is accepted only as a formatting target.
type Language string

const (
	German  Language = "de"
	French  Language = "fr"
	Italian Language = "it"
	English Language = "en"
)

// ParseLanguage maps a language token like "de", "FR", or "it-CH" to a
// Language. Region subtags are ignored.
func ParseLanguage(s string) (Language, bool) {
	tag := lowerASCII(s)
	for i := 0; i < len(tag); i++ {
		if tag[i] == '-' || tag[i] == '_' {
			tag = tag[:i]
			break
		}
	}
	switch Language(tag) {
	case German, French, Italian, English:
		return Language(tag), true
	}
	return "", false
}

// Citation is the closed set of parsed citation variants. Exactly one
// concrete type is behind any Citation value: *CaseCitation,
// *StatuteCitation, or *DoctrineCitation. Consumers type-switch over the
// three variants; an unknown variant is a programming error.
type Citation interface {
	// Kind reports which variant this citation is.
	Kind() Kind
	// Language reports the citation language inferred during parsing.
	Language() Language
	// Raw returns the original input text, untouched.
	Raw() string

	sealed()
}

// CaseCitation is a published decision of the Swiss Federal Supreme Court,
// e.g. "BGE 145 III 229 E. 4.2.1". The prefix determines the language
// (BGE German, ATF French, DTF Italian).
type CaseCitation struct {
	RawText string `json:"raw_text"`

	Prefix  string `json:"prefix"`
	Volume  int    `json:"volume"`
	Section string `json:"section"`
	Page    int    `json:"page"`

	// Consideration points at a reasoning paragraph ("4.2.1"); empty when
	// the citation has none. ConsiderationMarker preserves the marker token
	// as matched, for round-trip-stable normalization.
	Consideration       string `json:"consideration,omitempty"`
	ConsiderationMarker string `json:"consideration_marker,omitempty"`

	Lang Language `json:"language"`
}

func (c *CaseCitation) Kind() Kind         { return KindCase }
func (c *CaseCitation) Language() Language { return c.Lang }
func (c *CaseCitation) Raw() string        { return c.RawText }
func (c *CaseCitation) sealed()            {}

// StatuteCitation is a reference to a statutory provision, e.g.
// "Art. 8 Abs. 1 lit. a ZGB". Paragraph, Letter, and Number are present only
// when their introducer keyword matched together with a value.
type StatuteCitation struct {
	RawText string `json:"raw_text"`

	Article   int    `json:"article"`
	Paragraph int    `json:"paragraph,omitempty"`
	Letter    string `json:"letter,omitempty"`
	Number    int    `json:"number,omitempty"`

	// Statute is the abbreviation in its canonical casing ("ZGB", "Cst."),
	// or empty when the citation carried none.
	Statute string `json:"statute,omitempty"`

	Lang Language `json:"language"`
}

func (c *StatuteCitation) Kind() Kind         { return KindStatute }
func (c *StatuteCitation) Language() Language { return c.Lang }
func (c *StatuteCitation) Raw() string        { return c.RawText }
func (c *StatuteCitation) sealed()            {}

// DoctrineCitation is a residual author/title/year match for scholarly
// writing. It is carried for completeness and not modeled further.
type DoctrineCitation struct {
	RawText string `json:"raw_text"`

	Author string `json:"author"`
	Title  string `json:"title"`
	Year   int    `json:"year"`

	Lang Language `json:"language,omitempty"`
}

func (c *DoctrineCitation) Kind() Kind         { return KindDoctrine }
func (c *DoctrineCitation) Language() Language { return c.Lang }
func (c *DoctrineCitation) Raw() string        { return c.RawText }
func (c *DoctrineCitation) sealed()            {}
