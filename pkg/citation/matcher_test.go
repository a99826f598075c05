package citation

import (
	"testing"
)

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"   ", ""},
		{"BGE 145 III 229", "BGE 145 III 229"},
		{"  BGE\t145 \n III  229 ", "BGE 145 III 229"},
	}
	for _, tc := range cases {
		if got := normalizeWhitespace(tc.input); got != tc.want {
			t.Errorf("normalizeWhitespace(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestTokenizeOffsets(t *testing.T) {
	tokens := tokenize("BGE 145 III 229")
	want := []token{
		{text: "BGE", offset: 0},
		{text: "145", offset: 4},
		{text: "III", offset: 8},
		{text: "229", offset: 12},
	}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: got %+v, want %+v", i, tokens[i], want[i])
		}
	}
	if tokenize("") != nil {
		t.Error("tokenize of an empty string should return nil")
	}
}

func TestIsDottedDigits(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"4", true},
		{"4.2.1", true},
		{"", false},
		{".4", false},
		{"4.", false},
		{"4..2", false},
		{"4.a", false},
	}
	for _, tc := range cases {
		if got := isDottedDigits(tc.input); got != tc.want {
			t.Errorf("isDottedDigits(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestMatchCaseDanglingMarker(t *testing.T) {
	match, ok := matchCase(tokenize("BGE 145 III 229 E."))
	if !ok {
		t.Fatal("expected a match")
	}
	if match.marker != "" || match.consideration != "" {
		t.Errorf("dangling marker must be dropped, got marker=%q consideration=%q",
			match.marker, match.consideration)
	}
}

func TestMatchCaseRejectsSurplus(t *testing.T) {
	inputs := []string{
		"BGE 145 III 229 E. 4.2.1 extra",
		"BGE BGE 145 III 229",
		"BGE 145 III 229 nope 4",
	}
	for _, input := range inputs {
		if _, ok := matchCase(tokenize(input)); ok {
			t.Errorf("matchCase(%q) should fail", input)
		}
	}
}

func TestMatchStatutePairOrDrop(t *testing.T) {
	// A marker with no value after it is consumed and its component dropped;
	// the rest of the citation still matches.
	match, ok := matchStatute(tokenize("Art. 8 Abs. ZGB"))
	if !ok {
		t.Fatal("expected a match")
	}
	if match.paragraph != "" {
		t.Errorf("dangling Abs. must drop the paragraph, got %q", match.paragraph)
	}
	if match.statute != "ZGB" {
		t.Errorf("statute: got %q, want %q", match.statute, "ZGB")
	}
	if match.lang != German {
		t.Errorf("lang: got %q, want %q", match.lang, German)
	}
}

func TestMatchStatuteLanguageFromFirstMarker(t *testing.T) {
	cases := []struct {
		input string
		lang  Language
	}{
		{"Art. 97 Abs. 1 OR", German},
		{"art. 97 al. 1 CO", French},
		{"art. 13 cpv. 2 CP", Italian},
		{"art. 336 let. b CO", French},
		{"Art. 97 OR", German}, // no distinctive marker defaults to German
	}
	for _, tc := range cases {
		match, ok := matchStatute(tokenize(tc.input))
		if !ok {
			t.Fatalf("matchStatute(%q) failed", tc.input)
		}
		if match.lang != tc.lang {
			t.Errorf("matchStatute(%q) lang: got %q, want %q", tc.input, match.lang, tc.lang)
		}
	}
}

func TestMatchStatuteRejectsTwoLeftovers(t *testing.T) {
	inputs := []string{
		"Art. 8 lit. AB ZGB", // two-letter value leaves two leftovers
		"Art. 8 ZGB extra",
		"Art. 8 Abs. 1 ZGB OR",
	}
	for _, input := range inputs {
		if _, ok := matchStatute(tokenize(input)); ok {
			t.Errorf("matchStatute(%q) should fail", input)
		}
	}
}

func TestIsAbbrevToken(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"ZGB", true},
		{"Cst.", true},
		{"LugÜ", true},
		{"", false},
		{".", false},
		{"Z.G", false},
		{"Z1", false},
	}
	for _, tc := range cases {
		if got := isAbbrevToken(tc.input); got != tc.want {
			t.Errorf("isAbbrevToken(%q): got %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestMatchDoctrine(t *testing.T) {
	match, ok := matchDoctrine("Gauch, Schweizerisches Obligationenrecht, 2020")
	if !ok {
		t.Fatal("expected a match")
	}
	if match.author != "Gauch" || match.title != "Schweizerisches Obligationenrecht" || match.year != "2020" {
		t.Errorf("unexpected components: %+v", match)
	}

	if _, ok := matchDoctrine("Gauch, Obligationenrecht, 20"); ok {
		t.Error("a two-digit year should not match")
	}
	if _, ok := matchDoctrine("just some prose"); ok {
		t.Error("prose should not match")
	}
}
