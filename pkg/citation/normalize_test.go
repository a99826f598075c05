package citation

import (
	"testing"
)

func TestNormalizeCanonicalForms(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"case plain", "BGE 145 III 229", "BGE 145 III 229"},
		{"case whitespace", "BGE  145   III  229", "BGE 145 III 229"},
		{"case lowercase section", "bge 145 iii 229", "BGE 145 III 229"},
		{"case section Ia", "BGE 130 IA 55", "BGE 130 Ia 55"},
		{"case consideration E", "BGE 141 IV 380 E. 2.3", "BGE 141 IV 380 E. 2.3"},
		{"case consideration consid", "ATF 145 III 229 consid. 4.2.1", "ATF 145 III 229 consid. 4.2.1"},
		{"case marker casing collapses", "ATF 145 III 229 CONSID. 4", "ATF 145 III 229 consid. 4"},
		{"case lowercase e marker", "BGE 141 IV 380 e. 2", "BGE 141 IV 380 E. 2"},
		{"case dangling marker dropped", "BGE 145 III 229 E.", "BGE 145 III 229"},
		{"statute article only", "Art. 97 OR", "Art. 97 OR"},
		{"statute full", "Art. 8 Abs. 1 lit. a ZGB", "Art. 8 Abs. 1 lit. a ZGB"},
		{"statute uppercase letter", "Art. 8 Abs. 1 lit. A ZGB", "Art. 8 Abs. 1 lit. a ZGB"},
		{"statute french markers go german", "art. 97 al. 1 CO", "Art. 97 Abs. 1 CO"},
		{"statute italian markers go german", "art. 13 cpv. 2 lett. b n. 1 CP", "Art. 13 Abs. 2 lit. b Ziff. 1 CP"},
		{"statute without abbreviation", "Art. 97", "Art. 97"},
		{"statute canonical casing", "Art. 271 schkg", "Art. 271 SchKG"},
		{"doctrine", "Gauch, Schweizerisches Obligationenrecht, 2020", "Gauch, Schweizerisches Obligationenrecht, 2020"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := Parse(tc.input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", tc.input, err)
			}
			if got := Normalize(parsed); got != tc.want {
				t.Errorf("Normalize: got %q, want %q", got, tc.want)
			}
		})
	}
}

// Normalization is a fixed point: parsing a canonical form and normalizing
// again must reproduce it exactly, and the components must survive the trip.
func TestNormalizeIdempotence(t *testing.T) {
	inputs := []string{
		"BGE 145 III 229",
		"bge  145   iii 229",
		"BGE 130 IA 55",
		"ATF 145 III 229 consid. 4.2.1",
		"DTF 147 V 35 E. 1.2",
		"Art. 97 OR",
		"art. 97 al. 1 CO",
		"Art. 8 Abs. 1 lit. a ZGB",
		"art. 13 cpv. 2 lett. b n. 1 CP",
		"Art. 336 Abs. 1 lit. b Ziff. 2 OR",
		"Art. 29 cst.",
		"Art. 12",
		"Gauch, Schweizerisches Obligationenrecht, 2020",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse(input)
			if err != nil {
				t.Fatalf("Parse(%q) failed: %v", input, err)
			}
			canonical := Normalize(first)

			second, err := Parse(canonical)
			if err != nil {
				t.Fatalf("Parse of canonical form %q failed: %v", canonical, err)
			}
			if got := Normalize(second); got != canonical {
				t.Errorf("normalization is not a fixed point: %q -> %q", canonical, got)
			}
			if first.Kind() != second.Kind() {
				t.Errorf("kind changed across round trip: %q -> %q", first.Kind(), second.Kind())
			}
		})
	}
}

func TestNormalizeRoundTripPreservesComponents(t *testing.T) {
	first := mustParseStatute(t, "art. 336 al. 1 let. b ch. 2 CO")
	second := mustParseStatute(t, Normalize(first))

	if second.Article != first.Article || second.Paragraph != first.Paragraph ||
		second.Letter != first.Letter || second.Number != first.Number ||
		second.Statute != first.Statute {
		t.Errorf("components changed across round trip: %+v -> %+v", first, second)
	}
}
