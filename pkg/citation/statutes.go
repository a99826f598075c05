package citation

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// StatuteGroup describes one federal statute and its abbreviations in the
// official languages. Abbreviations of one group refer to the same statute:
// {OR, CO} is the Code of Obligations in German and French/Italian.
type StatuteGroup struct {
	// ID is a stable lowercase identifier for the statute ("or", "zgb").
	ID string `yaml:"id" json:"id"`
	// Title is a short human-readable name.
	Title string `yaml:"title,omitempty" json:"title,omitempty"`
	// Names maps each language to the abbreviation in canonical casing.
	// The German name doubles as the fallback for languages without one.
	Names map[Language]string `yaml:"names" json:"names"`
}

// abbrevEntry records which group an abbreviation belongs to and its
// canonical casing.
type abbrevEntry struct {
	group   int
	display string
}

// StatuteTable is an immutable registry of statute abbreviation groups.
// Lookups are case-insensitive. Build one with NewStatuteTable, LoadStatutes,
// or Merge; never mutate a table that is in use.
type StatuteTable struct {
	groups   []StatuteGroup
	byAbbrev map[string]abbrevEntry
}

// NewStatuteTable builds a table from the given groups. Later groups win
// abbreviation collisions against earlier ones, which lets user-supplied
// groups override the defaults.
func NewStatuteTable(groups []StatuteGroup) (*StatuteTable, error) {
	table := &StatuteTable{
		groups:   make([]StatuteGroup, 0, len(groups)),
		byAbbrev: make(map[string]abbrevEntry),
	}
	for _, group := range groups {
		if group.ID == "" {
			return nil, fmt.Errorf("statute group missing id")
		}
		if len(group.Names) == 0 {
			return nil, fmt.Errorf("statute group %q has no abbreviations", group.ID)
		}
		index := len(table.groups)
		table.groups = append(table.groups, group)
		for _, name := range group.Names {
			table.byAbbrev[strings.ToLower(name)] = abbrevEntry{group: index, display: name}
		}
	}
	return table, nil
}

// Canonical returns the canonical casing for a known abbreviation
// ("schkg" -> "SchKG"). Unknown abbreviations report ok=false.
func (t *StatuteTable) Canonical(abbrev string) (string, bool) {
	entry, ok := t.byAbbrev[strings.ToLower(abbrev)]
	if !ok {
		return "", false
	}
	return entry.display, true
}

// Translate renders a statute abbreviation in the target language, using
// the equivalence group the abbreviation belongs to. Unknown abbreviations
// pass through unchanged. English has no official abbreviations and uses
// the German column.
func (t *StatuteTable) Translate(abbrev string, target Language) string {
	if abbrev == "" {
		return ""
	}
	entry, ok := t.byAbbrev[strings.ToLower(abbrev)]
	if !ok {
		return abbrev
	}
	group := t.groups[entry.group]
	if target == English {
		target = German
	}
	if name, ok := group.Names[target]; ok {
		return name
	}
	if name, ok := group.Names[German]; ok {
		return name
	}
	return entry.display
}

// Groups returns the registered statute groups sorted by ID.
func (t *StatuteTable) Groups() []StatuteGroup {
	out := make([]StatuteGroup, len(t.groups))
	copy(out, t.groups)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Merge returns a new table containing the receiver's groups plus the given
// ones; the receiver is left untouched.
func (t *StatuteTable) Merge(groups []StatuteGroup) (*StatuteTable, error) {
	merged := make([]StatuteGroup, 0, len(t.groups)+len(groups))
	merged = append(merged, t.groups...)
	merged = append(merged, groups...)
	return NewStatuteTable(merged)
}

// statuteFile is the YAML shape of a statute registry file:
//
//	statutes:
//	  - id: lugano
//	    title: Lugano Convention
//	    names: {de: LugÜ, fr: CL, it: CLug}
type statuteFile struct {
	Statutes []StatuteGroup `yaml:"statutes"`
}

// ReadStatutes parses a YAML statute registry from r.
func ReadStatutes(r io.Reader) ([]StatuteGroup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read statute registry: %w", err)
	}
	var file statuteFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse statute registry: %w", err)
	}
	return file.Statutes, nil
}

// LoadStatutes reads a YAML statute registry file and merges it over the
// default table.
func LoadStatutes(path string) (*StatuteTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open statute registry: %w", err)
	}
	defer f.Close()
	groups, err := ReadStatutes(f)
	if err != nil {
		return nil, err
	}
	return DefaultStatutes().Merge(groups)
}

// defaultStatuteGroups seeds the registry with the federal statutes that
// dominate citation practice. The de/fr/it columns are the official
// abbreviations of the same enactment.
var defaultStatuteGroups = []StatuteGroup{
	{ID: "zgb", Title: "Civil Code", Names: map[Language]string{German: "ZGB", French: "CC", Italian: "CC"}},
	{ID: "or", Title: "Code of Obligations", Names: map[Language]string{German: "OR", French: "CO", Italian: "CO"}},
	{ID: "stgb", Title: "Criminal Code", Names: map[Language]string{German: "StGB", French: "CP", Italian: "CP"}},
	{ID: "bv", Title: "Federal Constitution", Names: map[Language]string{German: "BV", French: "Cst.", Italian: "Cost."}},
	{ID: "zpo", Title: "Civil Procedure Code", Names: map[Language]string{German: "ZPO", French: "CPC", Italian: "CPC"}},
	{ID: "stpo", Title: "Criminal Procedure Code", Names: map[Language]string{German: "StPO", French: "CPP", Italian: "CPP"}},
	{ID: "schkg", Title: "Debt Enforcement and Bankruptcy Act", Names: map[Language]string{German: "SchKG", French: "LP", Italian: "LEF"}},
	{ID: "dsg", Title: "Data Protection Act", Names: map[Language]string{German: "DSG", French: "LPD", Italian: "LPD"}},
	{ID: "bgg", Title: "Federal Supreme Court Act", Names: map[Language]string{German: "BGG", French: "LTF", Italian: "LTF"}},
	{ID: "vwvg", Title: "Administrative Procedure Act", Names: map[Language]string{German: "VwVG", French: "PA", Italian: "PA"}},
	{ID: "iprg", Title: "Private International Law Act", Names: map[Language]string{German: "IPRG", French: "LDIP", Italian: "LDIP"}},
	{ID: "uwg", Title: "Unfair Competition Act", Names: map[Language]string{German: "UWG", French: "LCD", Italian: "LCSl"}},
	{ID: "kg", Title: "Cartel Act", Names: map[Language]string{German: "KG", French: "LCart", Italian: "LCart"}},
	{ID: "mschg", Title: "Trademark Protection Act", Names: map[Language]string{German: "MSchG", French: "LPM", Italian: "LPM"}},
	{ID: "urg", Title: "Copyright Act", Names: map[Language]string{German: "URG", French: "LDA", Italian: "LDA"}},
	{ID: "aig", Title: "Foreign Nationals and Integration Act", Names: map[Language]string{German: "AIG", French: "LEI", Italian: "LStrI"}},
	{ID: "mwstg", Title: "Value Added Tax Act", Names: map[Language]string{German: "MWSTG", French: "LTVA", Italian: "LIVA"}},
	{ID: "atsg", Title: "General Social Insurance Act", Names: map[Language]string{German: "ATSG", French: "LPGA", Italian: "LPGA"}},
}

// defaultStatutes is built once at init and shared read-only.
var defaultStatutes = func() *StatuteTable {
	table, err := NewStatuteTable(defaultStatuteGroups)
	if err != nil {
		panic(fmt.Sprintf("citation: invalid default statute table: %v", err))
	}
	return table
}()

// DefaultStatutes returns the built-in statute registry. The returned table
// is shared and must not be mutated.
func DefaultStatutes() *StatuteTable {
	return defaultStatutes
}
