package receipt

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/hyperifyio/goreceipts/internal/domtable"
)

// PostProcess names the transform applied to a field after raw extraction.
type PostProcess int

const (
	PostNone PostProcess = iota
	// PostDate parses the raw value with the field's Layout and, on success,
	// replaces the rendered value with an ISO-8601 timestamp. A mismatch
	// keeps the raw string; layout drift must not abort extraction.
	PostDate
	// PostCurrency keeps the amount as printed, punctuation included,
	// optionally prepending the field's currency code Prefix.
	PostCurrency
	// PostTitleCase title-cases amount-in-words style fields.
	PostTitleCase
)

// Field is a single named extraction rule. Text-origin grammars set Pattern
// (and optionally Group, defaulting to the first capture); table grammars
// set Label when the canonical field name differs from the label printed on
// the receipt; label-scan grammars set LabelPattern.
type Field struct {
	Name         string
	Pattern      *regexp.Regexp
	Group        int
	Label        string
	LabelPattern *regexp.Regexp
	Post         PostProcess
	Layout       string
	Prefix       string
}

func (f Field) group() int {
	if f.Group == 0 {
		return 1
	}
	return f.Group
}

// label returns the table label this field is looked up under.
func (f Field) label() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}

// Grammar is the immutable, source-specific set of field definitions plus
// the normalization mode the source's documents require. Grammars are built
// once at package init and shared read-only across concurrent extractions.
type Grammar struct {
	Source Source
	Kind   ContentKind

	// Collapse selects the whitespace-collapsed text representation instead
	// of the newline-preserving one. Zemen's patterns span line breaks.
	Collapse bool

	// Table shape for row-flattened HTML sources.
	Selector   string
	Cells      int
	ValueCell  int
	Duplicates domtable.DuplicatePolicy

	Fields []Field
}

// FieldNames returns the declared field-name set in grammar order.
func (g *Grammar) FieldNames() []string {
	names := make([]string, 0, len(g.Fields))
	for _, f := range g.Fields {
		names = append(names, f.Name)
	}
	return names
}

var grammars = map[Source]*Grammar{
	CBE:      cbeGrammar,
	Dashen:   dashenGrammar,
	Zemen:    zemenGrammar,
	Awash:    awashGrammar,
	BOA:      boaGrammar,
	Telebirr: telebirrGrammar,
}

func init() {
	// A grammar defect is a configuration error and must surface at load
	// time, never during extraction.
	for src, g := range grammars {
		if len(g.Fields) == 0 {
			panic(fmt.Sprintf("receipt: grammar %s declares no fields", src))
		}
		seen := make(map[string]bool, len(g.Fields))
		for _, f := range g.Fields {
			if seen[f.Name] {
				panic(fmt.Sprintf("receipt: grammar %s declares field %q twice", src, f.Name))
			}
			seen[f.Name] = true
		}
	}
}

// GrammarFor resolves the grammar registered for a source identifier.
func GrammarFor(src Source) (*Grammar, error) {
	g, ok := grammars[src]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedSource, string(src))
	}
	return g, nil
}

// Sources lists the supported source identifiers in stable order.
func Sources() []Source {
	out := make([]Source, 0, len(grammars))
	for src := range grammars {
		out = append(out, src)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
