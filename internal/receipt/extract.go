package receipt

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hyperifyio/goreceipts/internal/domtable"
	"github.com/hyperifyio/goreceipts/internal/pdftext"
)

// Extract is the sole entry point: it resolves the grammar for the source,
// normalizes the acquired document per the grammar's content kind, and
// returns a result keyed by exactly the grammar's declared field names.
// Calls are stateless and safe to run concurrently; the grammar registry is
// the only shared state and it is read-only.
func Extract(src Source, doc []byte) (Result, error) {
	g, err := GrammarFor(src)
	if err != nil {
		return nil, err
	}
	switch g.Kind {
	case KindPDF:
		pages, err := pdftext.Pages(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", src, err)
		}
		return extractText(g, normalizeText(g, pages)), nil
	default:
		return extractDOM(g, doc)
	}
}

// ExtractPages runs the text pipeline over already-extracted page texts,
// for callers that obtained page content themselves. Only valid for PDF
// sources.
func ExtractPages(src Source, pages []string) (Result, error) {
	g, err := GrammarFor(src)
	if err != nil {
		return nil, err
	}
	if g.Kind != KindPDF {
		return nil, fmt.Errorf("%s: source does not use page text content", src)
	}
	return extractText(g, normalizeText(g, pages)), nil
}

func normalizeText(g *Grammar, pages []string) string {
	text := pdftext.JoinPages(pages)
	if g.Collapse {
		text = pdftext.Collapse(text)
	}
	return text
}

// extractText matches every field pattern against the full normalized text
// independently. First match wins; no match means an absent value.
func extractText(g *Grammar, text string) Result {
	res := make(Result, len(g.Fields))
	for _, f := range g.Fields {
		m := f.Pattern.FindStringSubmatch(text)
		if m == nil || f.group() >= len(m) {
			res[f.Name] = Value{}
			continue
		}
		res[f.Name] = postProcess(f, strings.TrimSpace(m[f.group()]))
	}
	return res
}

func extractDOM(g *Grammar, markup []byte) (Result, error) {
	res := make(Result, len(g.Fields))
	if g.Selector != "" {
		rows, err := domtable.Rows(markup, g.Selector, g.Cells, g.ValueCell, g.Duplicates)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", g.Source, err)
		}
		// Labels outside the declared field set are dropped here by simply
		// never being looked up; declared labels missing from the page keep
		// their key with an absent value.
		for _, f := range g.Fields {
			raw, ok := rows[f.label()]
			if !ok {
				res[f.Name] = Value{}
				continue
			}
			res[f.Name] = postProcess(f, raw)
		}
		return res, nil
	}

	scanner, err := domtable.NewLabelScanner(markup)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", g.Source, err)
	}
	for _, f := range g.Fields {
		raw, ok := scanner.Find(f.LabelPattern)
		if !ok {
			res[f.Name] = Value{}
			continue
		}
		res[f.Name] = postProcess(f, raw)
	}
	return res, nil
}

// postProcess applies the field's declared transform to a matched raw
// string. Date parsing is deliberately lenient: a layout mismatch keeps the
// raw string and moves on, it never aborts the extraction.
func postProcess(f Field, raw string) Value {
	v := Value{Raw: raw, Found: true}
	switch f.Post {
	case PostDate:
		if t, err := time.Parse(f.Layout, raw); err == nil {
			v.Time = t
			v.Parsed = true
		}
	case PostCurrency:
		if f.Prefix != "" {
			v.Raw = f.Prefix + " " + raw
		}
	case PostTitleCase:
		// cases.Caser is stateful, so build one per call rather than share.
		v.Raw = cases.Title(language.English).String(raw)
	}
	return v
}
