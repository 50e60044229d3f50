// Package receipt extracts structured transaction records from Ethiopian
// bank receipt documents. Each supported bank encodes the same conceptual
// record in its own layout; a per-source grammar maps that layout onto a
// fixed set of named fields. Extraction is a pure function of the document
// content: missing fields degrade to absent values, never to errors.
package receipt

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Source identifies a supported issuing bank. It is chosen by the caller
// and used purely for grammar dispatch.
type Source string

const (
	CBE      Source = "CBE"
	Dashen   Source = "DASHEN"
	Zemen    Source = "ZEMEN"
	Awash    Source = "AWASH"
	BOA      Source = "BOA"
	Telebirr Source = "TELEBIRR"
)

// ErrUnsupportedSource is returned for identifiers no grammar is registered
// for.
var ErrUnsupportedSource = errors.New("unsupported receipt source")

// ParseSource maps a case-insensitive identifier like "cbe" onto a Source.
func ParseSource(s string) (Source, error) {
	src := Source(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := grammars[src]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedSource, s)
	}
	return src, nil
}

// ContentKind declares how a source delivers its receipts and therefore
// which normalization path a grammar runs through.
type ContentKind int

const (
	// KindPDF documents are matched as regex patterns over per-page text.
	KindPDF ContentKind = iota
	// KindHTML documents are flattened into label/value pairs from table rows,
	// or scanned for labeled cells when the grammar declares label patterns.
	KindHTML
	// KindRenderedHTML is HTML that only exists after client-side scripts run.
	// The acquirer must hand over post-render markup; the extraction path is
	// identical to KindHTML.
	KindRenderedHTML
)

// isoTimestamp matches the original system's naive ISO-8601 output, local
// receipt time with no zone designator.
const isoTimestamp = "2006-01-02T15:04:05"

// Value is the outcome of extracting one field. The parsed-versus-raw
// distinction is explicit: Raw always holds the matched text, and Time is
// only meaningful when Parsed is set. A zero Value means the field was not
// found in the document.
type Value struct {
	Raw    string
	Time   time.Time
	Found  bool
	Parsed bool
}

// String renders the value the way callers see it: the ISO timestamp when a
// date parse succeeded, otherwise the raw matched text.
func (v Value) String() string {
	if !v.Found {
		return ""
	}
	if v.Parsed {
		return v.Time.Format(isoTimestamp)
	}
	return v.Raw
}

// MarshalJSON encodes absent values as null so the output shape mirrors the
// result map invariant: every declared field is present, matched or not.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Found {
		return []byte("null"), nil
	}
	return json.Marshal(v.String())
}

// Result maps every field name declared by the source's grammar to its
// extracted value. The key set always equals the grammar's declared field
// set, regardless of how many fields matched. Results are constructed fresh
// per call and never shared.
type Result map[string]Value
