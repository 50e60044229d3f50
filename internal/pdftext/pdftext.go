// Package pdftext turns acquired PDF bytes into per-page text suitable for
// pattern matching. Page extraction tolerates pages with no extractable
// text (they contribute an empty string) and may run in parallel, but the
// returned slice is always in original page order.
package pdftext

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Pages validates the document and extracts the text of every page. Pages
// are processed concurrently; results land in an index-addressed slice, so
// ordering is independent of completion order.
func Pages(data []byte) ([]string, error) {
	if err := validate(data); err != nil {
		return nil, err
	}
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	n := r.NumPage()
	pages := make([]string, n)
	var wg sync.WaitGroup
	for i := 1; i <= n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			pages[idx-1] = pageText(r.Page(idx))
		}(i)
	}
	wg.Wait()
	return pages, nil
}

// validate runs a structural read and validation pass so malformed
// documents fail with a clear error before any text extraction starts.
func validate(data []byte) error {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return fmt.Errorf("read pdf: %w", err)
	}
	if err := api.ValidateContext(ctx); err != nil {
		return fmt.Errorf("validate pdf: %w", err)
	}
	return nil
}

// pageText renders one page as newline-terminated rows of text. Any
// page-level failure yields an empty string rather than failing the whole
// document.
func pageText(p pdf.Page) string {
	if p.V.IsNull() {
		return ""
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return ""
	}
	var b strings.Builder
	for _, row := range rows {
		for _, word := range row.Content {
			b.WriteString(word.S)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// JoinPages reassembles page texts, in page order, into the single
// newline-joined representation grammars match against.
func JoinPages(pages []string) string {
	return strings.Join(pages, "\n")
}

// Collapse reduces every whitespace run, newlines included, to a single
// space. Grammars whose patterns are not newline-sensitive match against
// this representation.
func Collapse(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	lastSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}
