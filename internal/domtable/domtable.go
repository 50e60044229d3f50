// Package domtable flattens receipt HTML into the label/value shapes the
// extraction grammars consume: tabular rows selected by CSS selector, and a
// label-scan lookup for pages without usable table structure.
package domtable

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// DuplicatePolicy decides which value survives when the same label appears
// on more than one row. The historical behavior is LastWins; FirstWins is
// available because the duplicate-label case is ambiguous on some receipts
// and callers should be able to pick deliberately.
type DuplicatePolicy int

const (
	LastWins DuplicatePolicy = iota
	FirstWins
)

// RowMap holds flattened label-to-value rows.
type RowMap map[string]string

// Rows selects every row matching selector and keeps those with exactly
// cells <td> children, mapping the first cell's label (trailing colon
// stripped, trimmed) to the trimmed text of the valueCell-th cell.
func Rows(markup []byte, selector string, cells, valueCell int, policy DuplicatePolicy) (RowMap, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	rows := make(RowMap)
	doc.Find(selector).Each(func(_ int, tr *goquery.Selection) {
		tds := tr.Find("td")
		if tds.Length() != cells {
			return
		}
		label := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(tds.Eq(0).Text()), ":"))
		if label == "" {
			return
		}
		if policy == FirstWins {
			if _, ok := rows[label]; ok {
				return
			}
		}
		rows[label] = strings.TrimSpace(tds.Eq(valueCell).Text())
	})
	return rows, nil
}

// LabelScanner looks fields up by label pattern on pages where the layout
// is not a clean table: the value is the text of the first <td> following
// the matching text node in document order.
type LabelScanner struct {
	root *html.Node
}

func NewLabelScanner(markup []byte) (*LabelScanner, error) {
	root, err := html.Parse(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &LabelScanner{root: root}, nil
}

// Find returns the trimmed text of the first <td> after the first text node
// matching label, and whether such a pair exists.
func (s *LabelScanner) Find(label *regexp.Regexp) (string, bool) {
	matched := false
	found := false
	var value string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if matched && n.Type == html.ElementNode && strings.EqualFold(n.Data, "td") {
			value = nodeText(n)
			found = true
			return
		}
		if !matched && n.Type == html.TextNode && label.MatchString(n.Data) {
			matched = true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
			if found {
				return
			}
		}
	}
	walk(s.root)
	return value, found
}

// nodeText collects the text content of a node's subtree with whitespace
// runs collapsed to single spaces.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(strings.Fields(b.String()), " ")
}
