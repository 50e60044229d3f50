package pdftext

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

// fixturePDF renders one line-per-cell page for each lines slice, so tests
// exercise the extraction path against real PDF bytes.
func fixturePDF(t *testing.T, pages ...[]string) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Helvetica", "", 12)
	for _, lines := range pages {
		doc.AddPage()
		for _, line := range lines {
			doc.CellFormat(0, 6, line, "", 1, "L", false, 0, "")
		}
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("build fixture pdf: %v", err)
	}
	return buf.Bytes()
}

func TestPages_SinglePage(t *testing.T) {
	data := fixturePDF(t, []string{
		"Customer Name: Abebe Kebede",
		"Transferred Amount 1,250.00 ETB",
	})

	pages, err := Pages(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if !strings.Contains(pages[0], "Customer Name: Abebe Kebede") {
		t.Fatalf("page text missing expected line:\n%s", pages[0])
	}
	if !strings.Contains(pages[0], "Transferred Amount 1,250.00 ETB") {
		t.Fatalf("page text missing amount line:\n%s", pages[0])
	}
}

func TestPages_MultiPagePreservesOrder(t *testing.T) {
	data := fixturePDF(t,
		[]string{"first page marker"},
		[]string{"second page marker"},
		[]string{"third page marker"},
	)

	pages, err := Pages(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	for i, marker := range []string{"first", "second", "third"} {
		if !strings.Contains(pages[i], marker) {
			t.Fatalf("page %d missing %q marker:\n%s", i, marker, pages[i])
		}
	}

	joined := JoinPages(pages)
	a, b, c := strings.Index(joined, "first"), strings.Index(joined, "second"), strings.Index(joined, "third")
	if !(a >= 0 && a < b && b < c) {
		t.Fatalf("joined text out of page order: %d %d %d", a, b, c)
	}
}

func TestPages_Deterministic(t *testing.T) {
	// Page extraction runs concurrently; results must not depend on
	// completion order.
	data := fixturePDF(t,
		[]string{"page alpha"},
		[]string{"page beta"},
		[]string{"page gamma"},
	)

	first, err := Pages(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := Pages(data)
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs:\n%v\n%v", i, first, again)
		}
	}
}

func TestPages_Malformed(t *testing.T) {
	if _, err := Pages([]byte("not a pdf")); err == nil {
		t.Fatalf("expected error for malformed document")
	}
	if _, err := Pages(nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestJoinPages_ReassemblyIsOrderInvariant(t *testing.T) {
	pages := []string{"alpha\n", "beta\n", "gamma\n"}
	want := JoinPages(pages)

	perms := [][]int{
		{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0},
	}
	for _, perm := range perms {
		// Fill the index-addressed slice in this completion order; the
		// reassembled text must be identical for every permutation.
		got := make([]string, len(pages))
		for _, idx := range perm {
			got[idx] = pages[idx]
		}
		if JoinPages(got) != want {
			t.Fatalf("permutation %v changed reassembly:\n%q", perm, JoinPages(got))
		}
	}
}

func TestCollapse(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "one two", want: "one two"},
		{in: "one\ntwo", want: "one two"},
		{in: "  one \t two\r\nthree  ", want: "one two three"},
		{in: "Invoice No.:\n94497018", want: "Invoice No.: 94497018"},
	}
	for _, tc := range cases {
		if got := Collapse(tc.in); got != tc.want {
			t.Fatalf("Collapse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestJoinPages_EmptyPagesContribute(t *testing.T) {
	got := JoinPages([]string{"first\n", "", "third\n"})
	want := "first\n\n\nthird\n"
	if got != want {
		t.Fatalf("JoinPages = %q, want %q", got, want)
	}
}
