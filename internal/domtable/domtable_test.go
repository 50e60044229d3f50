package domtable

import (
	"regexp"
	"testing"
)

func TestRows_ThreeCellShape(t *testing.T) {
	markup := []byte(`<html><body><table class="info-table">
		<tr><td>Transaction Time:</td><td></td><td>2024-01-01 10:00</td></tr>
		<tr><td>Amount:</td><td></td><td>500.00</td></tr>
		<tr><td>Two cells only:</td><td>skipped</td></tr>
		<tr><th>Header</th><th>row</th><th>skipped</th></tr>
	</table></body></html>`)

	rows, err := Rows(markup, "table.info-table tr", 3, 2, LastWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rows["Transaction Time"]; got != "2024-01-01 10:00" {
		t.Fatalf("Transaction Time = %q", got)
	}
	if got := rows["Amount"]; got != "500.00" {
		t.Fatalf("Amount = %q", got)
	}
	if _, ok := rows["Two cells only"]; ok {
		t.Fatalf("row with wrong cell count must be skipped")
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
}

func TestRows_SelectorScopesTables(t *testing.T) {
	markup := []byte(`<html><body>
	<table><tr><td>Outside:</td><td></td><td>nope</td></tr></table>
	<table class="info-table"><tr><td>Inside:</td><td></td><td>yes</td></tr></table>
	</body></html>`)

	rows, err := Rows(markup, "table.info-table tr", 3, 2, LastWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := rows["Outside"]; ok {
		t.Fatalf("selector must scope to the info table")
	}
	if got := rows["Inside"]; got != "yes" {
		t.Fatalf("Inside = %q", got)
	}
}

func TestRows_DuplicatePolicies(t *testing.T) {
	markup := []byte(`<html><body><table>
		<tr><td>Account Holder Name:</td><td>SENDER</td></tr>
		<tr><td>Account Holder Name:</td><td>RECEIVER</td></tr>
	</table></body></html>`)

	last, err := Rows(markup, "table tr", 2, 1, LastWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := last["Account Holder Name"]; got != "RECEIVER" {
		t.Fatalf("LastWins = %q, want RECEIVER", got)
	}

	first, err := Rows(markup, "table tr", 2, 1, FirstWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := first["Account Holder Name"]; got != "SENDER" {
		t.Fatalf("FirstWins = %q, want SENDER", got)
	}
}

func TestRows_LabelNormalization(t *testing.T) {
	markup := []byte(`<html><body><table>
		<tr><td>  VAT (15%) : </td><td> 1.50 </td></tr>
	</table></body></html>`)

	rows, err := Rows(markup, "table tr", 2, 1, LastWins)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rows["VAT (15%)"]; got != "1.50" {
		t.Fatalf("VAT (15%%) = %q", got)
	}
}

func TestLabelScanner_Find(t *testing.T) {
	markup := []byte(`<html><body><table>
		<tr><td><b>Payer Name</b></td><td>  ABEBE
		KEBEDE </td></tr>
		<tr><td>Settled Amount</td><td>100.00 Birr</td></tr>
	</table></body></html>`)

	s, err := NewLabelScanner(markup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := s.Find(regexp.MustCompile(`(?i)payer\s*name`))
	if !ok {
		t.Fatalf("expected payer name match")
	}
	if got != "ABEBE KEBEDE" {
		t.Fatalf("value = %q, want whitespace-collapsed name", got)
	}

	got, ok = s.Find(regexp.MustCompile(`(?i)settled\s*amount`))
	if !ok || got != "100.00 Birr" {
		t.Fatalf("settled amount = %q (found %v)", got, ok)
	}

	if _, ok := s.Find(regexp.MustCompile(`(?i)payment\s*mode`)); ok {
		t.Fatalf("expected no match for absent label")
	}
}

func TestLabelScanner_RepeatedLookups(t *testing.T) {
	markup := []byte(`<html><body><table>
		<tr><td>Invoice No.</td><td>CHQ0FJ403O</td></tr>
	</table></body></html>`)

	s, err := NewLabelScanner(markup)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	re := regexp.MustCompile(`(?i)invoice\s*no`)
	for i := 0; i < 3; i++ {
		got, ok := s.Find(re)
		if !ok || got != "CHQ0FJ403O" {
			t.Fatalf("lookup %d = %q (found %v)", i, got, ok)
		}
	}
}
