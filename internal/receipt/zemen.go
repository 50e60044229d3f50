package receipt

import "regexp"

// Zemen Bank. The PDF lays fields out in a two-column table whose text
// extraction interleaves line breaks mid-field, so this grammar matches
// against the whitespace-collapsed representation. Money fields are printed
// without a currency code next to the number; the canonical output carries
// an explicit ETB prefix.
var zemenGrammar = &Grammar{
	Source:   Zemen,
	Kind:     KindPDF,
	Collapse: true,
	Fields: []Field{
		{Name: "Invoice No", Pattern: regexp.MustCompile(`Invoice No\.?:\s*([0-9]+)`)},
		{
			Name:    "Date",
			Pattern: regexp.MustCompile(`Date[:\s]+([0-9]{1,2}-[A-Za-z]{3}-[0-9]{4})`),
			Post:    PostDate,
			Layout:  "2-Jan-2006",
		},
		{Name: "Payer Name", Pattern: regexp.MustCompile(`Payer name:\s*([A-Z\s]+)`)},
		{Name: "Payer Account No", Pattern: regexp.MustCompile(`Payer account no\.?:\s*([\d\*()X]+)`)},
		{Name: "Recipient Name", Pattern: regexp.MustCompile(`Recipient name:\s*([A-Za-z\s\.]+)`)},
		{Name: "Recipient Account No", Pattern: regexp.MustCompile(`Recipient account no\.?:\s*([\d\*]+)`)},
		{Name: "Reference No", Pattern: regexp.MustCompile(`Reference No:\s*([A-Z0-9]+)`)},
		{Name: "Transaction Status", Pattern: regexp.MustCompile(`Transaction status:\s*(\w+)`)},
		{Name: "Transaction Detail", Pattern: regexp.MustCompile(`Transaction Detail\s+([A-Za-z\s\-]+)\s+ETB`)},
		{Name: "Settled Amount", Pattern: regexp.MustCompile(`ATM CASH WITHDRAWAL ETB\s*([\d,]+\.\d{2})`), Post: PostCurrency, Prefix: "ETB"},
		{Name: "Service Charge", Pattern: regexp.MustCompile(`Service Charge ETB\s*([\d,]+\.\d{2})`), Post: PostCurrency, Prefix: "ETB"},
		{Name: "VAT", Pattern: regexp.MustCompile(`VAT 15% ETB\s*([\d,]+\.\d{2})`), Post: PostCurrency, Prefix: "ETB"},
		{Name: "Total Amount Paid", Pattern: regexp.MustCompile(`Total Amount Paid ETB\s*([\d,]+\.\d{2})`), Post: PostCurrency, Prefix: "ETB"},
		{Name: "Amount in Words", Pattern: regexp.MustCompile(`Total amount in word:\s*([A-Z\s\-]+CENT\(S\))`), Post: PostTitleCase},
	},
}
