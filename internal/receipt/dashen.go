package receipt

import "regexp"

// Dashen Super App. PDF receipts repeat the "Account Holder Name" label in
// both the sender and beneficiary sections; first-match semantics resolve
// the bare pattern to the sender, and the beneficiary pattern anchors on
// its section heading instead of relying on label order.
var dashenGrammar = &Grammar{
	Source: Dashen,
	Kind:   KindPDF,
	Fields: []Field{
		{Name: "sender_name", Pattern: regexp.MustCompile(`Account Holder Name:\s*(.+?)\n`)},
		{Name: "channel", Pattern: regexp.MustCompile(`Transaction Channel:\s*(.+?)\n`)},
		{Name: "service_type", Pattern: regexp.MustCompile(`Service Type:\s*(.+?)\n`)},
		{Name: "narrative", Pattern: regexp.MustCompile(`Narrative:\s*(.+?)\n`)},
		{Name: "beneficiary_name", Pattern: regexp.MustCompile(`Beneficiary's Details\s*Account Holder Name:\s*(.+?)\n`)},
		{Name: "beneficiary_account", Pattern: regexp.MustCompile(`Account Number:\s*(\d+)`)},
		{Name: "beneficiary_bank", Pattern: regexp.MustCompile(`Institution Name:\s*(.+?)\n`)},
		{Name: "transfer_reference", Pattern: regexp.MustCompile(`Transfer Reference:\s*(.+?)\n`)},
		{Name: "transaction_reference", Pattern: regexp.MustCompile(`Transaction Ref:\s*(.+?)\n`)},
		{
			Name:    "transaction_date",
			Pattern: regexp.MustCompile(`Date:\s*(.+?)\n`),
			Post:    PostDate,
			Layout:  "Jan 2, 2006, 3:04:05 PM",
		},
		{Name: "amount", Pattern: regexp.MustCompile(`Transaction Amount\s*([\d,.]+) ETB`), Post: PostCurrency},
		{Name: "total", Pattern: regexp.MustCompile(`Total\s*([\d,.]+) ETB`), Post: PostCurrency},
		{Name: "amount_in_words", Pattern: regexp.MustCompile(`Amount in words:\s*(.+?)\n`)},
	},
}
