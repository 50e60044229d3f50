package receipt

import "regexp"

// Telebirr (Ethio Telecom). The receipt page carries no usable table
// structure; each field is found by locating the text node matching its
// label pattern and taking the next table cell in document order.
var telebirrGrammar = &Grammar{
	Source: Telebirr,
	Kind:   KindHTML,
	Fields: []Field{
		{Name: "payer_name", LabelPattern: regexp.MustCompile(`(?i)Payer\s*Name`)},
		{Name: "payer_number", LabelPattern: regexp.MustCompile(`(?i)Payer\s*telebirr`)},
		{Name: "credited_party", LabelPattern: regexp.MustCompile(`(?i)Credited\s*Party\s*name`)},
		{Name: "credited_party_number", LabelPattern: regexp.MustCompile(`(?i)Credited\s*party\s*account\s*no`)},
		{Name: "status", LabelPattern: regexp.MustCompile(`(?i)transaction\s*status`)},
		{Name: "invoice_no", LabelPattern: regexp.MustCompile(`(?i)Invoice\s*No`)},
		{Name: "payment_date", LabelPattern: regexp.MustCompile(`(?i)Payment\s*date`)},
		{Name: "settled_amount", LabelPattern: regexp.MustCompile(`(?i)Settled\s*Amount`)},
		{Name: "total_paid", LabelPattern: regexp.MustCompile(`(?i)Total\s*Paid\s*Amount`)},
		{Name: "payment_mode", LabelPattern: regexp.MustCompile(`(?i)Payment\s*Mode`)},
		{Name: "payment_reason", LabelPattern: regexp.MustCompile(`(?i)Payment\s*Reason`)},
	},
}
