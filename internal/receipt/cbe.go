package receipt

import "regexp"

// Commercial Bank of Ethiopia. PDF receipts with one "Label: value" or
// "Label value unit" line per field; payer and receiver blocks repeat the
// bare "Account" label, so the account patterns anchor on the preceding
// party line.
var cbeGrammar = &Grammar{
	Source: CBE,
	Kind:   KindPDF,
	Fields: []Field{
		{Name: "customer_name", Pattern: regexp.MustCompile(`Customer Name:\s*(.+)`)},
		{Name: "branch", Pattern: regexp.MustCompile(`Branch:\s*(.+)`)},
		{Name: "region_city", Pattern: regexp.MustCompile(`Region:\s*(.*?)\n`)},
		{
			Name:    "payment_date",
			Pattern: regexp.MustCompile(`Payment Date & Time\s*([\d/:,\sAPMapm]+)`),
			Post:    PostDate,
			Layout:  "1/2/2006, 3:04:05 PM",
		},
		{Name: "reference_no", Pattern: regexp.MustCompile(`Reference No.*?([A-Z0-9]+)`)},
		{Name: "payer", Pattern: regexp.MustCompile(`Payer\s+([A-Z\s]+)`)},
		{Name: "payer_account", Pattern: regexp.MustCompile(`Payer\s+[A-Z\s]+\nAccount\s+([\d\*]+)`)},
		{Name: "receiver", Pattern: regexp.MustCompile(`Receiver\s+([A-Z\s]+)`)},
		{Name: "receiver_account", Pattern: regexp.MustCompile(`Receiver\s+[A-Z\s]+\nAccount\s+([\d\*]+)`)},
		{Name: "service", Pattern: regexp.MustCompile(`Reason / Type of service\s+(.+)`)},
		{Name: "transferred_amount", Pattern: regexp.MustCompile(`Transferred Amount\s+([\d,.]+) ETB`), Post: PostCurrency},
		{Name: "commission", Pattern: regexp.MustCompile(`Commission or Service Charge\s+([\d,.]+) ETB`), Post: PostCurrency},
		{Name: "vat_on_commission", Pattern: regexp.MustCompile(`15% VAT on Commission\s+([\d,.]+) ETB`), Post: PostCurrency},
		{Name: "total_debited", Pattern: regexp.MustCompile(`Total amount debited from customers account\s+([\d,.]+) ETB`), Post: PostCurrency},
		{Name: "amount_in_words", Pattern: regexp.MustCompile(`Amount in Word ETB\s+(.+)`)},
	},
}
