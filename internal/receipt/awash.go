package receipt

// Awash Bank. Server-rendered receipt page; fields live in an info table
// whose rows are label / spacer / value triples. Labels on the page match
// the canonical field names, so no remapping is needed. Rows outside this
// interest set are dropped from the result entirely.
var awashGrammar = &Grammar{
	Source:    Awash,
	Kind:      KindHTML,
	Selector:  "table.info-table tr",
	Cells:     3,
	ValueCell: 2,
	Fields: []Field{
		{Name: "Transaction Time"},
		{Name: "Transaction Type"},
		{Name: "Amount"},
		{Name: "Charge"},
		{Name: "VAT"},
		{Name: "Sender Name"},
		{Name: "Sender Account"},
		{Name: "Beneficiary name"},
		{Name: "Beneficiary Account"},
		{Name: "Beneficiary Bank"},
		{Name: "Reason"},
		{Name: "Transaction ID"},
	},
}
