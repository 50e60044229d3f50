package receipt

import "github.com/hyperifyio/goreceipts/internal/domtable"

// Bank of Abyssinia. The receipt table only exists after client-side
// scripts run, so the acquirer must supply post-render markup. Rows are
// plain label/value pairs; several printed labels differ from the
// canonical field names and are remapped here. The page repeats no labels
// today, but the duplicate policy is pinned to the historical
// last-write-wins behavior to keep it explicit.
var boaGrammar = &Grammar{
	Source:     BOA,
	Kind:       KindRenderedHTML,
	Selector:   "table tr",
	Cells:      2,
	ValueCell:  1,
	Duplicates: domtable.LastWins,
	Fields: []Field{
		{Name: "Source Account"},
		{Name: "Source Account Name"},
		{Name: "Receiver's Account"},
		{Name: "Receiver's Name"},
		{Name: "Transferred Amount", Label: "Transferred amount"},
		{Name: "Service Charge"},
		{Name: "VAT", Label: "VAT (15%)"},
		{Name: "Total Amount"},
		{Name: "Transaction Type"},
		{Name: "Transaction Date"},
		{Name: "Transaction Reference"},
		{Name: "Narrative"},
	},
}
