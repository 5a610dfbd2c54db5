package statement

import "strings"

// bankFormat is a known statement export layout, recognized by the set of
// headers it always carries.
type bankFormat struct {
	name    string
	headers []string
}

// knownFormats holds the bank exports the backend can parse without a manual
// column mapping. Header matching ignores case, surrounding space and
// trailing dots.
var knownFormats = []bankFormat{
	{
		name:    "hdfc",
		headers: []string{"date", "narration", "chq/ref number", "value dt", "withdrawal amt", "deposit amt", "closing balance"},
	},
	{
		name:    "icici",
		headers: []string{"value date", "transaction date", "cheque number", "transaction remarks", "withdrawal amount (inr )", "deposit amount (inr )", "balance (inr )"},
	},
	{
		name:    "sbi",
		headers: []string{"txn date", "value date", "description", "ref no./cheque no", "debit", "credit", "balance"},
	},
	{
		name:    "axis",
		headers: []string{"tran date", "chq no", "particulars", "debit", "credit", "balance"},
	},
	{
		name:    "kotak",
		headers: []string{"transaction date", "value date", "description", "chq/ref no", "debit", "credit", "balance"},
	},
}

// DetectBank reports the bank whose export layout matches the CSV headers.
// A format matches when every one of its headers is present; the first match
// in registry order wins.
func DetectBank(headers []string) (string, bool) {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[normalizeHeader(h)] = true
	}

	for _, format := range knownFormats {
		if matchesFormat(format, present) {
			return format.name, true
		}
	}
	return "", false
}

func matchesFormat(format bankFormat, present map[string]bool) bool {
	for _, h := range format.headers {
		if !present[normalizeHeader(h)] {
			return false
		}
	}
	return true
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(h))
	h = strings.TrimSuffix(h, ".")
	return strings.Join(strings.Fields(h), " ")
}
