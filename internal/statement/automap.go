package statement

import (
	"strings"

	"recon-gateway/internal/domain"
)

// slot is one semantic target of the column mapper. Contains keywords match
// as substrings; equals keywords match the whole normalized header.
type slot struct {
	contains []string
	equals   []string
}

// mapperSlots is ordered; a header is assigned to the first unassigned slot
// it matches and is never reassigned.
var mapperSlots = []struct {
	name string
	slot slot
}{
	{"date", slot{contains: []string{"date", "dt"}}},
	{"description", slot{contains: []string{"description", "narration", "particulars", "remark"}}},
	{"debit", slot{contains: []string{"debit", "withdrawal"}, equals: []string{"dr"}}},
	{"credit", slot{contains: []string{"credit", "deposit"}, equals: []string{"cr"}}},
	{"reference", slot{contains: []string{"ref", "chq", "cheque"}}},
	{"balance", slot{contains: []string{"balance"}}},
}

func (s slot) matches(header string) bool {
	for _, kw := range s.equals {
		if header == kw {
			return true
		}
	}
	for _, kw := range s.contains {
		if strings.Contains(header, kw) {
			return true
		}
	}
	return false
}

// AutoMapColumns maps CSV headers onto statement fields by keyword. Matching
// is case-insensitive and first-match-wins per slot; headers that match no
// free slot are left for the user to assign manually. The result is
// deterministic for a given header list.
func AutoMapColumns(headers []string) domain.ColumnMapping {
	assigned := make(map[string]string, len(mapperSlots))

	for _, header := range headers {
		normalized := strings.ToLower(strings.TrimSpace(header))
		if normalized == "" {
			continue
		}
		for _, entry := range mapperSlots {
			if _, taken := assigned[entry.name]; taken {
				continue
			}
			if entry.slot.matches(normalized) {
				assigned[entry.name] = header
				break
			}
		}
	}

	return domain.ColumnMapping{
		DateColumn:        assigned["date"],
		DescriptionColumn: assigned["description"],
		DebitColumn:       assigned["debit"],
		CreditColumn:      assigned["credit"],
		ReferenceColumn:   assigned["reference"],
		BalanceColumn:     assigned["balance"],
	}
}
