package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"recon-gateway/internal/domain"
)

func TestAutoMapColumns_TypicalExport(t *testing.T) {
	headers := []string{"Txn Date", "Narration", "Withdrawal Amt", "Deposit Amt", "Chq/Ref No", "Closing Balance"}

	mapping := AutoMapColumns(headers)

	assert.Equal(t, domain.ColumnMapping{
		DateColumn:        "Txn Date",
		DescriptionColumn: "Narration",
		DebitColumn:       "Withdrawal Amt",
		CreditColumn:      "Deposit Amt",
		ReferenceColumn:   "Chq/Ref No",
		BalanceColumn:     "Closing Balance",
	}, mapping)
}

func TestAutoMapColumns_Deterministic(t *testing.T) {
	headers := []string{"Value Date", "Particulars", "Dr", "Cr", "Balance"}

	first := AutoMapColumns(headers)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, AutoMapColumns(headers))
	}
}

func TestAutoMapColumns_FirstMatchWins(t *testing.T) {
	// Both headers match the debit keywords; only the first takes the slot.
	headers := []string{"Withdrawal Amt", "Debit Amt"}

	mapping := AutoMapColumns(headers)

	assert.Equal(t, "Withdrawal Amt", mapping.DebitColumn)
	assert.Empty(t, mapping.CreditColumn)
	assert.Empty(t, mapping.DateColumn)
	assert.Empty(t, mapping.DescriptionColumn)
}

func TestAutoMapColumns_CaseInsensitive(t *testing.T) {
	mapping := AutoMapColumns([]string{"TXN DATE", "narration", "DEBIT", "credit"})

	assert.Equal(t, "TXN DATE", mapping.DateColumn)
	assert.Equal(t, "narration", mapping.DescriptionColumn)
	assert.Equal(t, "DEBIT", mapping.DebitColumn)
	assert.Equal(t, "credit", mapping.CreditColumn)
}

func TestAutoMapColumns_ShortCodes(t *testing.T) {
	// "dr"/"cr" only match as whole headers, not substrings.
	mapping := AutoMapColumns([]string{"Dr", "Cr", "Crossing"})

	assert.Equal(t, "Dr", mapping.DebitColumn)
	assert.Equal(t, "Cr", mapping.CreditColumn)
}

func TestAutoMapColumns_UnmatchedSlotsStayEmpty(t *testing.T) {
	mapping := AutoMapColumns([]string{"Narration"})

	assert.Equal(t, "Narration", mapping.DescriptionColumn)
	assert.Empty(t, mapping.DateColumn)
	assert.Empty(t, mapping.DebitColumn)
	assert.Empty(t, mapping.CreditColumn)
	assert.Empty(t, mapping.ReferenceColumn)
	assert.Empty(t, mapping.BalanceColumn)
}

func TestValidateMapping(t *testing.T) {
	err := ValidateMapping(domain.ColumnMapping{
		DateColumn:  "Date",
		DebitColumn: "Debit",
	})
	assert.Error(t, err, "description column must be mandatory")

	err = ValidateMapping(domain.ColumnMapping{DescriptionColumn: "Narration"})
	assert.NoError(t, err, "description alone is enough")
}

func TestDetectBank(t *testing.T) {
	hdfc := []string{"Date", "Narration", "Chq/Ref Number", "Value Dt", "Withdrawal Amt.", "Deposit Amt.", "Closing Balance"}
	bank, ok := DetectBank(hdfc)
	assert.True(t, ok)
	assert.Equal(t, "hdfc", bank)

	sbi := []string{"Txn Date", "Value Date", "Description", "Ref No./Cheque No", "Debit", "Credit", "Balance"}
	bank, ok = DetectBank(sbi)
	assert.True(t, ok)
	assert.Equal(t, "sbi", bank)

	_, ok = DetectBank([]string{"Date", "Amount", "Memo"})
	assert.False(t, ok, "unknown layouts must fall back to manual mapping")
}
