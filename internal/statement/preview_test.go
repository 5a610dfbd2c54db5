package statement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreview(t *testing.T) {
	csv := strings.Join([]string{
		"Txn Date,Narration,Withdrawal Amt,Deposit Amt,Chq/Ref No,Closing Balance",
		"01/04/2025,UPI/NEFT TRANSFER,1500.00,,CHQ001,48500.00",
		"02/04/2025,SALARY CREDIT,,75000.00,,123500.00",
		"03/04/2025,ATM WITHDRAWAL,2000.00,,,121500.00",
	}, "\n")

	preview, err := Preview(strings.NewReader(csv), 2)
	require.NoError(t, err)

	assert.Equal(t, []string{"Txn Date", "Narration", "Withdrawal Amt", "Deposit Amt", "Chq/Ref No", "Closing Balance"}, preview.Headers)
	assert.Equal(t, 3, preview.RowCount, "row count covers all data rows, not just the sample")
	assert.Len(t, preview.SampleRows, 2, "sample is capped")
	assert.Equal(t, "UPI/NEFT TRANSFER", preview.SampleRows[0][1])

	require.NotNil(t, preview.SuggestedMapping)
	assert.Equal(t, "Narration", preview.SuggestedMapping.DescriptionColumn)
	assert.Equal(t, "Txn Date", preview.SuggestedMapping.DateColumn)
}

func TestPreview_DetectsKnownBank(t *testing.T) {
	csv := strings.Join([]string{
		"Date,Narration,Chq/Ref Number,Value Dt,Withdrawal Amt.,Deposit Amt.,Closing Balance",
		"01/04/2025,POS PURCHASE,REF1,01/04/2025,250.00,,9750.00",
	}, "\n")

	preview, err := Preview(strings.NewReader(csv), 0)
	require.NoError(t, err)

	require.NotNil(t, preview.DetectedBank)
	assert.Equal(t, "hdfc", *preview.DetectedBank)
}

func TestPreview_EmptyFile(t *testing.T) {
	_, err := Preview(strings.NewReader(""), 5)
	assert.Error(t, err)
}

func TestPreview_HeaderOnly(t *testing.T) {
	preview, err := Preview(strings.NewReader("Date,Narration,Amount\n"), 5)
	require.NoError(t, err)

	assert.Equal(t, 0, preview.RowCount)
	assert.Empty(t, preview.SampleRows)
}

func TestPreview_RaggedRowsAreCountedNotSampled(t *testing.T) {
	// FieldsPerRecord is relaxed, so short rows still parse; only rows the
	// CSV reader rejects outright are excluded from the sample.
	csv := "Date,Narration,Amount\n01/04/2025,OK,10\n02/04/2025,\"BAD,20\n"

	preview, err := Preview(strings.NewReader(csv), 5)
	require.NoError(t, err)
	assert.Equal(t, 2, preview.RowCount)
}
