package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"recon-gateway/internal/domain"
)

// DefaultSampleRows is how many data rows a preview carries unless
// configured otherwise.
const DefaultSampleRows = 5

// Preview reads the head of a statement CSV: headers, up to maxSampleRows
// data rows, and the total data row count. Malformed rows are counted but
// excluded from the sample, matching how the import treats them.
func Preview(r io.Reader, maxSampleRows int) (*domain.StatementPreview, error) {
	if maxSampleRows <= 0 {
		maxSampleRows = DefaultSampleRows
	}

	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty file")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	headers := make([]string, len(header))
	for i, col := range header {
		headers[i] = strings.TrimSpace(col)
	}

	preview := &domain.StatementPreview{
		Headers:    headers,
		SampleRows: make([][]string, 0, maxSampleRows),
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			preview.RowCount++
			continue
		}
		preview.RowCount++
		if len(preview.SampleRows) < maxSampleRows {
			preview.SampleRows = append(preview.SampleRows, record)
		}
	}

	if bank, ok := DetectBank(headers); ok {
		preview.DetectedBank = &bank
	}
	if mapping := AutoMapColumns(headers); !mapping.IsZero() {
		preview.SuggestedMapping = &mapping
	}

	return preview, nil
}

// ValidateMapping checks a column mapping before any import call is made.
// Only the description column is mandatory; every other slot may stay empty.
func ValidateMapping(m domain.ColumnMapping) error {
	if strings.TrimSpace(m.DescriptionColumn) == "" {
		return fmt.Errorf("description column is required")
	}
	return nil
}
