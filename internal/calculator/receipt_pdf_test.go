package calculator

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReceiptPDF(t *testing.T) {
	c := Computation{
		ReceiptNumber:    "RCPT-000007",
		SignatureName:    "Ana (cashier)",
		SugarcaneEntries: []SugarcaneEntry{{Bags: 10, Price: 1.1}},
		TotalSugarcane:   11,
		GrandTotal:       11,
		CreatedAt:        time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
	}

	out, err := buildReceiptPDF(receiptLines(c))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-1.4\n")))
	assert.True(t, bytes.HasSuffix(out, []byte("%%EOF")))
	assert.Contains(t, string(out), "(Receipt) Tj")
	assert.Contains(t, string(out), "Receipt No: RCPT-000007")
	assert.Contains(t, string(out), "Date: 2026-03-04")
	assert.Contains(t, string(out), `Received by: Ana \(cashier\)`)
	assert.NotContains(t, string(out), "Molasses")
}

func TestReceiptLines_CustomTitle(t *testing.T) {
	lines := receiptLines(Computation{ReceiptTitle: "  Mill delivery ", ReceiptNumber: "RCPT-000001"})

	assert.Equal(t, "Mill delivery", lines[0])
	assert.Equal(t, "Receipt No: RCPT-000001", lines[1])
}

func TestPdfEscape(t *testing.T) {
	assert.Equal(t, `a\\b \(c\)`, pdfEscape(`a\b (c)`))
}
