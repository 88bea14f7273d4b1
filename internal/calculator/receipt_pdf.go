package calculator

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const defaultReceiptTitle = "Receipt"

var amountPrinter = message.NewPrinter(language.English)

func money(v float64) string {
	return amountPrinter.Sprintf("%.2f", v)
}

func receiptLines(c Computation) []string {
	title := strings.TrimSpace(c.ReceiptTitle)
	if title == "" {
		title = defaultReceiptTitle
	}

	lines := []string{
		title,
		"Receipt No: " + c.ReceiptNumber,
		"Date: " + c.CreatedAt.Format("2006-01-02"),
		"",
	}

	if len(c.SugarcaneEntries) > 0 {
		lines = append(lines, "Sugarcane")
		for _, e := range c.SugarcaneEntries {
			lines = append(lines, fmt.Sprintf("  %s bags x %s = %s",
				amountPrinter.Sprint(e.Bags), money(e.Price), money(lineTotal(e.Price, e.Bags).Round(2).InexactFloat64())))
		}
		lines = append(lines, "Total sugarcane: "+money(c.TotalSugarcane), "")
	}

	if len(c.MolassesEntries) > 0 {
		lines = append(lines, "Molasses")
		for _, e := range c.MolassesEntries {
			lines = append(lines, fmt.Sprintf("  %s kg x %s = %s",
				amountPrinter.Sprint(e.Kilos), money(e.Price), money(lineTotal(e.Price, e.Kilos).Round(2).InexactFloat64())))
		}
		lines = append(lines, "Total molasses: "+money(c.TotalMolasses), "")
	}

	lines = append(lines, "Grand total: "+money(c.GrandTotal), "", "", "Received by: "+c.SignatureName)
	return lines
}

// buildReceiptPDF writes a single page PDF with one line of Helvetica text
// per entry in lines.
func buildReceiptPDF(lines []string) ([]byte, error) {
	if len(lines) == 0 {
		lines = []string{defaultReceiptTitle}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 12 Tf\n16 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes(), nil
}

func pdfEscape(v string) string {
	replacer := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	return replacer.Replace(v)
}
