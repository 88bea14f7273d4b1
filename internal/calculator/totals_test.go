package calculator_test

import (
	"testing"

	"go-farmbook/internal/calculator"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	cases := []struct {
		name      string
		sugarcane []calculator.SugarcaneEntry
		molasses  []calculator.MolassesEntry
		want      calculator.Totals
	}{
		{
			name:      "exact cents",
			sugarcane: []calculator.SugarcaneEntry{{Bags: 10, Price: 1.1}},
			want:      calculator.Totals{TotalSugarcane: 11, GrandTotal: 11},
		},
		{
			name:      "no float drift across lines",
			sugarcane: []calculator.SugarcaneEntry{{Bags: 1, Price: 0.1}, {Bags: 1, Price: 0.2}},
			want:      calculator.Totals{TotalSugarcane: 0.3, GrandTotal: 0.3},
		},
		{
			name:      "both lists",
			sugarcane: []calculator.SugarcaneEntry{{Bags: 100, Price: 50}, {Bags: 20, Price: 52.5}},
			molasses:  []calculator.MolassesEntry{{Kilos: 1500, Price: 3.2}},
			want:      calculator.Totals{TotalSugarcane: 6050, TotalMolasses: 4800, GrandTotal: 10850},
		},
		{
			name:     "rounds to cents",
			molasses: []calculator.MolassesEntry{{Kilos: 3, Price: 0.333}},
			want:     calculator.Totals{TotalMolasses: 1, GrandTotal: 1},
		},
		{
			// each list is rounded before the grand total, so the receipt's
			// printed subtotals always add up to its printed total
			name:      "grand total adds rounded subtotals",
			sugarcane: []calculator.SugarcaneEntry{{Bags: 1, Price: 0.005}},
			molasses:  []calculator.MolassesEntry{{Kilos: 1, Price: 0.005}},
			want:      calculator.Totals{TotalSugarcane: 0.01, TotalMolasses: 0.01, GrandTotal: 0.02},
		},
		{
			name: "empty",
			want: calculator.Totals{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, calculator.ComputeTotals(tc.sugarcane, tc.molasses))
		})
	}
}

func TestReceiptNumber(t *testing.T) {
	assert.Equal(t, "RCPT-000001", calculator.ReceiptNumber(1))
	assert.Equal(t, "RCPT-012345", calculator.ReceiptNumber(12345))
	assert.Equal(t, "RCPT-1234567", calculator.ReceiptNumber(1234567))
}
