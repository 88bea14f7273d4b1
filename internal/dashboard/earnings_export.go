package dashboard

import (
	"go-farmbook/internal/finance"

	"github.com/xuri/excelize/v2"
)

const earningsSheet = "Earnings"

var earningsHeader = []any{"Employee", "Type", "Days Worked", "Total Wage", "Unpaid Debt"}

func earningsWorkbook(rows []finance.EmployeeEarningsRow) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", earningsSheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(earningsSheet, "A1", &earningsHeader); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(earningsSheet, "A1", "E1", bold); err != nil {
		return nil, err
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{r.Name, string(r.Type), r.DaysWorked, r.TotalWage, r.UnpaidDebt}
		if err := f.SetSheetRow(earningsSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(earningsSheet, "A", "A", 28); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
