package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"bank_teller/internal/domain"
)

const SheetName = "Accounts"

var Columns = []string{
	"Type",
	"Holder",
	"Date of Birth",
	"Balance",
	"Status",
	"Fee",
	"Monthly Interest",
	"Detail",
}

// WriteAccountsXLSX writes the account register as a single-sheet workbook,
// one row per account in ledger order. Amounts are written as numbers rounded
// to cents so the sheet can be summed.
func WriteAccountsXLSX(w io.Writer, accounts []domain.Account) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4})
	if err != nil {
		return fmt.Errorf("failed to create money style: %w", err)
	}

	if err := writeRow(f, 1, toValues(Columns)); err != nil {
		return err
	}
	if err := styleRow(f, 1, 1, len(Columns), style); err != nil {
		return err
	}

	for i, account := range accounts {
		row := i + 2
		holder := account.Holder()
		values := []any{
			account.Type(),
			holder.FirstName + " " + holder.LastName,
			holder.DOB.String(),
			cents(account.Balance()),
			status(account),
			cents(account.Fee()),
			cents(account.MonthlyInterest()),
			detail(account),
		}
		if err := writeRow(f, row, values); err != nil {
			return err
		}
		if err := styleRow(f, row, 4, 7, money); err != nil {
			return err
		}
	}

	for i, name := range Columns {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to name column %d: %w", i+1, err)
		}
		width := float64(len(name) + 4)
		if width < 14 {
			width = 14
		}
		if err := f.SetColWidth(SheetName, col, col, width); err != nil {
			return fmt.Errorf("failed to size column %s: %w", col, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, row int, values []any) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", row, err)
		}
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

// styleRow applies style to columns from..to (1-based, inclusive) of row.
func styleRow(f *excelize.File, row, from, to, style int) error {
	first, err := excelize.CoordinatesToCellName(from, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	last, err := excelize.CoordinatesToCellName(to, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetCellStyle(SheetName, first, last, style); err != nil {
		return fmt.Errorf("failed to style %s:%s: %w", first, last, err)
	}
	return nil
}

func toValues(names []string) []any {
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

func cents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func status(account domain.Account) string {
	if account.IsClosed() {
		return "Closed"
	}
	return "Open"
}

func detail(account domain.Account) string {
	switch a := account.(type) {
	case *domain.CollegeChecking:
		return string(a.Campus())
	case *domain.MoneyMarket:
		return "withdrawals: " + strconv.Itoa(a.Withdrawals())
	case *domain.Savings:
		if a.IsLoyal() {
			return "Loyal"
		}
	}
	return ""
}
