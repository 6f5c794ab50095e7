// Package export renders reports as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const (
	trialBalanceSheet = "Trial balance"
	classesSheet      = "Classes"
	ledgerSheet       = "Ledger"
)

// sheetWriter appends rows to one sheet and tracks the cursor.
type sheetWriter struct {
	f        *excelize.File
	sheet    string
	row      int
	exponent int
	amount   int
	bold     int
}

func newWorkbook(firstSheet string, exponent int) (*excelize.File, *sheetWriter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", firstSheet); err != nil {
		f.Close()
		return nil, nil, err
	}
	amount, err := f.NewStyle(&excelize.Style{CustomNumFmt: numberFormat(exponent)})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return f, &sheetWriter{f: f, sheet: firstSheet, exponent: exponent, amount: amount, bold: bold}, nil
}

func numberFormat(exponent int) *string {
	format := "#,##0"
	if exponent > 0 {
		format += "." + strings.Repeat("0", exponent)
	}
	return &format
}

func (w *sheetWriter) on(sheet string) (*sheetWriter, error) {
	if _, err := w.f.NewSheet(sheet); err != nil {
		return nil, err
	}
	return &sheetWriter{f: w.f, sheet: sheet, exponent: w.exponent, amount: w.amount, bold: w.bold}, nil
}

func (w *sheetWriter) major(minor int64) float64 {
	return decimal.New(minor, -int32(w.exponent)).InexactFloat64()
}

// header writes a bold row.
func (w *sheetWriter) header(values ...any) error {
	if err := w.append(values...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(1, w.row)
	last, _ := excelize.CoordinatesToCellName(len(values), w.row)
	return w.f.SetCellStyle(w.sheet, first, last, w.bold)
}

// amounts writes a row whose columns from amountCol on are minor-unit amounts.
func (w *sheetWriter) amounts(amountCol int, values ...any) error {
	row := make([]any, len(values))
	for i, v := range values {
		if minor, ok := v.(int64); ok && i+1 >= amountCol {
			row[i] = w.major(minor)
			continue
		}
		row[i] = v
	}
	if err := w.append(row...); err != nil {
		return err
	}
	first, _ := excelize.CoordinatesToCellName(amountCol, w.row)
	last, _ := excelize.CoordinatesToCellName(len(values), w.row)
	return w.f.SetCellStyle(w.sheet, first, last, w.amount)
}

func (w *sheetWriter) append(values ...any) error {
	w.row++
	cell, err := excelize.CoordinatesToCellName(1, w.row)
	if err != nil {
		return err
	}
	return w.f.SetSheetRow(w.sheet, cell, &values)
}

func (w *sheetWriter) skip() {
	w.row++
}

// WriteTrialBalance writes the trial balance as a workbook with a row sheet and a class sheet.
func WriteTrialBalance(out io.Writer, tb *domain.TrialBalance, exponent int) error {
	f, w, err := newWorkbook(trialBalanceSheet, exponent)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	defer f.Close()

	if err := w.append("As of", tb.AsOf.Format(domain.DateLayout)); err != nil {
		return err
	}
	w.skip()
	if err := w.header("Account", "Label", "Class", "Movement debit", "Movement credit", "Balance debit", "Balance credit"); err != nil {
		return err
	}
	for _, r := range tb.Rows {
		if err := w.amounts(4, r.AccountCode, r.AccountLabel, r.Class,
			r.MovementDebit, r.MovementCredit, r.BalanceDebit, r.BalanceCredit); err != nil {
			return err
		}
	}
	if err := w.amounts(6, "Total", "", "", "", "", tb.TotalDebit, tb.TotalCredit); err != nil {
		return err
	}

	cw, err := w.on(classesSheet)
	if err != nil {
		return err
	}
	if err := cw.header("Class", "Name", "Movement debit", "Movement credit", "Balance debit", "Balance credit"); err != nil {
		return err
	}
	for _, c := range tb.Classes {
		if err := cw.amounts(3, c.Class, c.Name, c.MovementDebit, c.MovementCredit, c.BalanceDebit, c.BalanceCredit); err != nil {
			return err
		}
	}

	return f.Write(out)
}

// WriteLedger writes one account's ledger view with its opening and closing rows.
func WriteLedger(out io.Writer, v *domain.LedgerView, exponent int) error {
	f, w, err := newWorkbook(ledgerSheet, exponent)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	defer f.Close()

	if err := w.append("Account", v.Account.Code, v.Account.Label); err != nil {
		return err
	}
	if err := w.append("Period", v.From.Format(domain.DateLayout), v.To.Format(domain.DateLayout)); err != nil {
		return err
	}
	w.skip()
	if err := w.header("Date", "Entry", "Journal", "Account", "Label", "Debit", "Credit", "Running debit", "Running credit"); err != nil {
		return err
	}
	if err := w.amounts(6, "", "", "", "", "Opening balance", int64(0), int64(0), v.OpeningDebit, v.OpeningCredit); err != nil {
		return err
	}
	for _, m := range v.Movements {
		if err := w.amounts(6, m.Date.Format(domain.DateLayout), m.EntryNumber, m.JournalCode, m.AccountCode, m.Label,
			m.Debit, m.Credit, m.RunningDebit, m.RunningCredit); err != nil {
			return err
		}
	}
	if err := w.amounts(6, "", "", "", "", "Closing balance", int64(0), int64(0), v.ClosingDebit, v.ClosingCredit); err != nil {
		return err
	}

	return f.Write(out)
}
