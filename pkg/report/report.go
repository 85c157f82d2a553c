// Package report renders bank summaries and account transactions as console lines.
package report

import (
	"fmt"
	"io"
	"iter"

	"github.com/amirasaad/minibank/pkg/domain/account"
	"github.com/amirasaad/minibank/pkg/domain/bank"
	"github.com/fatih/color"
)

// Defaults used when a Formatter field is empty.
const (
	DefaultCurrencySymbol = "R$"
	DefaultTimeFormat     = "2006-01-02 15:04:05"
)

// Formatter turns domain records into display lines. Amounts are rounded to two decimals.
type Formatter struct {
	CurrencySymbol string
	TimeFormat     string
}

// NewFormatter returns a Formatter, filling empty fields with defaults.
func NewFormatter(currencySymbol, timeFormat string) Formatter {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}
	return Formatter{CurrencySymbol: currencySymbol, TimeFormat: timeFormat}
}

// Summary formats s as "Account: <id>, Balance: <symbol> <amount>".
func (f Formatter) Summary(s bank.Summary) string {
	return fmt.Sprintf("Account: %d, Balance: %s %s", s.AccountID, f.CurrencySymbol, s.Balance.StringFixed(2))
}

// Transaction formats tx as "Type: <kind> | Amount: <symbol> <amount> | Date: <timestamp>".
func (f Formatter) Transaction(tx account.Transaction) string {
	return fmt.Sprintf("Type: %s | Amount: %s %s | Date: %s",
		tx.Kind, f.CurrencySymbol, tx.Amount.StringFixed(2), tx.CreatedAt.Format(f.TimeFormat))
}

// Printer writes formatted sections to an output stream.
type Printer struct {
	out       io.Writer
	formatter Formatter
	heading   *color.Color
}

// NewPrinter creates a Printer. Headings are colored when the color package allows it.
func NewPrinter(out io.Writer, formatter Formatter) *Printer {
	return &Printer{
		out:       out,
		formatter: formatter,
		heading:   color.New(color.FgCyan, color.Bold),
	}
}

// Heading writes a blank line followed by title.
func (p *Printer) Heading(title string) error {
	if _, err := fmt.Fprintln(p.out); err != nil {
		return err
	}
	_, err := p.heading.Fprintln(p.out, title)
	return err
}

// Summaries writes one line per summary and returns how many were written.
func (p *Printer) Summaries(seq iter.Seq[bank.Summary]) (int, error) {
	n := 0
	for s := range seq {
		if _, err := fmt.Fprintln(p.out, p.formatter.Summary(s)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Transactions writes one line per transaction and returns how many were written.
func (p *Printer) Transactions(seq iter.Seq[account.Transaction]) (int, error) {
	n := 0
	for tx := range seq {
		if _, err := fmt.Fprintln(p.out, p.formatter.Transaction(tx)); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
