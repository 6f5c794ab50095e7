package accounting

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
)

// SplitNet expresses a net balance (debit minus credit) as a debit or a credit column.
// A positive net lands in the debit column, a negative one in the credit column.
func SplitNet(net int64) (debit int64, credit int64) {
	if net >= 0 {
		return net, 0
	}
	return 0, -net
}

// NormalBalance signs a net balance so that a positive result sits on the account's normal side.
// DEBIT-normal accounts (asset, expense, treasury) keep the sign of debit minus credit;
// CREDIT-normal accounts (liability, revenue) flip it.
func NormalBalance(net int64, side domain.Side) int64 {
	if side == domain.Credit {
		return -net
	}
	return net
}

// LineTotals sums the debit and credit columns of a set of lines. overflowAt is the index
// of the first line that takes a total out of range, or -1 when both totals are exact.
func LineTotals(lines []domain.JournalEntryLine) (debit int64, credit int64, overflowAt int) {
	return domain.JournalEntry{Lines: lines}.CheckedTotals()
}

// ReverseLines swaps debit and credit on every line, keeping order and labels.
func ReverseLines(lines []domain.JournalEntryLine) []domain.JournalEntryLine {
	out := make([]domain.JournalEntryLine, len(lines))
	for i, l := range lines {
		out[i] = domain.JournalEntryLine{
			AccountCode: l.AccountCode,
			Label:       l.Label,
			Debit:       l.Credit,
			Credit:      l.Debit,
		}
	}
	return out
}
