package accounting_test

import (
	"math"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
)

func TestSplitNet(t *testing.T) {
	tests := []struct {
		name       string
		net        int64
		wantDebit  int64
		wantCredit int64
	}{
		{name: "positive net is a debit balance", net: 1500, wantDebit: 1500},
		{name: "negative net is a credit balance", net: -700, wantCredit: 700},
		{name: "zero net", net: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, c := accounting.SplitNet(tt.net)
			assert.Equal(t, tt.wantDebit, d)
			assert.Equal(t, tt.wantCredit, c)
		})
	}
}

func TestNormalBalance(t *testing.T) {
	assert.Equal(t, int64(300), accounting.NormalBalance(300, domain.Debit))
	assert.Equal(t, int64(-300), accounting.NormalBalance(300, domain.Credit))
	assert.Equal(t, int64(450), accounting.NormalBalance(-450, domain.Credit))
}

func TestReverseLines(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{LineNo: 1, AccountCode: "411000", Label: "client", Debit: 11900},
		{LineNo: 2, AccountCode: "706000", Label: "sale", Credit: 10000},
		{LineNo: 3, AccountCode: "445710", Label: "vat", Credit: 1900},
	}

	reversed := accounting.ReverseLines(lines)

	assert.Len(t, reversed, 3)
	assert.Equal(t, int64(11900), reversed[0].Credit)
	assert.Zero(t, reversed[0].Debit)
	assert.Equal(t, int64(10000), reversed[1].Debit)
	assert.Equal(t, "vat", reversed[2].Label)
	assert.Zero(t, reversed[2].LineNo)

	d, c, overflowAt := accounting.LineTotals(reversed)
	assert.Equal(t, d, c)
	assert.Equal(t, -1, overflowAt)
}

func TestLineTotals_ReportsOverflowingLine(t *testing.T) {
	lines := []domain.JournalEntryLine{
		{AccountCode: "607000", Debit: math.MaxInt64},
		{AccountCode: "607000", Debit: math.MaxInt64},
		{AccountCode: "607000", Debit: 3},
		{AccountCode: "512000", Credit: 1},
	}

	_, _, overflowAt := accounting.LineTotals(lines)
	assert.Equal(t, 1, overflowAt)

	_, _, overflowAt = accounting.LineTotals(lines[1:])
	assert.Equal(t, 1, overflowAt)

	d, c, overflowAt := accounting.LineTotals(lines[2:])
	assert.Equal(t, -1, overflowAt)
	assert.Equal(t, int64(3), d)
	assert.Equal(t, int64(1), c)
}
