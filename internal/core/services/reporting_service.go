package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/utils/accounting"
)

type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
}

// NewReportingService creates a new reporting service
func NewReportingService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.ReportingService {
	return &reportingService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.ReportingService = (*reportingService)(nil)

// TrialBalance aggregates posted lines dated on or before asOf.
func (s *reportingService) TrialBalance(ctx context.Context, tenantID string, asOf time.Time) (*domain.TrialBalance, error) {
	asOf = domain.NormalizeDate(asOf)
	if asOf.IsZero() {
		return nil, fmt.Errorf("as-of date is required: %w", apperrors.ErrValidation)
	}

	entries, err := s.journalRepo.QueryEntries(ctx, tenantID, domain.EntryFilter{DateTo: &asOf})
	if err != nil {
		s.LogError(ctx, err, "Failed to query entries for trial balance", slog.String("tenant_id", tenantID))
		return nil, err
	}

	type totals struct{ debit, credit int64 }
	movements := make(map[string]*totals)
	var sum amountSum
	for _, e := range entries {
		for _, l := range e.Lines {
			t, ok := movements[l.AccountCode]
			if !ok {
				t = &totals{}
				movements[l.AccountCode] = t
			}
			sum.add(&t.debit, l.Debit)
			sum.add(&t.credit, l.Credit)
		}
	}
	if sum.overflow {
		return nil, s.overflowed(ctx, tenantID, "trial balance movements")
	}

	chart, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	byCode := make(map[string]domain.Account, len(chart))
	for _, a := range chart {
		byCode[a.Code] = a
	}

	tb := &domain.TrialBalance{
		TenantID: tenantID,
		AsOf:     asOf,
		Rows:     make([]domain.TrialBalanceRow, 0, len(movements)),
		Classes:  []domain.ClassSubtotal{},
	}
	for code, t := range movements {
		row := domain.TrialBalanceRow{
			AccountCode:    code,
			MovementDebit:  t.debit,
			MovementCredit: t.credit,
		}
		if a, ok := byCode[code]; ok {
			row.AccountLabel = a.Label
			row.Class = a.Class
			row.Kind = a.Kind
		} else {
			row.Class, _ = domain.ClassFromCode(code)
		}
		row.BalanceDebit, row.BalanceCredit = accounting.SplitNet(t.debit - t.credit)
		tb.Rows = append(tb.Rows, row)
	}
	sort.Slice(tb.Rows, func(i, j int) bool { return tb.Rows[i].AccountCode < tb.Rows[j].AccountCode })

	subtotals := make(map[int]*domain.ClassSubtotal)
	for _, row := range tb.Rows {
		st, ok := subtotals[row.Class]
		if !ok {
			st = &domain.ClassSubtotal{Class: row.Class, Name: domain.ClassName(row.Class)}
			subtotals[row.Class] = st
		}
		sum.add(&st.MovementDebit, row.MovementDebit)
		sum.add(&st.MovementCredit, row.MovementCredit)
		sum.add(&st.BalanceDebit, row.BalanceDebit)
		sum.add(&st.BalanceCredit, row.BalanceCredit)
		sum.add(&tb.TotalDebit, row.BalanceDebit)
		sum.add(&tb.TotalCredit, row.BalanceCredit)
	}
	if sum.overflow {
		return nil, s.overflowed(ctx, tenantID, "trial balance totals")
	}
	for _, st := range subtotals {
		tb.Classes = append(tb.Classes, *st)
	}
	sort.Slice(tb.Classes, func(i, j int) bool { return tb.Classes[i].Class < tb.Classes[j].Class })

	tb.Balanced = tb.TotalDebit == tb.TotalCredit
	if !tb.Balanced {
		s.LogError(ctx, apperrors.ErrInternal, "Trial balance does not balance",
			slog.String("tenant_id", tenantID),
			slog.String("as_of", asOf.Format(domain.DateLayout)),
			slog.Int64("total_debit", tb.TotalDebit),
			slog.Int64("total_credit", tb.TotalCredit))
	}
	return tb, nil
}

// amountSum accumulates minor-unit totals and latches once any of them leaves the int64 range.
type amountSum struct {
	overflow bool
}

func (a *amountSum) add(dst *int64, v int64) {
	if a.overflow {
		return
	}
	total, ok := domain.AddAmount(*dst, v)
	if !ok {
		a.overflow = true
		return
	}
	*dst = total
}
