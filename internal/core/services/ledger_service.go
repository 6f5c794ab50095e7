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

type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	journalRepo portsrepo.JournalReader
}

// NewLedgerService creates the general ledger projector.
func NewLedgerService(accountRepo portsrepo.AccountReader, journalRepo portsrepo.JournalReader) portssvc.LedgerSvc {
	return &ledgerService{
		accountRepo: accountRepo,
		journalRepo: journalRepo,
	}
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

func (s *ledgerService) Project(ctx context.Context, tenantID string, accountCode string, from time.Time, to time.Time) (*domain.LedgerView, error) {
	from, to = domain.NormalizeDate(from), domain.NormalizeDate(to)
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("from and to are required: %w", apperrors.ErrValidation)
	}
	if from.After(to) {
		return nil, fmt.Errorf("from %s after to %s: %w", from.Format(domain.DateLayout), to.Format(domain.DateLayout), apperrors.ErrValidation)
	}

	account, err := s.accountRepo.FindAccountByCode(ctx, tenantID, accountCode)
	if err != nil {
		return nil, err
	}
	chart, err := s.accountRepo.ListAccounts(ctx, tenantID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.String("tenant_id", tenantID))
		return nil, err
	}
	scope := subtreeCodes(chart, account.Code)

	entries, err := s.journalRepo.QueryEntries(ctx, tenantID, domain.EntryFilter{
		DateTo:       &to,
		AccountCodes: keys(scope),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to query entries for ledger", slog.String("account_code", accountCode))
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool { return domain.LessByDateNumber(entries[i], entries[j]) })

	view := &domain.LedgerView{
		TenantID:  tenantID,
		Account:   *account,
		From:      from,
		To:        to,
		Movements: []domain.LedgerMovement{},
	}

	var opening int64
	var sum amountSum
	for _, e := range entries {
		if !e.Date.Before(from) {
			break
		}
		for _, l := range e.Lines {
			if _, ok := scope[l.AccountCode]; ok {
				sum.add(&opening, l.Net())
			}
		}
	}
	if sum.overflow {
		return nil, s.overflowed(ctx, tenantID, "opening balance of "+accountCode)
	}
	view.OpeningDebit, view.OpeningCredit = accounting.SplitNet(opening)

	running := opening
	for _, e := range entries {
		if e.Date.Before(from) {
			continue
		}
		for i, l := range e.Lines {
			if _, ok := scope[l.AccountCode]; !ok {
				continue
			}
			sum.add(&running, l.Net())
			if sum.overflow {
				return nil, s.overflowed(ctx, tenantID, "running balance of "+accountCode)
			}
			lineNo := l.LineNo
			if lineNo == 0 {
				lineNo = i + 1
			}
			m := domain.LedgerMovement{
				Date:        e.Date,
				EntryID:     e.ID,
				EntryNumber: e.Number,
				LineNo:      lineNo,
				AccountCode: l.AccountCode,
				JournalCode: e.JournalCode,
				Label:       l.Label,
				Debit:       l.Debit,
				Credit:      l.Credit,
			}
			if m.Label == "" {
				m.Label = e.Label
			}
			m.RunningDebit, m.RunningCredit = accounting.SplitNet(running)
			view.Movements = append(view.Movements, m)
		}
	}

	view.ClosingDebit, view.ClosingCredit = accounting.SplitNet(running)
	view.NormalBalance = accounting.NormalBalance(running, account.NormalSide())

	s.LogDebug(ctx, "Ledger projected",
		slog.String("tenant_id", tenantID),
		slog.String("account_code", accountCode),
		slog.Int("movements", len(view.Movements)))
	return view, nil
}

// subtreeCodes returns root and every account below it in the parent hierarchy.
func subtreeCodes(chart []domain.Account, root string) map[string]struct{} {
	children := make(map[string][]string, len(chart))
	for _, a := range chart {
		if a.ParentCode != "" {
			children[a.ParentCode] = append(children[a.ParentCode], a.Code)
		}
	}
	scope := map[string]struct{}{root: {}}
	queue := []string{root}
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		for _, child := range children[code] {
			if _, seen := scope[child]; seen {
				continue
			}
			scope[child] = struct{}{}
			queue = append(queue, child)
		}
	}
	return scope
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
