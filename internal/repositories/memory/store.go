// Package memory is a process-local implementation of the repository ports.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
)

type tenantData struct {
	accounts map[string]domain.Account
	config   *domain.AccountingConfig
	entries  []domain.JournalEntry
	numbers  map[int64]struct{}
}

// Store keeps every tenant's chart, configuration and journal in maps guarded by one RWMutex.
type Store struct {
	mu      sync.RWMutex
	tenants map[string]*tenantData
}

func New() *Store {
	return &Store{tenants: make(map[string]*tenantData)}
}

var (
	_ portsrepo.AccountRepositoryFacade = (*Store)(nil)
	_ portsrepo.ConfigRepositoryFacade  = (*Store)(nil)
	_ portsrepo.JournalRepositoryFacade = (*Store)(nil)
)

// Provider exposes the store through every repository port.
func (s *Store) Provider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: s,
		ConfigRepo:  s,
		JournalRepo: s,
	}
}

// tenant must be called with s.mu held for writing.
func (s *Store) tenant(tenantID string) *tenantData {
	t, ok := s.tenants[tenantID]
	if !ok {
		t = &tenantData{
			accounts: make(map[string]domain.Account),
			numbers:  make(map[int64]struct{}),
		}
		s.tenants[tenantID] = t
	}
	return t
}

// Account storage

func (s *Store) FindAccountByCode(_ context.Context, tenantID string, code string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.tenants[tenantID]; ok {
		if a, ok := t.accounts[code]; ok {
			return &a, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) ListAccounts(_ context.Context, tenantID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.Account{}
	t, ok := s.tenants[tenantID]
	if !ok {
		return out, nil
	}
	for _, a := range t.accounts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) SaveAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenant(account.TenantID)
	if _, exists := t.accounts[account.Code]; exists {
		return fmt.Errorf("account %s: %w", account.Code, apperrors.ErrDuplicate)
	}
	t.accounts[account.Code] = account
	return nil
}

func (s *Store) UpdateAccount(_ context.Context, account domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tenants[account.TenantID]
	if !ok {
		return apperrors.ErrNotFound
	}
	current, ok := t.accounts[account.Code]
	if !ok {
		return apperrors.ErrNotFound
	}
	current.Label = account.Label
	current.Active = account.Active
	current.LastUpdatedAt = account.LastUpdatedAt
	current.LastUpdatedBy = account.LastUpdatedBy
	t.accounts[account.Code] = current
	return nil
}

// Config storage

func (s *Store) GetConfig(_ context.Context, tenantID string) (*domain.AccountingConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.tenants[tenantID]; ok && t.config != nil {
		cfg := *t.config
		return &cfg, nil
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) PutConfig(_ context.Context, cfg domain.AccountingConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tenant(cfg.TenantID).config = &cfg
	return nil
}

// Journal storage

func (s *Store) FindEntryByID(_ context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	return s.findEntry(tenantID, func(e domain.JournalEntry) bool { return e.ID == entryID })
}

func (s *Store) FindEntryByOrigin(_ context.Context, tenantID string, documentType string, documentRef string) (*domain.JournalEntry, error) {
	return s.findEntry(tenantID, func(e domain.JournalEntry) bool {
		return e.OriginDocumentType == documentType && e.OriginDocumentRef == documentRef
	})
}

func (s *Store) FindReversalOf(_ context.Context, tenantID string, entryID string) (*domain.JournalEntry, error) {
	return s.findEntry(tenantID, func(e domain.JournalEntry) bool { return e.ReversesEntryID == entryID })
}

func (s *Store) findEntry(tenantID string, match func(domain.JournalEntry) bool) (*domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if t, ok := s.tenants[tenantID]; ok {
		for _, e := range t.entries {
			if match(e) {
				c := e.Clone()
				return &c, nil
			}
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) QueryEntries(_ context.Context, tenantID string, filter domain.EntryFilter) ([]domain.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.JournalEntry{}
	t, ok := s.tenants[tenantID]
	if !ok {
		return out, nil
	}
	codes := make(map[string]struct{}, len(filter.AccountCodes))
	for _, c := range filter.AccountCodes {
		codes[c] = struct{}{}
	}
	for _, e := range t.entries {
		if filter.Matches(e) && e.TouchesAny(codes) {
			out = append(out, e.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return domain.LessByDateNumber(out[i], out[j]) })
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *Store) NextEntryNumber(_ context.Context, tenantID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return 1, nil
	}
	var max int64
	for n := range t.numbers {
		if n > max {
			max = n
		}
	}
	return max + 1, nil
}

func (s *Store) IsAccountReferenced(_ context.Context, tenantID string, accountCode string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.tenants[tenantID]
	if !ok {
		return false, nil
	}
	codes := map[string]struct{}{accountCode: {}}
	for _, e := range t.entries {
		if e.TouchesAny(codes) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) AppendEntry(_ context.Context, entry domain.JournalEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tenant(entry.TenantID)
	if _, taken := t.numbers[entry.Number]; taken {
		return fmt.Errorf("entry number %d: %w", entry.Number, apperrors.ErrConflict)
	}
	t.numbers[entry.Number] = struct{}{}
	t.entries = append(t.entries, entry.Clone())
	return nil
}
