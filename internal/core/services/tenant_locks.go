package services

import "sync"

// TenantLocks hands out one mutex per tenant. Posting and chart changes of a tenant
// run inside its critical section; different tenants never contend.
type TenantLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewTenantLocks creates an empty lock registry.
func NewTenantLocks() *TenantLocks {
	return &TenantLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *TenantLocks) get(tenantID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()
	m, ok := l.locks[tenantID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[tenantID] = m
	}
	return m
}

// Lock acquires the tenant's mutex and returns the matching unlock function.
func (l *TenantLocks) Lock(tenantID string) func() {
	m := l.get(tenantID)
	m.Lock()
	return m.Unlock
}
