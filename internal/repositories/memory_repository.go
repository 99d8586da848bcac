package repositories

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"travelstar/internal/models/db_models"
)

// MemoryStore keeps accounts and plans in process memory. It backs
// STORE_DRIVER=memory for local runs and the handler tests.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[string]db_models.Account
	plans    map[string][]db_models.TripPlan
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		accounts: make(map[string]db_models.Account),
		plans:    make(map[string][]db_models.TripPlan),
	}
}

func (m *MemoryStore) Create(_ context.Context, account *db_models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[account.Username]; ok {
		return ErrDuplicateKey
	}
	m.accounts[account.Username] = *account
	return nil
}

func (m *MemoryStore) FindByUsername(_ context.Context, username string) (*db_models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	account, ok := m.accounts[username]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (m *MemoryStore) Insert(_ context.Context, plan *db_models.TripPlan) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[plan.Username]; !ok {
		return ErrAccountNotFound
	}
	plan.Stamp()
	m.plans[plan.Username] = append(m.plans[plan.Username], *plan)
	return nil
}

func (m *MemoryStore) ListByUsername(_ context.Context, username string) ([]db_models.TripPlan, error) {
	m.mu.RLock()
	stored := m.plans[username]
	plans := make([]db_models.TripPlan, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		plans = append(plans, stored[i])
	}
	m.mu.RUnlock()

	sortNewestFirst(plans)
	return plans, nil
}

func (m *MemoryStore) FindByID(_ context.Context, username string, id uuid.UUID) (*db_models.TripPlan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, plan := range m.plans[username] {
		if plan.ID == id {
			p := plan
			return &p, nil
		}
	}
	return nil, nil
}

func sortNewestFirst(plans []db_models.TripPlan) {
	sort.SliceStable(plans, func(i, j int) bool {
		return plans[i].CreatedAt.After(plans[j].CreatedAt)
	})
}
