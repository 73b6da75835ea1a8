package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shinyyama/omnicopy-backend/internal/model"
)

// MemoryStore keeps history and profiles in process memory. It backs local runs and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string][]model.ProductDescription
	profiles map[string]model.UserProfile
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records:  map[string][]model.ProductDescription{},
		profiles: map[string]model.UserProfile{},
		now:      time.Now,
	}
}

// SetClock replaces the timestamp source.
func (m *MemoryStore) SetClock(now func() time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MemoryStore) Create(_ context.Context, rec *model.ProductDescription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	rec.CreatedAt = m.now()
	cp := *rec
	cp.Content.Tags = append([]string(nil), rec.Content.Tags...)
	m.records[rec.UserID] = append(m.records[rec.UserID], cp)
	return nil
}

func (m *MemoryStore) ListRecent(_ context.Context, uid string, limit int) ([]model.ProductDescription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	src := m.records[uid]
	recs := make([]model.ProductDescription, 0, len(src))
	for i := len(src) - 1; i >= 0; i-- {
		recs = append(recs, src[i])
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	if n := clampLimit(limit); len(recs) > n {
		recs = recs[:n]
	}
	return recs, nil
}

func (m *MemoryStore) FindByID(_ context.Context, uid, id string) (*model.ProductDescription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, rec := range m.records[uid] {
		if rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) Ensure(_ context.Context, p *model.UserProfile) (*model.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.profiles[p.UID]; ok {
		return &existing, nil
	}
	created := *p
	created.CreditBalance = model.InitialCreditBalance
	created.CreatedAt = m.now()
	m.profiles[p.UID] = created
	return &created, nil
}
