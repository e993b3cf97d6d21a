package memory

import (
	"context"
	"time"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListFinances returns all ledger entries in insertion order.
func (s *Store) ListFinances(_ context.Context) ([]models.Finance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByID(s.finances, func(f models.Finance) int { return f.ID }), nil
}

// GetFinance returns the ledger entry by id, or nil when absent.
func (s *Store) GetFinance(_ context.Context, id int) (*models.Finance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.finances[id]; ok {
		return &f, nil
	}
	return nil, nil
}

// CreateFinance assigns the id and creation timestamp and stores the record.
func (s *Store) CreateFinance(_ context.Context, f models.Finance) (models.Finance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.next("finances")
	f.CreatedAt = time.Now().UTC()
	s.finances[f.ID] = f
	return f, nil
}

// UpdateFinance merges the patch onto the stored record.
func (s *Store) UpdateFinance(_ context.Context, id int, patch schema.UpdateFinance) (*models.Finance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, ok := s.finances[id]
	if !ok {
		return nil, nil
	}
	if errs := patch.Apply(&f); errs != nil {
		return nil, errs
	}
	s.finances[id] = f
	return &f, nil
}

// DeleteFinance removes the ledger entry.
func (s *Store) DeleteFinance(_ context.Context, id int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.finances[id]; !ok {
		return false, nil
	}
	delete(s.finances, id)
	return true, nil
}
