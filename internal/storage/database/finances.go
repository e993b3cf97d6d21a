package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"officehub/internal/models"
	"officehub/internal/schema"
)

// ListFinances returns all ledger entries ordered by id.
func (s *Store) ListFinances(ctx context.Context) ([]models.Finance, error) {
	var finances []models.Finance
	if err := s.db.WithContext(ctx).Order("id").Find(&finances).Error; err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}
	return finances, nil
}

// GetFinance returns the ledger entry by id, or nil when absent.
func (s *Store) GetFinance(ctx context.Context, id int) (*models.Finance, error) {
	var f models.Finance
	err := s.db.WithContext(ctx).First(&f, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get finance: %w", err)
	}
	return &f, nil
}

// CreateFinance inserts a new ledger entry.
func (s *Store) CreateFinance(ctx context.Context, f models.Finance) (models.Finance, error) {
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return models.Finance{}, fmt.Errorf("insert finance: %w", err)
	}
	return f, nil
}

// UpdateFinance loads, patches and saves the record.
func (s *Store) UpdateFinance(ctx context.Context, id int, patch schema.UpdateFinance) (*models.Finance, error) {
	f, err := s.GetFinance(ctx, id)
	if err != nil || f == nil {
		return nil, err
	}
	if errs := patch.Apply(f); errs != nil {
		return nil, errs
	}
	if err := s.db.WithContext(ctx).Save(f).Error; err != nil {
		return nil, fmt.Errorf("update finance: %w", err)
	}
	return f, nil
}

// DeleteFinance removes the ledger entry.
func (s *Store) DeleteFinance(ctx context.Context, id int) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.Finance{}, id)
	if res.Error != nil {
		return false, fmt.Errorf("delete finance: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}
