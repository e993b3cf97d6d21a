package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"officehub/internal/models"
)

// GetUser returns the user by id, or nil when absent.
func (s *Store) GetUser(ctx context.Context, id int) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}

// GetUserByUsername returns the user with the given username, or nil.
func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// CreateUser inserts a new user; the unique index rejects duplicates.
func (s *Store) CreateUser(ctx context.Context, u models.User) (models.User, error) {
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}
