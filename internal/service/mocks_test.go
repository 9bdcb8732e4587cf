package service

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/norsklab/norsk-api/internal/domain"
	"github.com/norsklab/norsk-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockUserStore mocks the store.UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetOrCreate(ctx context.Context, user *domain.User) (*domain.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockWordProgressStore mocks the store.WordProgressStore interface
type MockWordProgressStore struct {
	mock.Mock
}

func (m *MockWordProgressStore) RecordAttempt(ctx context.Context, attempt store.Attempt) (*domain.WordProgress, error) {
	args := m.Called(ctx, attempt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordProgress), args.Error(1)
}

func (m *MockWordProgressStore) Get(ctx context.Context, userID uuid.UUID, wordID string) (*domain.WordProgress, error) {
	args := m.Called(ctx, userID, wordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WordProgress), args.Error(1)
}

func (m *MockWordProgressStore) ListWeak(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.WordProgress, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WordProgress), args.Error(1)
}

func (m *MockWordProgressStore) WithTx(tx *sql.Tx) store.WordProgressStore {
	return m
}
