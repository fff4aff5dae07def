package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"librisvc/internal/model"
)

type MockBorrowingRepository struct {
	mock.Mock
}

func (m *MockBorrowingRepository) Create(ctx context.Context, rec *model.Borrowing) (*model.Borrowing, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Borrowing), args.Error(1)
}

func (m *MockBorrowingRepository) FindByID(ctx context.Context, id string) (*model.Borrowing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Borrowing), args.Error(1)
}

func (m *MockBorrowingRepository) List(ctx context.Context) ([]model.Borrowing, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Borrowing), args.Error(1)
}

func (m *MockBorrowingRepository) Update(ctx context.Context, rec *model.Borrowing) (*model.Borrowing, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Borrowing), args.Error(1)
}
