package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"librisvc/internal/model"
	"librisvc/internal/service"
)

type MockBorrowingService struct {
	mock.Mock
}

func (m *MockBorrowingService) Create(ctx context.Context, in service.CreateBorrowingInput) (*model.Borrowing, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Borrowing), args.Error(1)
}

func (m *MockBorrowingService) Return(ctx context.Context, id string) (*model.Borrowing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Borrowing), args.Error(1)
}

func (m *MockBorrowingService) Get(ctx context.Context, id string) (*model.Borrowing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Borrowing), args.Error(1)
}

func (m *MockBorrowingService) List(ctx context.Context, f service.HistoryFilter) ([]model.Borrowing, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Borrowing), args.Error(1)
}

func (m *MockBorrowingService) ExportCSV(ctx context.Context, f service.HistoryFilter) ([]byte, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockBorrowingService) ExportFilename() string {
	args := m.Called()
	return args.String(0)
}
