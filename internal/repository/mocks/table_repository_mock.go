package mocks

import (
	"context"
	"ker-agenda/internal/model"

	"github.com/stretchr/testify/mock"
)

type TableRepositoryMock struct {
	mock.Mock
}

func NewTableRepositoryMock() *TableRepositoryMock {
	return &TableRepositoryMock{}
}

func (m *TableRepositoryMock) LoadTable(ctx context.Context) ([]model.RawRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.RawRow), args.Error(1)
}
