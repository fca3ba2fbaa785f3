package mocks

import (
	"context"

	"ker-agenda/internal/model"

	"github.com/stretchr/testify/mock"
)

type AgendaServiceMock struct {
	mock.Mock
}

func NewAgendaServiceMock() *AgendaServiceMock {
	return &AgendaServiceMock{}
}

func (m *AgendaServiceMock) Render(ctx context.Context, query model.AgendaQuery) (*model.AgendaView, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AgendaView), args.Error(1)
}

func (m *AgendaServiceMock) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *AgendaServiceMock) Calendar(ctx context.Context, query model.AgendaQuery) (string, error) {
	args := m.Called(ctx, query)
	return args.String(0), args.Error(1)
}
