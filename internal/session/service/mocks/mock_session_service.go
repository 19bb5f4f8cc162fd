package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-bff/internal/session/domain"
)

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	args := m.Called(ctx, token)
	if res := args.Get(0); res != nil {
		return res.(*domain.Session), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSessionService) Token(s *domain.Session) (string, error) {
	args := m.Called(s)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) ReapIdleSessions(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockSessionService) Stop() {
	m.Called()
}
