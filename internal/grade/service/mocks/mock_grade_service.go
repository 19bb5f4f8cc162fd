package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-bff/internal/grade/domain"
)

type MockGradeService struct {
	mock.Mock
}

func (m *MockGradeService) GetCurrentLevel(ctx context.Context) (*domain.Progress, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*domain.Progress), args.Error(1)
	}
	return nil, args.Error(1)
}
