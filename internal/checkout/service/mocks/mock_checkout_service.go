package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-bff/internal/checkout/domain"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Quote(ctx context.Context, sess *sessionDomain.Session, method domain.DeliveryMethod) (*domain.Quote, error) {
	args := m.Called(ctx, sess, method)
	if res := args.Get(0); res != nil {
		return res.(*domain.Quote), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCheckoutService) Purchase(ctx context.Context, sess *sessionDomain.Session, method domain.DeliveryMethod) (*domain.Receipt, error) {
	args := m.Called(ctx, sess, method)
	if res := args.Get(0); res != nil {
		return res.(*domain.Receipt), args.Error(1)
	}
	return nil, args.Error(1)
}
