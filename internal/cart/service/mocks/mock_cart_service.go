package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-bff/internal/cart/domain"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) View(ctx context.Context, sess *sessionDomain.Session) (*domain.CartView, error) {
	args := m.Called(ctx, sess)
	if res := args.Get(0); res != nil {
		return res.(*domain.CartView), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) Add(ctx context.Context, sess *sessionDomain.Session, productID int64) (*domain.MutationResult, error) {
	args := m.Called(ctx, sess, productID)
	if res := args.Get(0); res != nil {
		return res.(*domain.MutationResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) AddQuantity(ctx context.Context, sess *sessionDomain.Session, productID int64, quantity int) (*domain.MutationResult, error) {
	args := m.Called(ctx, sess, productID, quantity)
	if res := args.Get(0); res != nil {
		return res.(*domain.MutationResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCartService) Remove(sess *sessionDomain.Session, productID int64) *domain.MutationResult {
	args := m.Called(sess, productID)
	return args.Get(0).(*domain.MutationResult)
}

func (m *MockCartService) Delete(sess *sessionDomain.Session, productID int64) *domain.MutationResult {
	args := m.Called(sess, productID)
	return args.Get(0).(*domain.MutationResult)
}

func (m *MockCartService) Clear(sess *sessionDomain.Session) *domain.MutationResult {
	args := m.Called(sess)
	return args.Get(0).(*domain.MutationResult)
}
