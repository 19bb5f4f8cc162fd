package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-bff/internal/catalog/domain"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListProducts(ctx context.Context, sess *sessionDomain.Session, tab string) ([]domain.ProductCard, error) {
	args := m.Called(ctx, sess, tab)
	if res := args.Get(0); res != nil {
		return res.([]domain.ProductCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) ListRecentProducts(ctx context.Context, sess *sessionDomain.Session) ([]domain.RecentProductCard, error) {
	args := m.Called(ctx, sess)
	if res := args.Get(0); res != nil {
		return res.([]domain.RecentProductCard), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) GetProductDetail(ctx context.Context, sess *sessionDomain.Session, productID int64) (*domain.ProductDetail, error) {
	args := m.Called(ctx, sess, productID)
	if res := args.Get(0); res != nil {
		return res.(*domain.ProductDetail), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogService) ListRecommendations(ctx context.Context, sess *sessionDomain.Session, productID int64) ([]domain.ProductCard, error) {
	args := m.Called(ctx, sess, productID)
	if res := args.Get(0); res != nil {
		return res.([]domain.ProductCard), args.Error(1)
	}
	return nil, args.Error(1)
}
