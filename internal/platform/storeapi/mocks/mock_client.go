package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
	checkoutDomain "github.com/ridloal/storefront-bff/internal/checkout/domain"
	currencyDomain "github.com/ridloal/storefront-bff/internal/currency/domain"
	gradeDomain "github.com/ridloal/storefront-bff/internal/grade/domain"
)

type MockStoreClient struct {
	mock.Mock
}

func (m *MockStoreClient) ListProducts(ctx context.Context) ([]catalogDomain.Product, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]catalogDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) GetProduct(ctx context.Context, id int64) (*catalogDomain.Product, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*catalogDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) ListRecentProducts(ctx context.Context) ([]catalogDomain.RecentProduct, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]catalogDomain.RecentProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) GetRecommendedProductIDs(ctx context.Context, id int64) ([]int64, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.([]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) GetMe(ctx context.Context) (*gradeDomain.UserInfo, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*gradeDomain.UserInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) GetGradePoints(ctx context.Context) ([]gradeDomain.Threshold, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]gradeDomain.Threshold), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) GetGradeShipping(ctx context.Context) ([]gradeDomain.ShippingRule, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.([]gradeDomain.ShippingRule), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) GetExchangeRate(ctx context.Context) (currencyDomain.ExchangeRate, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(currencyDomain.ExchangeRate), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStoreClient) Purchase(ctx context.Context, req checkoutDomain.PurchaseRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
