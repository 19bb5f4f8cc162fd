package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

type CatalogService interface {
	ListProducts(ctx context.Context, sess *sessionDomain.Session, tab string) ([]domain.ProductCard, error)
	ListRecentProducts(ctx context.Context, sess *sessionDomain.Session) ([]domain.RecentProductCard, error)
	GetProductDetail(ctx context.Context, sess *sessionDomain.Session, productID int64) (*domain.ProductDetail, error)
	ListRecommendations(ctx context.Context, sess *sessionDomain.Session, productID int64) ([]domain.ProductCard, error)
}

type catalogServiceImpl struct {
	storeClient storeapi.Client
}

func NewCatalogService(sc storeapi.Client) CatalogService {
	return &catalogServiceImpl{storeClient: sc}
}

func (s *catalogServiceImpl) ListProducts(ctx context.Context, sess *sessionDomain.Session, tab string) ([]domain.ProductCard, error) {
	tab, err := domain.ParseTab(tab)
	if err != nil {
		return nil, err
	}

	products, err := s.storeClient.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return s.cards(sess, domain.FilterByCategory(products, tab)), nil
}

func (s *catalogServiceImpl) ListRecentProducts(ctx context.Context, sess *sessionDomain.Session) ([]domain.RecentProductCard, error) {
	recent, err := s.storeClient.ListRecentProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent products: %w", err)
	}

	cards := make([]domain.RecentProductCard, 0, len(recent))
	for _, r := range recent {
		cards = append(cards, domain.RecentProductCard{
			RecentProduct:  r,
			FormattedPrice: sess.Currency.FormatCurrency(r.Price),
		})
	}
	return cards, nil
}

func (s *catalogServiceImpl) GetProductDetail(ctx context.Context, sess *sessionDomain.Session, productID int64) (*domain.ProductDetail, error) {
	p, err := s.storeClient.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}

	detail := domain.NewProductDetail(*p, sess.Cart.ItemQuantity(p.ID), sess.Currency)
	return &detail, nil
}

// ListRecommendations: ambil id rekomendasi, lalu seluruh katalog, lalu filter.
// Kegagalan di tahap mana pun menjadi satu error yang sama untuk view.
func (s *catalogServiceImpl) ListRecommendations(ctx context.Context, sess *sessionDomain.Session, productID int64) ([]domain.ProductCard, error) {
	ids, err := s.storeClient.GetRecommendedProductIDs(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("recommendations for %d: %w", productID, err)
	}
	if len(ids) == 0 {
		return []domain.ProductCard{}, nil
	}

	products, err := s.storeClient.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("recommendations for %d: %w", productID, err)
	}

	filtered := domain.FilterByIDs(products, ids)
	if len(filtered) < len(ids) {
		logger.Warn("Recommended products missing from catalog",
			zap.Int64("product_id", productID), zap.Int("requested", len(ids)), zap.Int("found", len(filtered)))
	}
	return s.cards(sess, filtered), nil
}

func (s *catalogServiceImpl) cards(sess *sessionDomain.Session, products []domain.Product) []domain.ProductCard {
	cards := make([]domain.ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, domain.NewProductCard(p, sess.Cart.ItemQuantity(p.ID), sess.Currency))
	}
	return cards
}
