package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/ridloal/storefront-bff/internal/cart/domain"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

var (
	ErrStockLimitReached = errors.New("cart quantity already equals product stock")
	ErrAlreadyInCart     = errors.New("product is already in the cart")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and product stock")
)

type CartService interface {
	View(ctx context.Context, sess *sessionDomain.Session) (*domain.CartView, error)
	Add(ctx context.Context, sess *sessionDomain.Session, productID int64) (*domain.MutationResult, error)
	AddQuantity(ctx context.Context, sess *sessionDomain.Session, productID int64, quantity int) (*domain.MutationResult, error)
	Remove(sess *sessionDomain.Session, productID int64) *domain.MutationResult
	Delete(sess *sessionDomain.Session, productID int64) *domain.MutationResult
	Clear(sess *sessionDomain.Session) *domain.MutationResult
}

type cartServiceImpl struct {
	storeClient storeapi.Client
}

func NewCartService(sc storeapi.Client) CartService {
	return &cartServiceImpl{storeClient: sc}
}

// View: cart kosong langsung dikembalikan tanpa memanggil store API.
func (s *cartServiceImpl) View(ctx context.Context, sess *sessionDomain.Session) (*domain.CartView, error) {
	if sess.Cart.IsEmpty() {
		return &domain.CartView{Items: []domain.CartLine{}, Empty: true}, nil
	}

	products, err := s.storeClient.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart products: %w", err)
	}
	view := domain.BuildCartView(sess.Cart, products, sess.Currency)
	return &view, nil
}

// Add menambah 1 kalau quantity di cart masih di bawah stok.
func (s *cartServiceImpl) Add(ctx context.Context, sess *sessionDomain.Session, productID int64) (*domain.MutationResult, error) {
	p, err := s.storeClient.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}

	if err := sess.Cart.AddN(productID, 1, p.Stock, false); err != nil {
		return nil, fmt.Errorf("%w: product %d, stock %d", ErrStockLimitReached, productID, p.Stock)
	}
	return result(sess, productID), nil
}

// AddQuantity dipakai halaman detail: produk belum ada di cart, 1 <= quantity <= stok.
func (s *cartServiceImpl) AddQuantity(ctx context.Context, sess *sessionDomain.Session, productID int64, quantity int) (*domain.MutationResult, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	if sess.Cart.ItemQuantity(productID) > 0 {
		return nil, fmt.Errorf("%w: product %d", ErrAlreadyInCart, productID)
	}

	p, err := s.storeClient.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product %d: %w", productID, err)
	}
	if quantity > p.Stock {
		return nil, fmt.Errorf("%w: got %d, stock %d", ErrInvalidQuantity, quantity, p.Stock)
	}

	if err := sess.Cart.AddN(productID, quantity, p.Stock, true); err != nil {
		if errors.Is(err, domain.ErrItemPresent) {
			return nil, fmt.Errorf("%w: product %d", ErrAlreadyInCart, productID)
		}
		return nil, fmt.Errorf("%w: got %d, stock %d", ErrInvalidQuantity, quantity, p.Stock)
	}
	logger.Info("Added to cart", zap.String("session_id", sess.ID), zap.Int64("product_id", productID), zap.Int("quantity", quantity))
	return result(sess, productID), nil
}

func (s *cartServiceImpl) Remove(sess *sessionDomain.Session, productID int64) *domain.MutationResult {
	sess.Cart.RemoveItem(productID)
	return result(sess, productID)
}

func (s *cartServiceImpl) Delete(sess *sessionDomain.Session, productID int64) *domain.MutationResult {
	sess.Cart.RemoveAll(productID)
	return result(sess, productID)
}

func (s *cartServiceImpl) Clear(sess *sessionDomain.Session) *domain.MutationResult {
	sess.Cart.Clear()
	return &domain.MutationResult{TotalQuantity: sess.Cart.TotalQuantity()}
}

func result(sess *sessionDomain.Session, productID int64) *domain.MutationResult {
	return &domain.MutationResult{
		ProductID:     productID,
		Quantity:      sess.Cart.ItemQuantity(productID),
		TotalQuantity: sess.Cart.TotalQuantity(),
	}
}
