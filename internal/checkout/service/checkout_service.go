package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/checkout/domain"
	gradeDomain "github.com/ridloal/storefront-bff/internal/grade/domain"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrPurchaseFailed = errors.New("purchase failed")
)

type CheckoutService interface {
	Quote(ctx context.Context, sess *sessionDomain.Session, method domain.DeliveryMethod) (*domain.Quote, error)
	Purchase(ctx context.Context, sess *sessionDomain.Session, method domain.DeliveryMethod) (*domain.Receipt, error)
}

type Options struct {
	FreeShippingThreshold float64
	RedirectPath          string
	RedirectDelay         time.Duration
}

type checkoutServiceImpl struct {
	storeClient storeapi.Client
	calculator  domain.Calculator
	opts        Options
}

func NewCheckoutService(sc storeapi.Client, opts Options) CheckoutService {
	if opts.RedirectPath == "" {
		opts.RedirectPath = "/"
	}
	return &checkoutServiceImpl{
		storeClient: sc,
		calculator:  domain.NewCalculator(opts.FreeShippingThreshold),
		opts:        opts,
	}
}

type checkoutData struct {
	products []catalogDomain.Product
	me       *gradeDomain.UserInfo
	rules    []gradeDomain.ShippingRule
}

// load mengambil katalog, user, dan tabel ongkir bersamaan. Satu gagal, semua gagal.
func (s *checkoutServiceImpl) load(ctx context.Context) (*checkoutData, error) {
	var data checkoutData
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		data.products, err = s.storeClient.ListProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.me, err = s.storeClient.GetMe(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.rules, err = s.storeClient.GetGradeShipping(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load checkout data: %w", err)
	}
	return &data, nil
}

func (s *checkoutServiceImpl) quote(ctx context.Context, sess *sessionDomain.Session, method domain.DeliveryMethod) (*domain.Quote, domain.PurchaseRequest, error) {
	data, err := s.load(ctx)
	if err != nil {
		return nil, domain.PurchaseRequest{}, err
	}

	items := sess.Cart.Items()
	summary := s.calculator.Calculate(domain.Input{
		Items:         items,
		Catalog:       catalogDomain.Index(data.products),
		Method:        method,
		Grade:         data.me.Grade,
		ShippingRules: data.rules,
	})
	q := domain.NewQuote(summary, data.me.Grade, sess.Currency)
	return &q, domain.NewPurchaseRequest(summary, items), nil
}

func (s *checkoutServiceImpl) Quote(ctx context.Context, sess *sessionDomain.Session, method domain.DeliveryMethod) (*domain.Quote, error) {
	q, _, err := s.quote(ctx, sess, method)
	return q, err
}

// Purchase menghitung ulang total lalu submit order. Cart tidak diubah, berhasil maupun gagal.
func (s *checkoutServiceImpl) Purchase(ctx context.Context, sess *sessionDomain.Session, method domain.DeliveryMethod) (*domain.Receipt, error) {
	if sess.Cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	q, req, err := s.quote(ctx, sess, method)
	if err != nil {
		return nil, err
	}

	if err := s.storeClient.Purchase(ctx, req); err != nil {
		logger.Error("Purchase: submission failed", err, zap.String("session_id", sess.ID), zap.Float64("total_price", req.TotalPrice))
		return nil, fmt.Errorf("%w: %v", ErrPurchaseFailed, err)
	}

	logger.Info("Purchase completed", zap.String("session_id", sess.ID),
		zap.String("delivery_type", string(method)), zap.Float64("total_price", req.TotalPrice), zap.Int("items", len(req.Items)))
	return &domain.Receipt{
		Order:        req,
		Quote:        *q,
		Notification: domain.Notification{Type: domain.NotificationSuccess, Message: domain.MessagePurchaseSucceeded},
		Redirect:     domain.NewRedirect(s.opts.RedirectPath, s.opts.RedirectDelay),
	}, nil
}
