package storeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	catalogDomain "github.com/ridloal/storefront-bff/internal/catalog/domain"
	checkoutDomain "github.com/ridloal/storefront-bff/internal/checkout/domain"
	currencyDomain "github.com/ridloal/storefront-bff/internal/currency/domain"
	gradeDomain "github.com/ridloal/storefront-bff/internal/grade/domain"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

var (
	// ErrNetworkFailure: request gagal, status non-2xx, atau body tidak bisa di-decode.
	ErrNetworkFailure = errors.New("store api request failed")
	// ErrNotFound hanya untuk GetProduct; 404 di endpoint lain tetap ErrNetworkFailure.
	ErrNotFound = errors.New("resource not found")
)

// Client adalah akses typed ke store API. Tidak ada retry maupun cache.
type Client interface {
	ListProducts(ctx context.Context) ([]catalogDomain.Product, error)
	GetProduct(ctx context.Context, id int64) (*catalogDomain.Product, error)
	ListRecentProducts(ctx context.Context) ([]catalogDomain.RecentProduct, error)
	GetRecommendedProductIDs(ctx context.Context, id int64) ([]int64, error)
	GetMe(ctx context.Context) (*gradeDomain.UserInfo, error)
	GetGradePoints(ctx context.Context) ([]gradeDomain.Threshold, error)
	GetGradeShipping(ctx context.Context) ([]gradeDomain.ShippingRule, error)
	GetExchangeRate(ctx context.Context) (currencyDomain.ExchangeRate, error)
	Purchase(ctx context.Context, req checkoutDomain.PurchaseRequest) error
}

type Options struct {
	Timeout   time.Duration
	RateLimit float64 // request per detik, <= 0 berarti tanpa batas
	RateBurst int
}

type httpClient struct {
	BaseURL    string
	HTTPClient *http.Client
	limiter    *rate.Limiter
}

func NewHTTPClient(baseURL string, opts Options) Client {
	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.RateBurst
	if burst <= 0 {
		burst = 1
	}
	return &httpClient{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: opts.Timeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

type productListResponse struct {
	Products []catalogDomain.Product `json:"products"`
}

type recentProductsResponse struct {
	RecentProducts []catalogDomain.RecentProduct `json:"recentProducts"`
}

type recommendResponse struct {
	RecommendProductIDs []int64 `json:"recommendProductIds"`
}

type gradePointResponse struct {
	GradePointList []gradeDomain.Threshold `json:"gradePointList"`
}

type gradeShippingResponse struct {
	GradeShippingList []gradeDomain.ShippingRule `json:"gradeShippingList"`
}

type exchangeRateResponse struct {
	ExchangeRate currencyDomain.ExchangeRate `json:"exchangeRate"`
}

// Body POST dibungkus {"data": ...}.
type postEnvelope struct {
	Data interface{} `json:"data"`
}

func (c *httpClient) do(ctx context.Context, method, path string, body, out interface{}, mapNotFound bool) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrapf(ErrNetworkFailure, "%s %s: rate limiter: %v", method, path, err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(postEnvelope{Data: body})
		if err != nil {
			logger.Error("StoreAPI: marshal failed", err, zap.String("path", path))
			return errors.Wrapf(err, "marshal %s body", path)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		logger.Error("StoreAPI: NewRequest failed", err, zap.String("path", path))
		return errors.Wrapf(err, "create request %s %s", method, path)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("StoreAPI: HTTPClient.Do failed", err, zap.String("method", method), zap.String("path", path))
		return errors.Wrapf(ErrNetworkFailure, "%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	if mapNotFound && resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(ErrNotFound, "%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("store api %s %s returned status %d", method, path, resp.StatusCode)
		logger.Error(msg, nil)
		return errors.Wrap(ErrNetworkFailure, msg)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		logger.Error("StoreAPI: decode failed", err, zap.String("path", path))
		return errors.Wrapf(ErrNetworkFailure, "decode %s: %v", path, err)
	}
	return nil
}

func (c *httpClient) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out, false)
}

// getResource sama dengan get, tapi 404 berarti resource tidak ada (ErrNotFound).
func (c *httpClient) getResource(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out, true)
}

func (c *httpClient) ListProducts(ctx context.Context) ([]catalogDomain.Product, error) {
	var res productListResponse
	if err := c.get(ctx, "/api/product/list", &res); err != nil {
		return nil, err
	}
	return res.Products, nil
}

func (c *httpClient) GetProduct(ctx context.Context, id int64) (*catalogDomain.Product, error) {
	var p catalogDomain.Product
	if err := c.getResource(ctx, fmt.Sprintf("/api/product/%d", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *httpClient) ListRecentProducts(ctx context.Context) ([]catalogDomain.RecentProduct, error) {
	var res recentProductsResponse
	if err := c.get(ctx, "/api/recent/product/list", &res); err != nil {
		return nil, err
	}
	return res.RecentProducts, nil
}

func (c *httpClient) GetRecommendedProductIDs(ctx context.Context, id int64) ([]int64, error) {
	var res recommendResponse
	if err := c.get(ctx, fmt.Sprintf("/api/product/recommend/%d", id), &res); err != nil {
		return nil, err
	}
	return res.RecommendProductIDs, nil
}

func (c *httpClient) GetMe(ctx context.Context) (*gradeDomain.UserInfo, error) {
	var u gradeDomain.UserInfo
	if err := c.get(ctx, "/api/me", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *httpClient) GetGradePoints(ctx context.Context) ([]gradeDomain.Threshold, error) {
	var res gradePointResponse
	if err := c.get(ctx, "/api/grade/point", &res); err != nil {
		return nil, err
	}
	return res.GradePointList, nil
}

func (c *httpClient) GetGradeShipping(ctx context.Context) ([]gradeDomain.ShippingRule, error) {
	var res gradeShippingResponse
	if err := c.get(ctx, "/api/grade/shipping", &res); err != nil {
		return nil, err
	}
	return res.GradeShippingList, nil
}

func (c *httpClient) GetExchangeRate(ctx context.Context) (currencyDomain.ExchangeRate, error) {
	var res exchangeRateResponse
	if err := c.get(ctx, "/api/exchange-rate", &res); err != nil {
		return nil, err
	}
	return res.ExchangeRate, nil
}

// Purchase: respons (ack) diabaikan, cukup status 2xx.
func (c *httpClient) Purchase(ctx context.Context, req checkoutDomain.PurchaseRequest) error {
	return c.do(ctx, http.MethodPost, "/api/product/purchase", req, nil, false)
}
