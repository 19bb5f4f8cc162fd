package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/catalog/service/mocks"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(cs *mocks.MockCatalogService, sess *sessionDomain.Session) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { sessionApi.Attach(c, sess) })
	NewCatalogHandler(cs).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestCatalogHandler_ListProducts(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())

	t.Run("OK", func(t *testing.T) {
		cs := new(mocks.MockCatalogService)
		cs.On("ListProducts", mock.Anything, sess, "tea").
			Return([]domain.ProductCard{{ID: 3, Name: "Rooibos", FormattedPrice: "$8"}}, nil).Once()

		w := serve(setupRouter(cs, sess), http.MethodGet, "/api/v1/products?category=tea")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"formattedPrice":"$8"`)
		cs.AssertExpectations(t)
	})

	t.Run("Invalid category", func(t *testing.T) {
		cs := new(mocks.MockCatalogService)
		cs.On("ListProducts", mock.Anything, sess, "wine").
			Return(nil, fmt.Errorf("%w: wine", domain.ErrInvalidCategory)).Once()

		w := serve(setupRouter(cs, sess), http.MethodGet, "/api/v1/products?category=wine")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Network failure is retryable", func(t *testing.T) {
		cs := new(mocks.MockCatalogService)
		cs.On("ListProducts", mock.Anything, sess, "").Return(nil, storeapi.ErrNetworkFailure).Once()

		w := serve(setupRouter(cs, sess), http.MethodGet, "/api/v1/products")

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), `"retryable":true`)
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())

	t.Run("OK", func(t *testing.T) {
		cs := new(mocks.MockCatalogService)
		detail := &domain.ProductDetail{Product: domain.Product{ID: 5, Name: "Gouda"}, MaxQuantity: 4, CanAddToCart: true}
		cs.On("GetProductDetail", mock.Anything, sess, int64(5)).Return(detail, nil).Once()

		w := serve(setupRouter(cs, sess), http.MethodGet, "/api/v1/products/5")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"canAddToCart":true`)
	})

	t.Run("Not found", func(t *testing.T) {
		cs := new(mocks.MockCatalogService)
		cs.On("GetProductDetail", mock.Anything, sess, int64(6)).Return(nil, storeapi.ErrNotFound).Once()

		w := serve(setupRouter(cs, sess), http.MethodGet, "/api/v1/products/6")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Bad id", func(t *testing.T) {
		cs := new(mocks.MockCatalogService)

		w := serve(setupRouter(cs, sess), http.MethodGet, "/api/v1/products/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		cs.AssertNotCalled(t, "GetProductDetail", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCatalogHandler_RecommendationsAndRecent(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())
	cs := new(mocks.MockCatalogService)
	cs.On("ListRecommendations", mock.Anything, sess, int64(1)).Return([]domain.ProductCard{{ID: 2}}, nil).Once()
	cs.On("ListRecentProducts", mock.Anything, sess).
		Return([]domain.RecentProductCard{{RecentProduct: domain.RecentProduct{ID: 9}, FormattedPrice: "$1"}}, nil).Once()
	r := setupRouter(cs, sess)

	w := serve(r, http.MethodGet, "/api/v1/products/1/recommendations")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":2`)

	w = serve(r, http.MethodGet, "/api/v1/recent-products")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"recentProducts"`)
	cs.AssertExpectations(t)
}
