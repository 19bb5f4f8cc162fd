package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ridloal/storefront-bff/internal/cart/domain"
	"github.com/ridloal/storefront-bff/internal/cart/service"
	"github.com/ridloal/storefront-bff/internal/cart/service/mocks"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(cs *mocks.MockCartService, sess *sessionDomain.Session) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) { sessionApi.Attach(c, sess) })
	NewCartHandler(cs).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func TestCartHandler_View(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())
	cs := new(mocks.MockCartService)
	cs.On("View", mock.Anything, sess).Return(&domain.CartView{Items: []domain.CartLine{}, Empty: true}, nil).Once()

	w := serve(setupRouter(cs, sess), http.MethodGet, "/api/v1/cart", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"items":[],"totalQuantity":0,"empty":true}`, w.Body.String())
}

func TestCartHandler_Add(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())

	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"OK", nil, http.StatusOK},
		{"Stock limit", fmt.Errorf("%w: product 1", service.ErrStockLimitReached), http.StatusConflict},
		{"Unknown product", storeapi.ErrNotFound, http.StatusNotFound},
		{"Store api down", storeapi.ErrNetworkFailure, http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs := new(mocks.MockCartService)
			if tc.err == nil {
				cs.On("Add", mock.Anything, sess, int64(1)).Return(&domain.MutationResult{ProductID: 1, Quantity: 1, TotalQuantity: 1}, nil).Once()
			} else {
				cs.On("Add", mock.Anything, sess, int64(1)).Return(nil, tc.err).Once()
			}

			w := serve(setupRouter(cs, sess), http.MethodPost, "/api/v1/cart/items/1", "")

			assert.Equal(t, tc.status, w.Code)
			cs.AssertExpectations(t)
		})
	}
}

func TestCartHandler_AddQuantity(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())

	t.Run("OK", func(t *testing.T) {
		cs := new(mocks.MockCartService)
		cs.On("AddQuantity", mock.Anything, sess, int64(4), 3).Return(&domain.MutationResult{ProductID: 4, Quantity: 3, TotalQuantity: 3}, nil).Once()

		w := serve(setupRouter(cs, sess), http.MethodPost, "/api/v1/cart/items/4/quantity", `{"quantity":3}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"productId":4,"quantity":3,"totalQuantity":3}`, w.Body.String())
	})

	t.Run("Already in cart", func(t *testing.T) {
		cs := new(mocks.MockCartService)
		cs.On("AddQuantity", mock.Anything, sess, int64(4), 1).Return(nil, service.ErrAlreadyInCart).Once()

		w := serve(setupRouter(cs, sess), http.MethodPost, "/api/v1/cart/items/4/quantity", `{"quantity":1}`)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid quantity", func(t *testing.T) {
		cs := new(mocks.MockCartService)
		cs.On("AddQuantity", mock.Anything, sess, int64(4), 99).Return(nil, service.ErrInvalidQuantity).Once()

		w := serve(setupRouter(cs, sess), http.MethodPost, "/api/v1/cart/items/4/quantity", `{"quantity":99}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Missing body", func(t *testing.T) {
		cs := new(mocks.MockCartService)

		w := serve(setupRouter(cs, sess), http.MethodPost, "/api/v1/cart/items/4/quantity", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		cs.AssertNotCalled(t, "AddQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCartHandler_RemoveDeleteClear(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())
	cs := new(mocks.MockCartService)
	cs.On("Remove", sess, int64(2)).Return(&domain.MutationResult{ProductID: 2, Quantity: 1, TotalQuantity: 1}).Once()
	cs.On("Delete", sess, int64(2)).Return(&domain.MutationResult{ProductID: 2}).Once()
	cs.On("Clear", sess).Return(&domain.MutationResult{}).Once()
	r := setupRouter(cs, sess)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodDelete, "/api/v1/cart/items/2", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodDelete, "/api/v1/cart/items/2/all", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodDelete, "/api/v1/cart", "").Code)
	cs.AssertExpectations(t)
}
