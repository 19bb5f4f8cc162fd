package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ridloal/storefront-bff/internal/currency/domain"
	"github.com/ridloal/storefront-bff/internal/currency/service"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
	sessionDomain "github.com/ridloal/storefront-bff/internal/session/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestCurrencyHandler(t *testing.T) {
	sess := sessionDomain.New("s-1", time.Now())
	r := gin.New()
	r.Use(func(c *gin.Context) { sessionApi.Attach(c, sess) })
	NewCurrencyHandler(service.NewCurrencyService()).RegisterRoutes(r.Group("/api/v1"))

	do := func(method, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/v1/currency", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := do(http.MethodGet, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"currency":"USD","symbol":"$","exchangeRate":null}`, w.Body.String())

	w = do(http.MethodPut, `{"currency":"KRW"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.KRW, sess.Currency.Currency())

	w = do(http.MethodPut, `{"currency":"EUR"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(http.MethodPut, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
