package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespond(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		status   int
		contains string
	}{
		{"Network failure", fmt.Errorf("load: %w", storeapi.ErrNetworkFailure), http.StatusBadGateway, `"retryable":true`},
		{"Not found", fmt.Errorf("product: %w", storeapi.ErrNotFound), http.StatusNotFound, CodeNotFound},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Respond(c, "Test", tc.err)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.contains)
		})
	}
}

func TestParseID(t *testing.T) {
	r := gin.New()
	var got int64
	r.GET("/p/:id", func(c *gin.Context) {
		id, ok := ParseID(c)
		if ok {
			got = id
			c.Status(http.StatusNoContent)
		}
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p/12", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(12), got)

	for _, bad := range []string{"abc", "0", "-3"} {
		w = httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/p/"+bad, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, bad)
	}
}
