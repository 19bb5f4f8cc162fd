package apierror

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
)

const (
	CodeNetworkFailure = "NETWORK_FAILURE"
	CodeNotFound       = "NOT_FOUND"
	CodeInternal       = "INTERNAL"
)

// Respond memetakan error dari store API ke respons HTTP.
// Error domain spesifik ditangani handler sebelum memanggil ini.
func Respond(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, storeapi.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "code": CodeNotFound})
	case errors.Is(err, storeapi.ErrNetworkFailure):
		// satu error gabungan untuk seluruh view, client me-retry dengan mengulang request
		logger.Error(op+": store api unavailable", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to load data, please retry", "code": CodeNetworkFailure, "retryable": true})
	default:
		logger.Error(op+": unhandled service error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error", "code": CodeInternal})
	}
}

// ParseID membaca path param :id. Balasan 400 sudah dikirim kalau ok=false.
func ParseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id: " + c.Param("id")})
		return 0, false
	}
	return id, true
}
