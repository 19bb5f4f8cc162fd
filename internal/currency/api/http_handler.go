package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/currency/domain"
	"github.com/ridloal/storefront-bff/internal/currency/service"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
)

type SetCurrencyRequest struct {
	Currency string `json:"currency" binding:"required"`
}

type CurrencyHandler struct {
	currencyService service.CurrencyService
}

func NewCurrencyHandler(cs service.CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{currencyService: cs}
}

func (h *CurrencyHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/currency", h.Get)
	router.PUT("/currency", h.Set)
}

func (h *CurrencyHandler) Get(c *gin.Context) {
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.currencyService.Get(sess))
}

func (h *CurrencyHandler) Set(c *gin.Context) {
	var req SetCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	st, err := h.currencyService.Set(sess, req.Currency)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedCurrency) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set currency"})
		return
	}
	c.JSON(http.StatusOK, st)
}
