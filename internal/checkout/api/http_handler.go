package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/checkout/domain"
	"github.com/ridloal/storefront-bff/internal/checkout/service"
	"github.com/ridloal/storefront-bff/internal/platform/apierror"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
	"github.com/ridloal/storefront-bff/internal/platform/storeapi"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
)

var purchaseFailedNotification = domain.Notification{Type: domain.NotificationError, Message: domain.MessagePurchaseFailed}

type PurchaseRequest struct {
	DeliveryMethod string `json:"deliveryMethod"`
}

type CheckoutHandler struct {
	checkoutService service.CheckoutService
}

func NewCheckoutHandler(cs service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: cs}
}

func (h *CheckoutHandler) RegisterRoutes(router *gin.RouterGroup) {
	checkoutRoutes := router.Group("/checkout")
	{
		checkoutRoutes.GET("", h.Quote)
		checkoutRoutes.POST("/purchase", h.Purchase)
	}
}

func (h *CheckoutHandler) Quote(c *gin.Context) {
	method, err := domain.ParseDeliveryMethod(c.Query("deliveryMethod"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	q, err := h.checkoutService.Quote(c.Request.Context(), sess, method)
	if err != nil {
		apierror.Respond(c, "Quote", err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *CheckoutHandler) Purchase(c *gin.Context) {
	var req PurchaseRequest
	// body boleh kosong, default EXPRESS
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
			return
		}
	}
	method, err := domain.ParseDeliveryMethod(req.DeliveryMethod)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	receipt, err := h.checkoutService.Purchase(c.Request.Context(), sess, method)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrPurchaseFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error":        err.Error(),
				"notification": purchaseFailedNotification,
			})
		case errors.Is(err, storeapi.ErrNetworkFailure):
			// data checkout gagal dimuat ulang, purchase tetap dianggap gagal
			logger.Error("Purchase: store api unavailable", err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error":        "Failed to load data, please retry",
				"code":         apierror.CodeNetworkFailure,
				"retryable":    true,
				"notification": purchaseFailedNotification,
			})
		default:
			apierror.Respond(c, "Purchase", err)
		}
		return
	}
	c.JSON(http.StatusCreated, receipt)
}
