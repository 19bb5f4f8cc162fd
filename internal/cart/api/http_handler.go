package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/cart/service"
	"github.com/ridloal/storefront-bff/internal/platform/apierror"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
)

type AddQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cs service.CartService) *CartHandler {
	return &CartHandler{cartService: cs}
}

func (h *CartHandler) RegisterRoutes(router *gin.RouterGroup) {
	cartRoutes := router.Group("/cart")
	{
		cartRoutes.GET("", h.View)
		cartRoutes.DELETE("", h.Clear)
		cartRoutes.POST("/items/:id", h.Add)
		cartRoutes.POST("/items/:id/quantity", h.AddQuantity)
		cartRoutes.DELETE("/items/:id", h.Remove)
		cartRoutes.DELETE("/items/:id/all", h.Delete)
	}
}

func (h *CartHandler) View(c *gin.Context) {
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	view, err := h.cartService.View(c.Request.Context(), sess)
	if err != nil {
		apierror.Respond(c, "ViewCart", err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *CartHandler) Add(c *gin.Context) {
	id, ok := apierror.ParseID(c)
	if !ok {
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	res, err := h.cartService.Add(c.Request.Context(), sess, id)
	if err != nil {
		h.respondError(c, "AddToCart", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CartHandler) AddQuantity(c *gin.Context) {
	id, ok := apierror.ParseID(c)
	if !ok {
		return
	}
	var req AddQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload: " + err.Error()})
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	res, err := h.cartService.AddQuantity(c.Request.Context(), sess, id, req.Quantity)
	if err != nil {
		h.respondError(c, "AddQuantityToCart", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := apierror.ParseID(c)
	if !ok {
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.cartService.Remove(sess, id))
}

func (h *CartHandler) Delete(c *gin.Context) {
	id, ok := apierror.ParseID(c)
	if !ok {
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.cartService.Delete(sess, id))
}

func (h *CartHandler) Clear(c *gin.Context) {
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.cartService.Clear(sess))
}

func (h *CartHandler) respondError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, service.ErrStockLimitReached), errors.Is(err, service.ErrAlreadyInCart):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidQuantity):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		apierror.Respond(c, op, err)
	}
}
