package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/catalog/domain"
	"github.com/ridloal/storefront-bff/internal/catalog/service"
	"github.com/ridloal/storefront-bff/internal/platform/apierror"
	sessionApi "github.com/ridloal/storefront-bff/internal/session/api"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(cs service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.GET("/:id", h.GetProduct)
		productRoutes.GET("/:id/recommendations", h.ListRecommendations)
	}
	router.GET("/recent-products", h.ListRecentProducts)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	cards, err := h.catalogService.ListProducts(c.Request.Context(), sess, c.Query("category"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		apierror.Respond(c, "ListProducts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": cards})
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := apierror.ParseID(c)
	if !ok {
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	detail, err := h.catalogService.GetProductDetail(c.Request.Context(), sess, id)
	if err != nil {
		apierror.Respond(c, "GetProduct", err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

func (h *CatalogHandler) ListRecommendations(c *gin.Context) {
	id, ok := apierror.ParseID(c)
	if !ok {
		return
	}
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	cards, err := h.catalogService.ListRecommendations(c.Request.Context(), sess, id)
	if err != nil {
		apierror.Respond(c, "ListRecommendations", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": cards})
}

func (h *CatalogHandler) ListRecentProducts(c *gin.Context) {
	sess, ok := sessionApi.WithSession(c)
	if !ok {
		return
	}

	cards, err := h.catalogService.ListRecentProducts(c.Request.Context(), sess)
	if err != nil {
		apierror.Respond(c, "ListRecentProducts", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recentProducts": cards})
}
