package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/storefront-bff/internal/grade/domain"
	"github.com/ridloal/storefront-bff/internal/grade/service"
	"github.com/ridloal/storefront-bff/internal/platform/apierror"
	"github.com/ridloal/storefront-bff/internal/platform/logger"
)

type GradeHandler struct {
	gradeService service.GradeService
}

func NewGradeHandler(gs service.GradeService) *GradeHandler {
	return &GradeHandler{gradeService: gs}
}

func (h *GradeHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/grade", h.GetCurrentLevel)
}

func (h *GradeHandler) GetCurrentLevel(c *gin.Context) {
	progress, err := h.gradeService.GetCurrentLevel(c.Request.Context())
	if err != nil {
		if errors.Is(err, domain.ErrGradeNotFound) {
			logger.Error("GetCurrentLevel Hdl: inconsistent grade data", err)
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "code": "GRADE_NOT_FOUND"})
			return
		}
		apierror.Respond(c, "GetCurrentLevel", err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
