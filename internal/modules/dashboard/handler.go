package dashboard

import (
	"net/http"

	"localguide/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	protected.GET("/dashboard", h.Get)
}

func (h *Handler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"layout": LayoutForRole(c.GetString("role"))})
}
