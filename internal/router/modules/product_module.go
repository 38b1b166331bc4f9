package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fullstack-game/api/internal/interface/http"
)

// ProductModule wires the product CRUD routes.
// All routes are public: role is stored on users but never checked here.
type ProductModule struct {
	Handler *handlers.ProductHandler
}

func NewProductModule(h *handlers.ProductHandler) *ProductModule {
	return &ProductModule{Handler: h}
}

func (m *ProductModule) Register(rg *gin.RouterGroup) {
	rg.POST("/productos", m.Handler.Create)
	rg.GET("/productos", m.Handler.List)
	rg.PUT("/productos/:id", m.Handler.Replace)
	rg.DELETE("/productos/:id", m.Handler.Delete)
}
