package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/fullstack-game/api/internal/interface/http"
	"github.com/fullstack-game/api/pkg/helpers"
)

// UserModule wires the user CRUD routes plus /login.
//
// middleware.Auth is deliberately attached to no route: the deployed behavior
// keeps token verification as unused capability. Raise it upstream before
// gating anything here.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	rg.POST("/usuarios", m.Handler.Create)
	rg.GET("/usuarios", m.Handler.List)
	rg.PUT("/usuarios/:id", m.Handler.Replace)
	rg.DELETE("/usuarios/:id", m.Handler.Delete)
	rg.POST("/login", m.Handler.Login)
}
