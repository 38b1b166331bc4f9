package router

import (
	"github.com/fullstack-game/api/internal/application"
	"github.com/fullstack-game/api/internal/container"
	"github.com/fullstack-game/api/internal/infrastructure/mongodb"
	handlers "github.com/fullstack-game/api/internal/interface/http"
	"github.com/fullstack-game/api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// adds them to the registry. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()
	jwt := container.GetJWT()

	userRepo := mongodb.NewUserRepository(db, cfg.UsersColl)
	userSvc := application.NewUserService(userRepo, jwt, logger)
	userHandler := handlers.NewUserHandler(userSvc, logger)

	productRepo := mongodb.NewProductRepository(db, cfg.ProductsColl)
	productSvc := application.NewProductService(productRepo, logger)
	productHandler := handlers.NewProductHandler(productSvc, logger)

	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewProductModule(productHandler))
}
