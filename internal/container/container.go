package container

import (
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fullstack-game/api/config"
	"github.com/fullstack-game/api/pkg/helpers"
)

// Process-wide singletons, set once during startup in cmd/main.go and read
// by the router modules while wiring their dependencies.
var (
	cfg    *config.Config
	logger *logrus.Logger
	db     *mongo.Database
	jwtMgr *helpers.JWTManager
)

func SetConfig(c *config.Config)   { cfg = c }
func SetLogger(l *logrus.Logger)   { logger = l }
func SetMongo(d *mongo.Database)   { db = d }
func SetJWT(m *helpers.JWTManager) { jwtMgr = m }

func GetConfig() *config.Config   { return cfg }
func GetLogger() *logrus.Logger   { return logger }
func GetMongo() *mongo.Database   { return db }
func GetJWT() *helpers.JWTManager { return jwtMgr }
