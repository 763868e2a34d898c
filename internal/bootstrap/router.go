package bootstrap

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/silverhold/codehub-backend/internal/api/http"
	"github.com/silverhold/codehub-backend/internal/api/http/middleware"
	authhttp "github.com/silverhold/codehub-backend/internal/auth/http"
	authmw "github.com/silverhold/codehub-backend/internal/auth/middleware"
	authsvc "github.com/silverhold/codehub-backend/internal/auth/service"
	cataloghttp "github.com/silverhold/codehub-backend/internal/catalog/http"
	catalogsvc "github.com/silverhold/codehub-backend/internal/catalog/service"
	chathttp "github.com/silverhold/codehub-backend/internal/chat/http"
	chatsvc "github.com/silverhold/codehub-backend/internal/chat/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	Redis          *redis.Client
	Catalog        *catalogsvc.CatalogService
	Chat           *chatsvc.ChatService
	Auth           *authsvc.AuthService
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = dep.AllowedOrigins
	corsCfg.AllowCredentials = true
	r.Use(cors.New(corsCfg))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	requireSession := authmw.RequireSession(dep.Auth)

	catalogHandler := cataloghttp.New(dep.Catalog)
	catalogHandler.Register(api.Group("/projects"), requireSession)

	chatHandler := chathttp.New(dep.Chat)
	chatHandler.Register(api.Group("/messages"))

	authHandler := authhttp.New(dep.Auth)
	authHandler.Register(api.Group("/auth"), requireSession)
	authHandler.RegisterAdmins(api.Group("/admins"))

	return r
}
