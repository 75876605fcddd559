package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iamjuaness/mi-boleta/config"
	"github.com/iamjuaness/mi-boleta/internal/handler"
	"github.com/iamjuaness/mi-boleta/internal/middleware"
	"github.com/iamjuaness/mi-boleta/internal/model"
	"github.com/iamjuaness/mi-boleta/internal/policy"
	"github.com/iamjuaness/mi-boleta/internal/token"
	"github.com/iamjuaness/mi-boleta/internal/user"
	"github.com/iamjuaness/mi-boleta/internal/validation"
	"github.com/iamjuaness/mi-boleta/pkg/cache"
	"github.com/iamjuaness/mi-boleta/pkg/database"
	"github.com/iamjuaness/mi-boleta/pkg/logger"
	http_server "github.com/iamjuaness/mi-boleta/pkg/server/http"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const _shutdownTimeout = 10 * time.Second

// Run assembles the auth service and blocks until an interrupt or a server
// error. All token components share the one secret loaded at startup; it is
// never mutated afterwards.
func Run(env *config.Env) {
	// Persistence and caches
	mongoDB := database.NewMongoDB(&env.MongoConfig)
	var db database.Database = mongoDB
	if err := db.Connect(); err != nil {
		zap.L().Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.WithError(zap.L(), err).Warn("MongoDB disconnect failed")
		}
	}()

	memCache := cache.NewCache(env.CacheConfig)
	defer memCache.Stop()

	var redisClient *redis.Client
	if env.RedisConfig.Enabled {
		redisClient = cache.NewRedisClient(env.RedisConfig)
	}
	var store user.Store = user.NewCachedStore(
		user.NewMongoStore(mongoDB.Database()), memCache, redisClient)

	// Token components
	codec := token.NewCodec([]byte(env.JWTConfig.Secret))
	issuer := token.NewIssuer(codec, env.JWTConfig.Lifetime)
	verifier := token.NewVerifier(codec)
	refresher := token.NewRefresher(verifier, issuer, env.JWTConfig.RefreshWindow)

	// HTTP server
	s := http_server.New(env,
		http_server.Port(fmt.Sprint(env.AppConfig.Port)),
		http_server.Timeout(5*time.Second),
	)

	registerRoutes(s.App, env, db, store, issuer, verifier, refresher)

	s.Start()
	zap.L().Info("Auth service started", zap.Int("port", env.AppConfig.Port))

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-interrupt:
		zap.L().Info("Shutting down", zap.String("signal", sig.String()))
	case err := <-s.Notify():
		zap.L().Error("Server stopped", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), _shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		zap.L().Error("Shutdown did not complete cleanly", zap.Error(err))
	}
}

// registerRoutes wires the authentication filter, the route policy and the
// handlers. The filter chain order matters: logging, then authentication,
// then the policy gate, then the routes.
func registerRoutes(
	r *gin.Engine,
	env *config.Env,
	db database.Database,
	store user.Store,
	issuer *token.Issuer,
	verifier *token.Verifier,
	refresher *token.Refresher,
) {
	logging := middleware.NewLoggingMiddleware(middleware.DefaultMiddlewareConfig())
	authorizer := middleware.NewRequestAuthorizer(verifier)

	r.Use(middleware.CorrelationIDMiddleware())
	r.Use(logging.RequestLogger())
	r.Use(logging.SecurityLogger())
	r.Use(authorizer.Authenticate())
	r.Use(middleware.Authorize(policy.Routes()))

	authHandler := handler.NewAuthHandler(store, issuer, refresher, env.JWTConfig.Lifetime)
	adminHandler := handler.NewAdminHandler(store)

	r.GET("/health", handler.NewHealthHandler(db).Check)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login",
			validation.Validate[model.LoginRequest, any, any](), authHandler.Login)
		auth.POST("/refresh",
			validation.Validate[model.RefreshRequest, any, any](), authHandler.Refresh)
		auth.GET("/me", authHandler.Me)

		admin := api.Group("/admin")
		admin.GET("/users/:email", adminHandler.GetUser)
	}
}
