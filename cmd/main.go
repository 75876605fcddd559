package main

import (
	"github.com/iamjuaness/mi-boleta/config"
	"github.com/iamjuaness/mi-boleta/pkg/logger"
	"github.com/iamjuaness/mi-boleta/pkg/server"
	"go.uber.org/zap"

	_ "github.com/iamjuaness/mi-boleta/docs"
)

//	@title			MI BOLETA AUTH SERVICE APIs
//	@version		1.0
//	@description	Authentication and authorization service for the Mi Boleta platform.

//	@BasePath	/api

// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @description				JWT authorization header
func main() {
	env := config.GetEnv()

	zapLogger := logger.GetLogger(env.LoggerConfig)
	zap.ReplaceGlobals(zapLogger)
	defer logger.Sync()

	server.Run(env)
}
