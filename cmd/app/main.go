package main

import (
	"desk/config"
	"desk/di"
	"desk/shared/logger"
)

// @title						Desk API
// @version					1.0
// @description				Seat booking for a two-batch rotating office.
// @BasePath					/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
// @securityDefinitions.apikey	ApiKeyAuth
// @in							header
// @name						X-API-Key
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
