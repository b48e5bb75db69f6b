package main

import (
	"scaffold/config"
	"scaffold/di"
	"scaffold/shared/logger"
)

// @title Scaffold Backend API
// @version 1.0
// @description CRUD backend for items and todos backed by in-memory stores.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
