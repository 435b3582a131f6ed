package main

import (
	"lodgedesk/config"
	"lodgedesk/di"
	"lodgedesk/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
