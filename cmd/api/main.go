package main

import (
	"fmt"
	"os"

	_ "marketplace_escrow/docs"
	"marketplace_escrow/internal/adapter/http/routes"
	"marketplace_escrow/internal/infrastructure/config"
	"marketplace_escrow/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Marketplace Escrow API
// @version         1.0
// @description     Buyers post needs, sellers make offers, accepted offers are paid into escrow as orders.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("[main] server stopped", "error", err)
	}
}
