package main

import (
	"fmt"

	"github.com/aamart/storefront/infra/initializer"
	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/webapi"
	log "github.com/charmbracelet/log"
)

// @title A&A Mart storefront API
// @version 1.0.0
// @description Browser-facing storefront service: session, cart and checkout flows
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.NewApp(deps)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	deps.Logger.Info("starting storefront",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return app.Listen(addr)
}
