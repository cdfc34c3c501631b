// Package initializer wires the storefront dependencies from config.
package initializer

import (
	"github.com/aamart/storefront/infra/provider/stripepayment"
	"github.com/aamart/storefront/pkg/cart"
	"github.com/aamart/storefront/pkg/checkout"
	"github.com/aamart/storefront/pkg/config"
	"github.com/aamart/storefront/pkg/gateway"
	"github.com/aamart/storefront/pkg/observability"
	"github.com/aamart/storefront/pkg/token"
	"github.com/aamart/storefront/webapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// InitializeDependencies builds every component behind the HTTP surface.
func InitializeDependencies(cfg *config.App) (*webapi.Deps, error) {
	logger := setupLogger(cfg.Log)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := observability.New(registry)

	carts := cart.NewStore()
	authGateway := gateway.NewAuthClient(cfg.Backend, logger)
	paymentGateway := gateway.NewPaymentClient(cfg.Backend, logger)
	redirects := stripepayment.New(cfg.Stripe, logger)

	orchestrator := checkout.New(paymentGateway, redirects, carts, logger, metrics)

	return &webapi.Deps{
		Config:       cfg,
		Logger:       logger,
		Carts:        carts,
		Guard:        token.NewGuard(logger, metrics),
		AuthGateway:  authGateway,
		Orchestrator: orchestrator,
		Metrics:      metrics,
		Registry:     registry,
	}, nil
}
