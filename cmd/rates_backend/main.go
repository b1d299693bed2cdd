package main

import (
	"github.com/SscSPs/currency_rates_app/internal/cli"
)

// @title Currency Rates API
// @version 1.0
// @description Daily central-bank exchange rates with per-user watchlists and threshold analytics.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cli.Execute()
}
