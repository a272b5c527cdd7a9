package main

import (
	"github.com/smallbiznis/shopbill/internal/billing"
	"github.com/smallbiznis/shopbill/internal/catalog"
	"github.com/smallbiznis/shopbill/internal/config"
	"github.com/smallbiznis/shopbill/internal/migration"
	"github.com/smallbiznis/shopbill/internal/observability"
	"github.com/smallbiznis/shopbill/internal/providers/pdf"
	"github.com/smallbiznis/shopbill/internal/server"
	"github.com/smallbiznis/shopbill/internal/shop"
	"github.com/smallbiznis/shopbill/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		// Core Infrastructure
		config.Module,
		observability.Module,
		db.Module,
		migration.Module,

		// Functional Domains
		shop.Module,
		catalog.Module,
		billing.Module,
		pdf.Module,

		server.Module,
	)
	app.Run()
}
