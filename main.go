package main

import (
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"sidingquote/collections"
	"sidingquote/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.Seed(app); err != nil {
			log.Printf("Warning: seed data failed: %v", err)
		}
		if err := collections.MigrateRates(app); err != nil {
			log.Printf("Warning: rate migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/api/health", handlers.HandleHealth(app))

		// ── Catalog ──────────────────────────────────────────────
		se.Router.GET("/api/products", handlers.HandleProductList(app))
		se.Router.GET("/api/rates", handlers.HandleRateList(app))
		se.Router.GET("/api/options", handlers.HandleOptionList(app))
		se.Router.POST("/api/rates/import", handlers.HandleRatesImport(app))
		se.Router.POST("/api/rates/import/errors", handlers.HandleRatesImportErrorReport(app))

		// ── Quoting ──────────────────────────────────────────────
		se.Router.POST("/api/quote", handlers.HandleQuoteCompute(app))
		se.Router.POST("/api/quote/pdf", handlers.HandleQuoteExportPDF(app))
		se.Router.POST("/api/quote/excel", handlers.HandleQuoteExportExcel(app))

		// ── Measurement reports ──────────────────────────────────
		se.Router.POST("/api/measurements", handlers.HandleMeasurementParse(app))
		se.Router.POST("/api/quick-quote", handlers.HandleQuickQuote(app))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
