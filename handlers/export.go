package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"sidingquote/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// quoteFilename builds a download filename from the customer name, falling
// back to a generic stem when the quote has no customer yet.
func quoteFilename(doc services.QuoteDocument, ext string) string {
	stem := sanitizeFilename(doc.CustomerName)
	if stem == "" {
		stem = "Quote"
	}
	return fmt.Sprintf("Quote_%s_%d.%s", stem, time.Now().Year(), ext)
}

// HandleQuoteExportPDF handles POST /api/quote/pdf. The view query
// parameter selects the rendering: "customer" produces the presentation
// copy, anything else the internal worksheet.
func HandleQuoteExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := bindQuoteInputs(e)
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		prices, products, err := loadCatalog(app)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load pricing data")
		}

		doc := services.BuildQuoteDocument(in, prices, products)

		var pdfBytes []byte
		if e.Request.URL.Query().Get("view") == "customer" {
			pdfBytes, err = services.GenerateCustomerPDF(doc)
		} else {
			pdfBytes, err = services.GenerateInternalPDF(doc)
		}
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, quoteFilename(doc, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}

// HandleQuoteExportExcel handles POST /api/quote/excel and downloads the
// quote as a spreadsheet.
func HandleQuoteExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		in, err := bindQuoteInputs(e)
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		prices, products, err := loadCatalog(app)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load pricing data")
		}

		doc := services.BuildQuoteDocument(in, prices, products)

		xlsxBytes, err := services.GenerateExcel(doc)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, quoteFilename(doc, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
