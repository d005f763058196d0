package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"sidingquote/services"
)

// RatesImportResponse reports the outcome of a rate schedule upload.
type RatesImportResponse struct {
	TotalRows int                        `json:"total_rows"`
	ValidRows int                        `json:"valid_rows"`
	ErrorRows int                        `json:"error_rows"`
	Errors    []services.ValidationError `json:"errors,omitempty"`
	Updated   int                        `json:"updated"`
}

// HandleRatesImport receives a rate schedule upload, validates it, and
// applies it when every row passes.
// Route: POST /api/rates/import
func HandleRatesImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return e.String(http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "Please select a file to upload")
		}
		defer file.Close()

		result, err := services.ValidateRatesFile(file, header.Filename)
		if err != nil {
			log.Printf("rates_import: %v", err)
			return e.String(http.StatusBadRequest, err.Error())
		}

		resp := RatesImportResponse{
			TotalRows: result.TotalRows,
			ValidRows: result.ValidRows,
			ErrorRows: result.ErrorRows,
			Errors:    result.Errors,
		}

		if result.ErrorRows > 0 {
			return e.JSON(http.StatusUnprocessableEntity, resp)
		}

		updated, err := services.ApplyRatesImport(app, result.ParsedRows)
		if err != nil {
			log.Printf("rates_import: apply: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to apply rates")
		}
		resp.Updated = updated

		return e.JSON(http.StatusOK, resp)
	}
}

// HandleRatesImportErrorReport downloads validation errors as an Excel file.
// Route: POST /api/rates/import/errors
func HandleRatesImportErrorReport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var errors []services.ValidationError
		decoder := json.NewDecoder(e.Request.Body)
		if err := decoder.Decode(&errors); err != nil {
			return e.String(http.StatusBadRequest, "Invalid error data")
		}

		xlsxBytes, err := services.GenerateErrorReport(errors)
		if err != nil {
			log.Printf("rates_import: error report: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate error report")
		}

		filename := fmt.Sprintf("Rate_Import_Errors_%s.xlsx", time.Now().Format("2006-01-02"))

		e.Response.Header().Set("Content-Type",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
		e.Response.Write(xlsxBytes)
		return nil
	}
}
