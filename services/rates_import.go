package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/xuri/excelize/v2"
)

// ValidationError represents a single field-level error on one row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RateImportRow is one parsed and validated rate from an uploaded file.
type RateImportRow struct {
	Code string  `json:"code"`
	Rate float64 `json:"rate"`
}

// ValidationResult is returned after parsing and validating an uploaded
// rate schedule file.
type ValidationResult struct {
	TotalRows  int               `json:"total_rows"`
	ValidRows  int               `json:"valid_rows"`
	ErrorRows  int               `json:"error_rows"`
	Errors     []ValidationError `json:"errors"`
	ParsedRows []RateImportRow   `json:"-"`
	FileName   string            `json:"-"`
}

// parseCSV reads a CSV file and returns headers + data rows.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	headers := allRows[0]
	dataRows := allRows[1:]
	return headers, dataRows, nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("file must contain a header row and at least one data row")
	}

	headers := rows[0]
	dataRows := rows[1:]
	return headers, dataRows, nil
}

// findColumns locates the Code and Rate columns by header, case
// insensitively. Extra columns, like the Unit and Category the export
// writes, are ignored.
func findColumns(headers []string) (codeCol, rateCol int, err error) {
	codeCol, rateCol = -1, -1
	for i, h := range headers {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "code":
			codeCol = i
		case "rate":
			rateCol = i
		}
	}
	if codeCol < 0 || rateCol < 0 {
		return -1, -1, fmt.Errorf("file must contain Code and Rate columns")
	}
	return codeCol, rateCol, nil
}

// ValidateRatesFile parses and validates an uploaded rate schedule.
// Codes must match the built-in fee schedule; the import updates prices,
// it does not invent charge types.
func ValidateRatesFile(file io.Reader, fileName string) (*ValidationResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	if strings.HasSuffix(lowerName, ".csv") {
		headers, dataRows, err = parseCSV(file)
	} else if strings.HasSuffix(lowerName, ".xlsx") {
		headers, dataRows, err = parseExcel(file)
	} else {
		return nil, fmt.Errorf("unsupported file format: must be .csv or .xlsx")
	}
	if err != nil {
		return nil, err
	}

	codeCol, rateCol, err := findColumns(headers)
	if err != nil {
		return nil, err
	}

	knownCodes := DefaultPriceTable()

	result := &ValidationResult{
		TotalRows:  len(dataRows),
		FileName:   fileName,
		ParsedRows: make([]RateImportRow, 0, len(dataRows)),
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		var rowErrors []ValidationError

		code := ""
		if codeCol < len(row) {
			code = strings.TrimSpace(row[codeCol])
		}
		rateStr := ""
		if rateCol < len(row) {
			rateStr = strings.TrimSpace(row[rateCol])
		}

		if code == "" {
			rowErrors = append(rowErrors, ValidationError{
				Row: rowNum, Field: "Code", Message: "Code is required",
			})
		} else if _, ok := knownCodes[code]; !ok {
			rowErrors = append(rowErrors, ValidationError{
				Row: rowNum, Field: "Code", Message: fmt.Sprintf("Unknown rate code %q", code),
			})
		}

		rate := 0.0
		if rateStr == "" {
			rowErrors = append(rowErrors, ValidationError{
				Row: rowNum, Field: "Rate", Message: "Rate is required",
			})
		} else {
			rate, err = strconv.ParseFloat(rateStr, 64)
			if err != nil {
				rowErrors = append(rowErrors, ValidationError{
					Row: rowNum, Field: "Rate", Message: fmt.Sprintf("Rate %q is not a number", rateStr),
				})
			} else if rate < 0 {
				rowErrors = append(rowErrors, ValidationError{
					Row: rowNum, Field: "Rate", Message: "Rate cannot be negative",
				})
			}
		}

		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
		}
		result.ParsedRows = append(result.ParsedRows, RateImportRow{Code: code, Rate: rate})
	}

	errorRowSet := make(map[int]bool)
	for _, e := range result.Errors {
		errorRowSet[e.Row] = true
	}
	result.ErrorRows = len(errorRowSet)
	result.ValidRows = result.TotalRows - result.ErrorRows

	return result, nil
}

// ApplyRatesImport writes validated rate rows onto the price_rates
// collection and returns how many records changed. Codes with no stored
// record are skipped; the seed and rate migration own record creation.
func ApplyRatesImport(app *pocketbase.PocketBase, rows []RateImportRow) (int, error) {
	col, err := app.FindCollectionByNameOrId("price_rates")
	if err != nil {
		return 0, fmt.Errorf("apply rates: find collection: %w", err)
	}
	records, err := app.FindAllRecords(col)
	if err != nil {
		return 0, fmt.Errorf("apply rates: query: %w", err)
	}

	newRates := make(map[string]float64, len(rows))
	for _, row := range rows {
		newRates[row.Code] = row.Rate
	}

	updated := 0
	for _, r := range records {
		rate, ok := newRates[r.GetString("code")]
		if !ok || r.GetFloat("rate") == rate {
			continue
		}
		r.Set("rate", rate)
		if err := app.Save(r); err != nil {
			return updated, fmt.Errorf("apply rates: save %q: %w", r.GetString("code"), err)
		}
		updated++
	}
	return updated, nil
}

// GenerateErrorReport creates a downloadable .xlsx file from validation errors.
func GenerateErrorReport(errors []ValidationError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Errors"
	defaultSheet := f.GetSheetName(0)
	f.SetSheetName(defaultSheet, sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Row #")
	f.SetCellValue(sheet, "B1", "Field")
	f.SetCellValue(sheet, "C1", "Error")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, e.Field)
		f.SetCellValue(sheet, "C"+row, e.Message)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}
