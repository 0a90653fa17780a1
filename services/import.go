package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"expedientes_app_go/models"
	"expedientes_app_go/repository"
	"expedientes_app_go/validation"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the import workbook
const (
	SheetInstructions = "Instructions"
	SheetClients      = "Clients"
	SheetCases        = "Cases"
)

var clientHeaders = []string{"Document*", "Name*", "Kind (PERSON/ORGANIZATION)", "Email", "Phone"}

var caseHeaders = []string{
	"Client document*",
	"File number* (12345/2024)",
	"Caption*",
	"Jurisdiction area* (LABOR/CIVIL/COMMERCIAL/CRIMINAL/FAMILY/OTHER)",
	"Status* (OPEN/IN_PROGRESS/CLOSED)",
	"Court",
	"Jurisdiction",
	"Owner ids (comma separated)",
	"Notes",
}

// ImportResult contains the summary of the import process. Counts cover the
// non-empty rows of both sheets; a client row matching a stored client counts as a success.
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	SuccessCount   int      `json:"success_count"`
	FailedCount    int      `json:"failed_count"`
	ClientsCreated int      `json:"clients_created"`
	Errors         []string `json:"errors"`
}

// GenerateImportTemplate generates the Excel template for case import
func GenerateImportTemplate() (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", SheetInstructions)

	// --- Instructions Sheet ---
	instructions := []string{
		"Case import",
		"",
		"Considerations:",
		"- Fill the Clients sheet first. Clients are matched by document; existing clients are reused.",
		"- Every case row references a client by document, from the Clients sheet or already stored.",
		"- File numbers use the form number/year, e.g. 12345/2024.",
		"- Owner ids may be left empty when a default owner is configured for the import.",
		"- Columns marked with * are required.",
	}
	for i, line := range instructions {
		f.SetCellValue(SheetInstructions, fmt.Sprintf("A%d", i+1), line)
	}
	mainTitleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(SheetInstructions, "A1", "A1", mainTitleStyle)
	f.SetColWidth(SheetInstructions, "A", "A", 100)

	// --- Clients Sheet ---
	f.NewSheet(SheetClients)
	writeHeaderRow(f, SheetClients, clientHeaders)
	f.SetColWidth(SheetClients, "A", "E", 24)
	f.SetSheetRow(SheetClients, "A2", &[]interface{}{"20-12345678-9", "Juan Pérez", models.ClientKindPerson, "juan@example.com", "+54 11 5555-0000"})

	// --- Cases Sheet ---
	f.NewSheet(SheetCases)
	writeHeaderRow(f, SheetCases, caseHeaders)
	f.SetColWidth(SheetCases, "A", "I", 24)
	f.SetSheetRow(SheetCases, "A2", &[]interface{}{
		"20-12345678-9", "12345/2024", "Pérez c/ ACME s/ despido", models.AreaLabor, models.CaseStatusOpen,
		"Juzgado Nacional del Trabajo N° 5", "CABA", "", "",
	})

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write excel buffer: %w", err)
	}
	return buf, nil
}

func writeHeaderRow(f *excelize.File, sheet string, headers []string) {
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	f.SetCellStyle(sheet, "A1", last, headerStyle)
}

// cell returns the trimmed value of column i, or "" when the row is shorter
func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// ImportFromExcel reads the Clients and Cases sheets and creates the records through repo.
// Rows are validated one by one; a bad row is reported in the result and skipped.
// Cases without owner ids get defaultOwnerIDs.
func ImportFromExcel(ctx context.Context, repo *repository.Repository, file io.Reader, defaultOwnerIDs []string) (*ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	clientRows, err := f.GetRows(SheetClients)
	if err != nil {
		return nil, fmt.Errorf("invalid excel format: failed to read %s sheet: %w", SheetClients, err)
	}
	caseRows, err := f.GetRows(SheetCases)
	if err != nil {
		return nil, fmt.Errorf("invalid excel format: failed to read %s sheet: %w", SheetCases, err)
	}

	result := &ImportResult{Errors: []string{}}

	// --- Phase 1: Clients ---
	clientByDocument := make(map[string]string)
	for i, row := range clientRows {
		if i == 0 {
			continue
		} // Header
		document := cell(row, 0)
		if document == "" {
			continue
		}
		result.TotalProcessed++

		if existing, ok := repo.FindClientByDocument(ctx, document); ok {
			clientByDocument[document] = existing.ID
			result.SuccessCount++
			continue
		}

		kind := strings.ToUpper(cell(row, 2))
		if kind == "" {
			kind = models.ClientKindPerson
		}
		in := models.ClientInput{
			Kind:       kind,
			Name:       cell(row, 1),
			DocumentID: optional(document),
			Email:      optional(cell(row, 3)),
			Phone:      optional(cell(row, 4)),
		}
		validation.Sanitize(&in)
		if err := validation.Struct(in); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Client): %v", i+1, err))
			continue
		}

		created := repo.CreateClient(ctx, in)
		clientByDocument[document] = created.ID
		result.ClientsCreated++
		result.SuccessCount++
	}

	// --- Phase 2: Cases ---
	for i, row := range caseRows {
		if i == 0 {
			continue
		} // Header
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		result.TotalProcessed++

		document := cell(row, 0)
		clientID, ok := clientByDocument[document]
		if !ok {
			if existing, found := repo.FindClientByDocument(ctx, document); found && document != "" {
				clientID = existing.ID
			} else {
				result.FailedCount++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Case): Client document %q not found in Clients sheet or stored clients", i+1, document))
				continue
			}
		}

		owners := splitList(cell(row, 7))
		if len(owners) == 0 {
			owners = append([]string{}, defaultOwnerIDs...)
		}
		in := models.CaseInput{
			ClientID:         clientID,
			FileNumber:       cell(row, 1),
			Caption:          cell(row, 2),
			JurisdictionArea: strings.ToUpper(cell(row, 3)),
			Status:           strings.ToUpper(cell(row, 4)),
			Court:            optional(cell(row, 5)),
			Jurisdiction:     optional(cell(row, 6)),
			OwnerIDs:         owners,
			Notes:            optional(cell(row, 8)),
		}
		validation.Sanitize(&in)
		if err := validation.Struct(in); err != nil {
			result.FailedCount++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d (Case): %v", i+1, err))
			continue
		}

		repo.CreateCase(ctx, in)
		result.SuccessCount++
	}

	return result, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
