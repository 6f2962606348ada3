package sheets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ShunTr-dev/socios-ajerga/members"
	"google.golang.org/api/googleapi"
	sheetsapi "google.golang.org/api/sheets/v4"
)

const (
	valueInputRaw     = "RAW"
	insertDataRows    = "INSERT_ROWS"
	googleCallTimeout = 10 * time.Second
)

var _ Table = &GoogleTable{}

// GoogleTable reads and writes one sheet range of a Google spreadsheet.
type GoogleTable struct {
	service       *sheetsapi.Service
	spreadsheetID string
	sheetName     string
	valueRange    string
}

// NewGoogleTable takes a range in A1 notation that names the sheet, e.g. "Members!A:N".
func NewGoogleTable(service *sheetsapi.Service, spreadsheetID string, valueRange string) (*GoogleTable, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	sheetName, _, ok := strings.Cut(valueRange, "!")
	if !ok || sheetName == "" {
		return nil, fmt.Errorf("range %q must name a sheet", valueRange)
	}

	return &GoogleTable{
		service:       service,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		valueRange:    valueRange,
	}, nil
}

func (t *GoogleTable) AppendRows(ctx context.Context, rows [][]string) error {
	ctx, cancel := context.WithTimeout(ctx, googleCallTimeout)
	defer cancel()

	_, err := t.service.Spreadsheets.Values.Append(t.spreadsheetID, t.valueRange, &sheetsapi.ValueRange{
		Values: toCells(rows),
	}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataRows).
		Context(ctx).
		Do()
	if err != nil {
		return translateGoogleError("Failed to append ledger rows", err)
	}

	return nil
}

func (t *GoogleTable) ReadRows(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, googleCallTimeout)
	defer cancel()

	resp, err := t.service.Spreadsheets.Values.Get(t.spreadsheetID, t.valueRange).Context(ctx).Do()
	if err != nil {
		return nil, translateGoogleError("Failed to read ledger rows", err)
	}

	rows := make([][]string, len(resp.Values))
	for i, r := range resp.Values {
		rows[i] = make([]string, len(r))
		for j, cell := range r {
			rows[i][j] = fmt.Sprint(cell)
		}
	}
	return rows, nil
}

func (t *GoogleTable) UpdateCells(ctx context.Context, sheetRow int, firstCol int, values []string) error {
	ctx, cancel := context.WithTimeout(ctx, googleCallTimeout)
	defer cancel()

	a1 := fmt.Sprintf("%s!%s%d:%s%d", t.sheetName, columnName(firstCol), sheetRow, columnName(firstCol+len(values)-1), sheetRow)

	_, err := t.service.Spreadsheets.Values.Update(t.spreadsheetID, a1, &sheetsapi.ValueRange{
		Values: toCells([][]string{values}),
	}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return translateGoogleError(fmt.Sprintf("Failed to update ledger range %s", a1), err)
	}

	return nil
}

func toCells(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, r := range rows {
		out[i] = make([]interface{}, len(r))
		for j, v := range r {
			out[i][j] = v
		}
	}
	return out
}

// columnName converts a 0-based column index to its A1 letters (0 -> A, 26 -> AA).
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

func translateGoogleError(message string, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return members.NewLedgerUnavailableError(fmt.Sprintf("%s (status %d)", message, apiErr.Code), err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return members.NewLedgerUnavailableError(fmt.Sprintf("%s: timed out", message), err)
	}
	return members.NewLedgerUnavailableError(message, err)
}
