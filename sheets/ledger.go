package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ShunTr-dev/socios-ajerga/members"
)

var _ members.Ledger = &Ledger{}

// Ledger stores one row per applicant in a Table whose first row is the header.
// When an email appears on more than one row only the first is ever read or patched.
type Ledger struct {
	table Table
}

func NewLedger(table Table) *Ledger {
	return &Ledger{table: table}
}

// EnsureHeader writes the header row to an empty sheet.
func (l *Ledger) EnsureHeader(ctx context.Context) error {
	rows, err := l.readRows(ctx)
	if err != nil {
		return err
	}

	if len(rows) > 0 {
		return nil
	}

	return l.appendRows(ctx, [][]string{members.Header})
}

func (l *Ledger) AppendApplicant(ctx context.Context, row members.LedgerRow) error {
	return l.appendRows(ctx, [][]string{row.Values()})
}

func (l *Ledger) FindRowByEmail(ctx context.Context, email string) (members.RowLocation, bool, error) {
	rows, err := l.readRows(ctx)
	if err != nil {
		return members.RowLocation{}, false, err
	}

	loc, ok := findRowByEmail(rows, email)
	return loc, ok, nil
}

func findRowByEmail(rows [][]string, email string) (members.RowLocation, bool) {
	email = members.NormalizeEmail(email)

	// row 0 is the header
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) > members.COL_EMAIL && members.NormalizeEmail(row[members.COL_EMAIL]) == email {
			return members.RowLocation{Index: i, Values: row}, true
		}
	}

	return members.RowLocation{}, false
}

func (l *Ledger) UpdatePaymentState(ctx context.Context, email string, state members.PaymentState, paidAt time.Time) error {
	loc, ok, err := l.FindRowByEmail(ctx, email)
	if err != nil {
		return err
	}
	if !ok {
		return members.NewMemberNotFoundError(email)
	}

	return l.updateCells(ctx, loc.SheetRow(), members.COL_STATE, []string{
		string(state),
		members.FormatPaidAt(state, &paidAt),
	})
}

func (l *Ledger) ListApplicants(ctx context.Context) ([]members.Record, error) {
	rows, err := l.readRows(ctx)
	if err != nil {
		return nil, err
	}

	return rowsToRecords(rows), nil
}

func rowsToRecords(rows [][]string) []members.Record {
	if len(rows) == 0 {
		return []members.Record{}
	}

	header := rows[0]
	records := make([]members.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(members.Record, len(header))
		for i, name := range header {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}

	return records
}

func (l *Ledger) readRows(ctx context.Context) ([][]string, error) {
	rows, err := l.table.ReadRows(ctx)
	if err != nil {
		return nil, asLedgerError("Failed to read ledger", err)
	}
	return rows, nil
}

func (l *Ledger) appendRows(ctx context.Context, rows [][]string) error {
	err := l.table.AppendRows(ctx, rows)
	if err != nil {
		return asLedgerError("Failed to append to ledger", err)
	}
	return nil
}

func (l *Ledger) updateCells(ctx context.Context, sheetRow int, firstCol int, values []string) error {
	err := l.table.UpdateCells(ctx, sheetRow, firstCol, values)
	if err != nil {
		return asLedgerError(fmt.Sprintf("Failed to update ledger row %d", sheetRow), err)
	}
	return nil
}

// asLedgerError keeps members errors from the table as they are and reports
// anything else as the ledger being unavailable.
func asLedgerError(message string, err error) error {
	var membersErr *members.Error
	if errors.As(err, &membersErr) {
		return err
	}
	return members.NewLedgerUnavailableError(message, err)
}
