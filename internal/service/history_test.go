package service

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"librisvc/internal/model"
)

func TestExportCSV(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	f := newLedgerFixture(t, now)

	// One record returned five days late, one still active.
	lateRec := f.borrow(t, now.AddDate(0, 0, 1))
	f.ledger.now = func() time.Time { return now.AddDate(0, 0, 6) }
	_, err := f.ledger.Return(ctx, lateRec.ID)
	require.NoError(t, err)

	john, err := f.users.Add(ctx, AddUserInput{Name: "John Doe", Email: "john@example.com", Role: model.RoleTeacher})
	require.NoError(t, err)
	_, err = f.ledger.Create(ctx, CreateBorrowingInput{
		UserID: john.ID, Class: "Staff", DocumentID: f.doc.ID,
		BorrowDate: now, DueDate: now.AddDate(0, 0, 14),
	})
	require.NoError(t, err)

	data, err := f.ledger.ExportCSV(ctx, HistoryFilter{})
	require.NoError(t, err)
	text := strings.TrimRight(string(data), "\n")

	lines := strings.Split(text, "\n")
	require.Len(t, lines, 3, "header plus two rows")
	assert.Equal(t, "Borrower,Class,Document,Borrow Date,Due Date,Return Date,Status,Late Fee", lines[0])

	rows, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Newest first: the active record is the first row.
	active := rows[1]
	assert.Equal(t, "John Doe", active[0])
	assert.Equal(t, "Mar 15, 2024", active[3])
	assert.Equal(t, "Mar 29, 2024", active[4])
	assert.Equal(t, "-", active[5])
	assert.Equal(t, "Active", active[6])
	assert.Equal(t, "-", active[7])
	assert.True(t, strings.HasSuffix(lines[1], "Active,-"))

	late := rows[2]
	assert.Equal(t, "Sarah Smith", late[0])
	assert.Equal(t, "Mar 21, 2024", late[5])
	assert.Equal(t, "Returned", late[6])
	assert.Equal(t, "Rp 5,000", late[7])
}

func TestExportStatusColumn(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	active := model.Borrowing{Status: model.BorrowingActive, DueDate: now.AddDate(0, 0, 7)}
	assert.Equal(t, "Active", exportStatus(active, now))

	overdue := model.Borrowing{Status: model.BorrowingActive, DueDate: now.AddDate(0, 0, -1)}
	assert.Equal(t, "Overdue", exportStatus(overdue, now))

	returned := model.Borrowing{Status: model.BorrowingReturned, DueDate: now.AddDate(0, 0, -1)}
	assert.Equal(t, "Returned", exportStatus(returned, now))
}

func TestExportRowZeroFee(t *testing.T) {
	now := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	fee := int64(0)
	rec := model.Borrowing{
		Borrower: "Sarah Smith", Class: "5A", DocumentTitle: "Atlas",
		BorrowDate: now, DueDate: now.AddDate(0, 0, 14),
		ReturnDate: &now, LateFee: &fee,
		Status: model.BorrowingReturned,
	}
	row := exportRow(rec, now)
	assert.Equal(t, "-", row[7], "on-time returns show no fee")
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	f := newLedgerFixture(t, now)

	assert.Equal(t, "borrowing-history-Mar 15, 2024.csv", f.ledger.ExportFilename())
}
