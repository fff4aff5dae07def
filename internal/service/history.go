package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"librisvc/internal/model"
)

// exportDateLayout renders dates as "MMM dd, yyyy", e.g. "Mar 15, 2024".
const exportDateLayout = "Jan 02, 2006"

var exportHeader = []string{
	"Borrower", "Class", "Document", "Borrow Date", "Due Date",
	"Return Date", "Status", "Late Fee",
}

// ExportCSV renders the filtered history. Missing return dates and zero fees
// are rendered as "-"; fees as "Rp 5,000". The fee column can contain a
// comma, so rows go through a proper CSV writer.
func (s *borrowingService) ExportCSV(ctx context.Context, f HistoryFilter) ([]byte, error) {
	recs, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, rec := range recs {
		if err := w.Write(exportRow(rec, now)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportFilename follows the front-end convention:
// borrowing-history-<today>.csv with today in the export date format.
func (s *borrowingService) ExportFilename() string {
	return fmt.Sprintf("borrowing-history-%s.csv", s.now().UTC().Format(exportDateLayout))
}

func exportRow(rec model.Borrowing, now time.Time) []string {
	returnDate := "-"
	if rec.ReturnDate != nil {
		returnDate = rec.ReturnDate.Format(exportDateLayout)
	}
	fee := "-"
	if rec.LateFee != nil && *rec.LateFee > 0 {
		fee = "Rp " + humanize.Comma(*rec.LateFee)
	}
	return []string{
		rec.Borrower,
		rec.Class,
		rec.DocumentTitle,
		rec.BorrowDate.Format(exportDateLayout),
		rec.DueDate.Format(exportDateLayout),
		returnDate,
		exportStatus(rec, now),
		fee,
	}
}

func exportStatus(rec model.Borrowing, now time.Time) string {
	switch {
	case rec.Status == model.BorrowingReturned:
		return "Returned"
	case Overdue(rec, now):
		return "Overdue"
	default:
		return "Active"
	}
}
