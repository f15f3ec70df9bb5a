// Package store abstracts the spreadsheet behind a small tabular interface so
// the service never sees positional row numbers or a concrete backend.
package store

import "errors"

var (
	ErrSheetNotFound = errors.New("sheet not found")
	ErrRowNotFound   = errors.New("row not found")
)

// TabularStore is the row/column persistence collaborator. Sheets hold a header
// in row 1 and data rows below it. Mutations that address an existing row match
// on the trimmed key column (column A), never on a row offset, and return
// ErrRowNotFound when no data row carries the key.
type TabularStore interface {
	SheetExists(name string) (bool, error)
	CreateSheet(name string) error

	// ReadRows returns the whole data range of a sheet, header included.
	// A missing sheet yields ErrSheetNotFound.
	ReadRows(sheet string) ([][]string, error)

	WriteHeader(sheet string, header []string) error
	AppendRow(sheet string, row []string) error
	UpdateRowByKey(sheet, key string, row []string) error
	DeleteRowByKey(sheet, key string) error
}
