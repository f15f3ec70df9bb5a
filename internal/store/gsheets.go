package store

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsStore backs the TabularStore with a Google Sheets spreadsheet, the
// store the application was originally built around.
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewSheetsStore authenticates with a service account credentials file and
// verifies the spreadsheet can be opened.
func NewSheetsStore(ctx context.Context, spreadsheetID, credentialsFile string) (*SheetsStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	s := &SheetsStore{svc: svc, spreadsheetID: spreadsheetID}
	if _, err := s.properties(); err != nil {
		return nil, fmt.Errorf("open spreadsheet %s: %w", spreadsheetID, err)
	}
	return s, nil
}

func (s *SheetsStore) properties() ([]*sheets.SheetProperties, error) {
	resp, err := s.svc.Spreadsheets.Get(s.spreadsheetID).
		Fields("sheets.properties.title", "sheets.properties.sheetId").Do()
	if err != nil {
		return nil, err
	}
	props := make([]*sheets.SheetProperties, 0, len(resp.Sheets))
	for _, sh := range resp.Sheets {
		props = append(props, sh.Properties)
	}
	return props, nil
}

func (s *SheetsStore) sheetID(name string) (int64, error) {
	props, err := s.properties()
	if err != nil {
		return 0, err
	}
	for _, p := range props {
		if p.Title == name {
			return p.SheetId, nil
		}
	}
	return 0, ErrSheetNotFound
}

func (s *SheetsStore) SheetExists(name string) (bool, error) {
	_, err := s.sheetID(name)
	if err == ErrSheetNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *SheetsStore) CreateSheet(name string) error {
	exists, err := s.SheetExists(name)
	if err != nil || exists {
		return err
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: name},
			},
		}},
	}
	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Do()
	return err
}

func (s *SheetsStore) ReadRows(sheet string) ([][]string, error) {
	if _, err := s.sheetID(sheet); err != nil {
		return nil, err
	}
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, sheetRange(sheet, "")).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = fmt.Sprint(v)
		}
		rows[i] = cells
	}
	return rows, nil
}

func (s *SheetsStore) WriteHeader(sheet string, header []string) error {
	if _, err := s.sheetID(sheet); err != nil {
		return err
	}
	_, err := s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, sheetRange(sheet, "A1"), valueRange(header)).
		ValueInputOption("RAW").Do()
	return err
}

func (s *SheetsStore) AppendRow(sheet string, row []string) error {
	if _, err := s.sheetID(sheet); err != nil {
		return err
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, sheetRange(sheet, "A1"), valueRange(row)).
		ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").Do()
	return err
}

func (s *SheetsStore) UpdateRowByKey(sheet, key string, row []string) error {
	rows, err := s.ReadRows(sheet)
	if err != nil {
		return err
	}
	idx := findByKey(rows, key)
	if idx < 0 {
		return ErrRowNotFound
	}
	_, err = s.svc.Spreadsheets.Values.
		Update(s.spreadsheetID, sheetRange(sheet, fmt.Sprintf("A%d", idx+1)), valueRange(row)).
		ValueInputOption("RAW").Do()
	return err
}

func (s *SheetsStore) DeleteRowByKey(sheet, key string) error {
	sheetID, err := s.sheetID(sheet)
	if err != nil {
		return err
	}
	rows, err := s.ReadRows(sheet)
	if err != nil {
		return err
	}
	idx := findByKey(rows, key)
	if idx < 0 {
		return ErrRowNotFound
	}
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(idx),
					EndIndex:   int64(idx + 1),
				},
			},
		}},
	}
	_, err = s.svc.Spreadsheets.BatchUpdate(s.spreadsheetID, req).Do()
	return err
}

// sheetRange builds an A1-notation range, quoting the sheet name so titles
// with spaces survive.
func sheetRange(sheet, ref string) string {
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if ref == "" {
		return quoted
	}
	return quoted + "!" + ref
}

func valueRange(row []string) *sheets.ValueRange {
	vals := make([]interface{}, len(row))
	for i, v := range row {
		vals[i] = v
	}
	return &sheets.ValueRange{Values: [][]interface{}{vals}}
}
