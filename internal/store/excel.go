package store

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
)

// ExcelStore persists sheets in a local .xlsx workbook via excelize. The
// workbook is reopened on every operation so each call sees the current file
// contents, mirroring how the service re-reads the store before acting.
type ExcelStore struct {
	mu   sync.Mutex
	path string
}

// NewExcelStore opens the workbook at path, creating an empty one if absent.
func NewExcelStore(path string) (*ExcelStore, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		f := excelize.NewFile()
		defer f.Close()
		if err := f.SaveAs(path); err != nil {
			return nil, fmt.Errorf("create workbook %s: %w", path, err)
		}
	}
	s := &ExcelStore{path: path}
	// Verify the file is actually readable as a workbook.
	if err := s.withFile(false, func(f *excelize.File) error { return nil }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ExcelStore) withFile(save bool, fn func(f *excelize.File) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return fmt.Errorf("open workbook %s: %w", s.path, err)
	}
	defer f.Close()

	if err := fn(f); err != nil {
		return err
	}
	if save {
		return f.Save()
	}
	return nil
}

func (s *ExcelStore) SheetExists(name string) (bool, error) {
	var exists bool
	err := s.withFile(false, func(f *excelize.File) error {
		idx, err := f.GetSheetIndex(name)
		if err != nil {
			return err
		}
		exists = idx >= 0
		return nil
	})
	return exists, err
}

func (s *ExcelStore) CreateSheet(name string) error {
	return s.withFile(true, func(f *excelize.File) error {
		idx, err := f.GetSheetIndex(name)
		if err != nil {
			return err
		}
		if idx >= 0 {
			return nil
		}
		_, err = f.NewSheet(name)
		return err
	})
}

func (s *ExcelStore) ReadRows(sheet string) ([][]string, error) {
	var rows [][]string
	err := s.withFile(false, func(f *excelize.File) error {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return err
		}
		if idx < 0 {
			return ErrSheetNotFound
		}
		rows, err = f.GetRows(sheet)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *ExcelStore) WriteHeader(sheet string, header []string) error {
	return s.withFile(true, func(f *excelize.File) error {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return err
		}
		if idx < 0 {
			return ErrSheetNotFound
		}
		return f.SetSheetRow(sheet, "A1", rowValues(header))
	})
}

func (s *ExcelStore) AppendRow(sheet string, row []string) error {
	return s.withFile(true, func(f *excelize.File) error {
		idx, err := f.GetSheetIndex(sheet)
		if err != nil {
			return err
		}
		if idx < 0 {
			return ErrSheetNotFound
		}
		rows, err := f.GetRows(sheet)
		if err != nil {
			return err
		}
		cellRef := fmt.Sprintf("A%d", len(rows)+1)
		return f.SetSheetRow(sheet, cellRef, rowValues(row))
	})
}

func (s *ExcelStore) UpdateRowByKey(sheet, key string, row []string) error {
	return s.withFile(true, func(f *excelize.File) error {
		rowNum, err := findRowNum(f, sheet, key)
		if err != nil {
			return err
		}
		return f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), rowValues(row))
	})
}

func (s *ExcelStore) DeleteRowByKey(sheet, key string) error {
	return s.withFile(true, func(f *excelize.File) error {
		rowNum, err := findRowNum(f, sheet, key)
		if err != nil {
			return err
		}
		return f.RemoveRow(sheet, rowNum)
	})
}

// findRowNum resolves a key to the workbook's native 1-based row number,
// skipping the header row.
func findRowNum(f *excelize.File, sheet, key string) (int, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		return 0, ErrSheetNotFound
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return 0, err
	}
	target := strings.TrimSpace(key)
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > 0 && strings.TrimSpace(rows[i][0]) == target {
			return i + 1, nil
		}
	}
	return 0, ErrRowNotFound
}

func rowValues(row []string) *[]interface{} {
	vals := make([]interface{}, len(row))
	for i, v := range row {
		vals[i] = v
	}
	return &vals
}
