package service

import (
	"errors"
	"fmt"
	"strings"

	"go-warehouse-sheets/internal/config"
	"go-warehouse-sheets/internal/model"
	"go-warehouse-sheets/internal/store"
	"go-warehouse-sheets/internal/ws"
	"go-warehouse-sheets/pkg/validator"
)

type InventoryService interface {
	ListDepartments() ([]string, error)
	ListItems(department string) ([]model.Item, error)
	AddItem(req *model.Item) (string, error)
	UpdateItem(originalCode string, req *model.Item) error
	DeleteItem(code, department string) error
}

// inventoryService holds no item state between calls: every operation re-reads
// the relevant sheet before acting. There is no locking across the
// read-scan-write sequence, so concurrent adds can compute the same auto code.
type inventoryService struct {
	store store.TabularStore
	cfg   *config.Config
	hub   *ws.Hub
}

func NewInventoryService(st store.TabularStore, cfg *config.Config, hub *ws.Hub) InventoryService {
	return &inventoryService{
		store: st,
		cfg:   cfg,
		hub:   hub,
	}
}

func (s *inventoryService) ListDepartments() ([]string, error) {
	rows, err := s.store.ReadRows(s.cfg.DepartmentsSheet)
	if errors.Is(err, store.ErrSheetNotFound) {
		return nil, fmt.Errorf("%w: %s", model.ErrSchemaMissing, s.cfg.DepartmentsSheet)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	// Column A, rows 2 and below. Blank entries are discarded, order is kept.
	names := make([]string, 0)
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		name := strings.TrimSpace(rows[i][0])
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	// Auto-provision a tab per department so nobody has to create them by hand.
	for _, name := range names {
		if err := s.ensureDepartmentSheet(name); err != nil {
			return nil, err
		}
	}

	return names, nil
}

func (s *inventoryService) ListItems(department string) ([]model.Item, error) {
	dept := strings.TrimSpace(department)
	if dept == "" {
		return nil, fmt.Errorf("%w: department", model.ErrMissingRequiredField)
	}

	if err := s.ensureDepartmentSheet(dept); err != nil {
		return nil, err
	}

	rows, err := s.store.ReadRows(dept)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	items := make([]model.Item, 0)
	for i := 1; i < len(rows); i++ {
		items = append(items, model.ItemFromRow(dept, rows[i]))
	}
	return items, nil
}

func (s *inventoryService) AddItem(req *model.Item) (string, error) {
	trimItem(req)

	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return "", fmt.Errorf("%w: %s", model.ErrMissingRequiredField, errs[0].FailedField)
	}

	if err := s.ensureDepartmentSheet(req.Department); err != nil {
		return "", err
	}

	rows, err := s.store.ReadRows(req.Department)
	if err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	codes := codeColumn(rows)

	code := req.Code
	if code == "" {
		prefix := DeptPrefix(req.Department)
		if prefix == "" {
			return "", fmt.Errorf("%w: %q", model.ErrInvalidDepartment, req.Department)
		}
		code = NextItemCode(prefix, codes)
	}

	for _, c := range codes {
		if c == code {
			return "", fmt.Errorf("%w: %s in %s", model.ErrDuplicateCode, code, req.Department)
		}
	}

	req.Code = code
	req.Status = model.StatusForStock(req.Stock, s.cfg.LowStockThreshold)

	if err := s.store.AppendRow(req.Department, req.Row()); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	s.hub.NotifyChange("item_added", req.Department, code)
	return code, nil
}

func (s *inventoryService) UpdateItem(originalCode string, req *model.Item) error {
	originalCode = strings.TrimSpace(originalCode)
	trimItem(req)

	if originalCode == "" {
		return fmt.Errorf("%w: originalCode", model.ErrMissingRequiredField)
	}
	if req.Code == "" {
		return fmt.Errorf("%w: code", model.ErrMissingRequiredField)
	}
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return fmt.Errorf("%w: %s", model.ErrMissingRequiredField, errs[0].FailedField)
	}

	if err := s.ensureDepartmentSheet(req.Department); err != nil {
		return err
	}

	// A changed code must not collide with any other row in the tab.
	if req.Code != originalCode {
		rows, err := s.store.ReadRows(req.Department)
		if err != nil {
			return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
		}
		for _, c := range codeColumn(rows) {
			if c == req.Code {
				return fmt.Errorf("%w: %s in %s", model.ErrDuplicateCode, req.Code, req.Department)
			}
		}
	}

	req.Status = model.StatusForStock(req.Stock, s.cfg.LowStockThreshold)

	err := s.store.UpdateRowByKey(req.Department, originalCode, req.Row())
	if errors.Is(err, store.ErrRowNotFound) {
		return fmt.Errorf("%w: %s in %s", model.ErrNotFound, originalCode, req.Department)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	s.hub.NotifyChange("item_updated", req.Department, req.Code)
	return nil
}

func (s *inventoryService) DeleteItem(code, department string) error {
	code = strings.TrimSpace(code)
	dept := strings.TrimSpace(department)
	if code == "" {
		return fmt.Errorf("%w: code", model.ErrMissingRequiredField)
	}
	if dept == "" {
		return fmt.Errorf("%w: department", model.ErrMissingRequiredField)
	}

	if err := s.ensureDepartmentSheet(dept); err != nil {
		return err
	}

	err := s.store.DeleteRowByKey(dept, code)
	if errors.Is(err, store.ErrRowNotFound) {
		return fmt.Errorf("%w: %s in %s", model.ErrNotFound, code, dept)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}

	s.hub.NotifyChange("item_deleted", dept, code)
	return nil
}

// ensureDepartmentSheet creates the department tab if absent and rewrites the
// header row whenever it does not match the canonical schema.
func (s *inventoryService) ensureDepartmentSheet(name string) error {
	exists, err := s.store.SheetExists(name)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	if !exists {
		if err := s.store.CreateSheet(name); err != nil {
			return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
		}
	}

	rows, err := s.store.ReadRows(name)
	if err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	if len(rows) > 0 && headerMatches(rows[0]) {
		return nil
	}
	if err := s.store.WriteHeader(name, model.DepartmentHeaders); err != nil {
		return fmt.Errorf("%w: %v", model.ErrStoreUnavailable, err)
	}
	return nil
}

func headerMatches(row []string) bool {
	for i, want := range model.DepartmentHeaders {
		if i >= len(row) || strings.TrimSpace(row[i]) != want {
			return false
		}
	}
	return true
}

// codeColumn collects the trimmed column-A values of the data rows.
func codeColumn(rows [][]string) []string {
	codes := make([]string, 0, len(rows))
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) == 0 {
			continue
		}
		codes = append(codes, strings.TrimSpace(rows[i][0]))
	}
	return codes
}

func trimItem(it *model.Item) {
	it.Code = strings.TrimSpace(it.Code)
	it.Name = strings.TrimSpace(it.Name)
	it.Category = strings.TrimSpace(it.Category)
	it.Department = strings.TrimSpace(it.Department)
	it.Unit = strings.TrimSpace(it.Unit)
	it.Image = strings.TrimSpace(it.Image)
	it.Status = ""
}
