package store

import (
	"errors"
	"testing"
)

func newSeededMemory(t *testing.T) *MemoryStore {
	t.Helper()
	m := NewMemoryStore()
	if err := m.CreateSheet("Warehouse"); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteHeader("Warehouse", []string{"Item Code", "Item Name"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendRow("Warehouse", []string{"WH-0001", "Shelf"}); err != nil {
		t.Fatal(err)
	}
	if err := m.AppendRow("Warehouse", []string{"WH-0002", "Rack"}); err != nil {
		t.Fatal(err)
	}
	return m
}

func TestMemoryMissingSheet(t *testing.T) {
	m := NewMemoryStore()

	if _, err := m.ReadRows("nope"); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("ReadRows: want ErrSheetNotFound, got %v", err)
	}
	if err := m.AppendRow("nope", []string{"x"}); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("AppendRow: want ErrSheetNotFound, got %v", err)
	}
	if err := m.WriteHeader("nope", []string{"x"}); !errors.Is(err, ErrSheetNotFound) {
		t.Errorf("WriteHeader: want ErrSheetNotFound, got %v", err)
	}
}

func TestMemoryUpdateRowByKey(t *testing.T) {
	m := newSeededMemory(t)

	if err := m.UpdateRowByKey("Warehouse", "WH-0002", []string{"WH-0002", "Tall Rack"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := m.ReadRows("Warehouse")
	if err != nil {
		t.Fatal(err)
	}
	if rows[2][1] != "Tall Rack" {
		t.Errorf("row not rewritten: %v", rows[2])
	}

	if err := m.UpdateRowByKey("Warehouse", "WH-0404", nil); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("want ErrRowNotFound, got %v", err)
	}
}

func TestMemoryKeyMatchTrimsAndSkipsHeader(t *testing.T) {
	m := newSeededMemory(t)

	// Keys are matched trimmed.
	if err := m.UpdateRowByKey("Warehouse", "  WH-0001  ", []string{"WH-0001", "Wide Shelf"}); err != nil {
		t.Fatalf("trimmed key did not match: %v", err)
	}

	// The header row never matches as a key.
	if err := m.DeleteRowByKey("Warehouse", "Item Code"); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("header row matched as key: %v", err)
	}
}

func TestMemoryDeleteRowByKey(t *testing.T) {
	m := newSeededMemory(t)

	if err := m.DeleteRowByKey("Warehouse", "WH-0001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := m.ReadRows("Warehouse")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want header + 1 row, got %d rows", len(rows))
	}
	if rows[1][0] != "WH-0002" {
		t.Errorf("wrong row removed: %v", rows[1])
	}

	if err := m.DeleteRowByKey("Warehouse", "WH-0001"); !errors.Is(err, ErrRowNotFound) {
		t.Errorf("want ErrRowNotFound, got %v", err)
	}
}

func TestMemoryReadReturnsCopies(t *testing.T) {
	m := newSeededMemory(t)

	rows, err := m.ReadRows("Warehouse")
	if err != nil {
		t.Fatal(err)
	}
	rows[1][0] = "mutated"

	again, err := m.ReadRows("Warehouse")
	if err != nil {
		t.Fatal(err)
	}
	if again[1][0] != "WH-0001" {
		t.Errorf("ReadRows leaked internal state: %v", again[1])
	}
}

func TestMemoryWriteHeaderOverwrites(t *testing.T) {
	m := newSeededMemory(t)

	if err := m.WriteHeader("Warehouse", []string{"Code", "Name"}); err != nil {
		t.Fatal(err)
	}
	rows, err := m.ReadRows("Warehouse")
	if err != nil {
		t.Fatal(err)
	}
	if rows[0][0] != "Code" || len(rows) != 3 {
		t.Errorf("header overwrite touched data rows: %v", rows)
	}
}

func TestMemoryCreateSheetIsIdempotent(t *testing.T) {
	m := newSeededMemory(t)

	if err := m.CreateSheet("Warehouse"); err != nil {
		t.Fatal(err)
	}
	rows, err := m.ReadRows("Warehouse")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Errorf("CreateSheet on existing sheet dropped rows: %d", len(rows))
	}
}
