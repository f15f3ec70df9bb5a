package store

import (
	"strings"
	"sync"
)

// MemoryStore is a map-backed TabularStore used by tests and the memory driver.
// The mutex only keeps the maps coherent; it provides no cross-call atomicity.
type MemoryStore struct {
	mu     sync.Mutex
	sheets map[string][][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sheets: make(map[string][][]string)}
}

func (m *MemoryStore) SheetExists(name string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.sheets[name]
	return ok, nil
}

func (m *MemoryStore) CreateSheet(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sheets[name]; !ok {
		m.sheets[name] = [][]string{}
	}
	return nil
}

func (m *MemoryStore) ReadRows(sheet string) ([][]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[sheet]
	if !ok {
		return nil, ErrSheetNotFound
	}
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (m *MemoryStore) WriteHeader(sheet string, header []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[sheet]
	if !ok {
		return ErrSheetNotFound
	}
	h := append([]string(nil), header...)
	if len(rows) == 0 {
		m.sheets[sheet] = [][]string{h}
		return nil
	}
	rows[0] = h
	return nil
}

func (m *MemoryStore) AppendRow(sheet string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[sheet]
	if !ok {
		return ErrSheetNotFound
	}
	m.sheets[sheet] = append(rows, append([]string(nil), row...))
	return nil
}

func (m *MemoryStore) UpdateRowByKey(sheet, key string, row []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[sheet]
	if !ok {
		return ErrSheetNotFound
	}
	idx := findByKey(rows, key)
	if idx < 0 {
		return ErrRowNotFound
	}
	rows[idx] = append([]string(nil), row...)
	return nil
}

func (m *MemoryStore) DeleteRowByKey(sheet, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rows, ok := m.sheets[sheet]
	if !ok {
		return ErrSheetNotFound
	}
	idx := findByKey(rows, key)
	if idx < 0 {
		return ErrRowNotFound
	}
	m.sheets[sheet] = append(rows[:idx], rows[idx+1:]...)
	return nil
}

// findByKey returns the index of the first data row whose column A matches the
// trimmed key, skipping the header row. Returns -1 when absent.
func findByKey(rows [][]string, key string) int {
	target := strings.TrimSpace(key)
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) > 0 && strings.TrimSpace(rows[i][0]) == target {
			return i
		}
	}
	return -1
}
