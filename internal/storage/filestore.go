package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mrenard/pointage/internal/model"
)

const queueFile = "pending.json"

// FileStore persists the queue and timesheets as plain files under a
// single data directory: pending.json plus one <year>.csv per year.
type FileStore struct {
	base string
}

// NewFileStore creates a FileStore rooted at base, creating the
// directory if needed.
func NewFileStore(base string) (*FileStore, error) {
	if err := os.MkdirAll(base, 0o700); err != nil {
		return nil, fmt.Errorf("creating data directory %s: %w", base, err)
	}
	return &FileStore{base: base}, nil
}

// ReadQueue loads pending.json. Missing file yields an empty queue.
func (s *FileStore) ReadQueue() ([]model.QuizzDate, error) {
	path := filepath.Join(s.base, queueFile)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.QuizzDate{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading queue %s: %w", path, err)
	}

	var days []model.QuizzDate
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("corrupt queue %s: %w", path, err)
	}
	return days, nil
}

// WriteQueue replaces pending.json with the given days.
func (s *FileStore) WriteQueue(days []model.QuizzDate) error {
	data, err := json.MarshalIndent(days, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling queue: %w", err)
	}
	return s.atomicWrite(filepath.Join(s.base, queueFile), data)
}

// ReadTimesheet loads <year>.csv. Missing file yields "".
func (s *FileStore) ReadTimesheet(year int) (string, error) {
	path := filepath.Join(s.base, timesheetName(year))
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading timesheet %s: %w", path, err)
	}
	return string(data), nil
}

// WriteTimesheet replaces <year>.csv with the given text.
func (s *FileStore) WriteTimesheet(year int, text string) error {
	return s.atomicWrite(filepath.Join(s.base, timesheetName(year)), []byte(text))
}

// ListTimesheets returns the yearly CSV file names, sorted ascending.
func (s *FileStore) ListTimesheets() ([]string, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return nil, fmt.Errorf("listing data directory %s: %w", s.base, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// TimesheetPath returns the absolute path of a yearly file.
func (s *FileStore) TimesheetPath(name string) string {
	return filepath.Join(s.base, name)
}

// DeleteTimesheet removes one yearly file by name.
func (s *FileStore) DeleteTimesheet(name string) error {
	if err := os.Remove(filepath.Join(s.base, name)); err != nil {
		return fmt.Errorf("deleting timesheet %s: %w", name, err)
	}
	return nil
}

// atomicWrite writes to a temp file then renames over the target.
func (s *FileStore) atomicWrite(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing temp file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("renaming temp file %s: %w", tmp, err)
	}
	return nil
}

// timesheetName is the deterministic file name for a year's archive.
func timesheetName(year int) string {
	return fmt.Sprintf("%04d.csv", year)
}
