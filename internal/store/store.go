// Package store persists expenses and the income record as two JSON
// documents in a data directory.
//
// Every read loads a whole document and every write replaces it. Writes go
// to a temporary file first which is then renamed over the target.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/envelope-zero/tracker/internal/models"
	"github.com/rs/zerolog/log"
)

const (
	ExpensesFile = "expenses.json"
	IncomeFile   = "income.json"
)

// Store owns the two backing documents.
//
// A mutex per document serializes read-modify-write cycles within the
// process. Several processes sharing one data directory can still
// overwrite each other's changes.
type Store struct {
	dir string
	now func() time.Time

	expensesMu sync.Mutex
	incomeMu   sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the function used to determine the current time.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New returns a Store for the data directory dir.
//
// It does not touch the file system, call Init for that.
func New(dir string, opts ...Option) *Store {
	s := &Store{
		dir: dir,
		now: time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Dir returns the data directory.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) expensesPath() string {
	return filepath.Join(s.dir, ExpensesFile)
}

func (s *Store) incomePath() string {
	return filepath.Join(s.dir, IncomeFile)
}

// Init creates the data directory and both documents with their defaults.
//
// Existing documents are left untouched, so calling Init repeatedly is safe.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("could not create data directory: %w", err)
	}

	s.expensesMu.Lock()
	err := createIfMissing(s.expensesPath(), []models.Expense{})
	s.expensesMu.Unlock()
	if err != nil {
		return err
	}

	s.incomeMu.Lock()
	defer s.incomeMu.Unlock()
	return createIfMissing(s.incomePath(), models.DefaultIncome(s.now()))
}

// Healthy reports an error if the data directory is not usable.
func (s *Store) Healthy() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", s.dir)
	}

	return nil
}

// LoadExpenses returns all stored expenses in stored order.
//
// A missing or unparseable document yields an empty list.
func (s *Store) LoadExpenses() []models.Expense {
	s.expensesMu.Lock()
	defer s.expensesMu.Unlock()

	return s.loadExpenses()
}

// SaveExpenses replaces the stored expenses.
func (s *Store) SaveExpenses(expenses []models.Expense) error {
	s.expensesMu.Lock()
	defer s.expensesMu.Unlock()

	return s.saveExpenses(expenses)
}

// UpdateExpenses loads the expenses, passes them to fn and stores the
// result, all while holding the lock for the expenses document.
//
// If fn returns an error, nothing is written and the error is returned.
func (s *Store) UpdateExpenses(fn func([]models.Expense) ([]models.Expense, error)) error {
	s.expensesMu.Lock()
	defer s.expensesMu.Unlock()

	expenses, err := fn(s.loadExpenses())
	if err != nil {
		return err
	}

	return s.saveExpenses(expenses)
}

// LoadIncome returns the stored income.
//
// A missing or unparseable document yields the default income.
func (s *Store) LoadIncome() models.Income {
	s.incomeMu.Lock()
	defer s.incomeMu.Unlock()

	return s.loadIncome()
}

// SaveIncome replaces the stored income.
func (s *Store) SaveIncome(income models.Income) error {
	s.incomeMu.Lock()
	defer s.incomeMu.Unlock()

	return s.saveIncome(income)
}

// UpdateIncome is the income counterpart of UpdateExpenses.
func (s *Store) UpdateIncome(fn func(models.Income) (models.Income, error)) error {
	s.incomeMu.Lock()
	defer s.incomeMu.Unlock()

	income, err := fn(s.loadIncome())
	if err != nil {
		return err
	}

	return s.saveIncome(income)
}

func (s *Store) loadExpenses() []models.Expense {
	expenses := []models.Expense{}
	if !readJSON(s.expensesPath(), &expenses) || expenses == nil {
		return []models.Expense{}
	}

	return expenses
}

func (s *Store) saveExpenses(expenses []models.Expense) error {
	if expenses == nil {
		expenses = []models.Expense{}
	}

	return writeJSON(s.expensesPath(), expenses)
}

func (s *Store) loadIncome() models.Income {
	var income *models.Income
	if !readJSON(s.incomePath(), &income) || income == nil {
		return models.DefaultIncome(s.now())
	}

	return *income
}

func (s *Store) saveIncome(income models.Income) error {
	return writeJSON(s.incomePath(), income)
}

// readJSON decodes the file at path into target.
//
// It reports false when the file does not exist or does not hold valid
// JSON for target. The caller is expected to fall back to a default.
func readJSON(path string, target any) bool {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", path).Msg("document does not exist, using default")
		return false
	}

	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("document could not be read, using default")
		return false
	}

	if err := json.Unmarshal(data, target); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("document could not be parsed, using default")
		return false
	}

	return true
}

// writeJSON writes value as indented JSON to path+".tmp" and renames it to path.
func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: could not encode %s: %v", models.ErrGeneral, filepath.Base(path), err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("%w: could not write %s: %v", models.ErrGeneral, filepath.Base(path), err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("%w: could not replace %s: %v", models.ErrGeneral, filepath.Base(path), err)
	}

	return nil
}

func createIfMissing(path string, value any) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("could not check %s: %w", path, err)
	}

	log.Info().Str("path", path).Msg("creating document with defaults")
	return writeJSON(path, value)
}
