// Package settings owns the process-wide configuration store, including the
// fee-calculation policy consulted by billing.
package settings

import (
	"errors"
	"strings"
	"sync"

	"tuition-center/app/models"
)

// FeeMethodKey is the settings key holding the active fee-calculation method.
const FeeMethodKey = "fee_calculation_method"

// ErrNotFound is returned for operations on a key that does not exist.
var ErrNotFound = errors.New("setting not found")

// Repository is the persistence collaborator behind the store. Upsert must be
// atomic per key (the SQL implementation relies on a unique constraint plus
// ON CONFLICT rather than check-then-act). Delete returns ErrNotFound when
// the key does not exist.
type Repository interface {
	List() ([]*models.Setting, error)
	Upsert(s *models.Setting) (*models.Setting, error)
	Delete(key string) error
}

// Store caches all settings in memory and is the single point of truth before
// falling back to defaults. The cache is dropped after every successful write
// so the next read reflects it (read-your-writes).
type Store struct {
	repo Repository

	mu     sync.RWMutex
	cache  map[string]*models.Setting
	loaded bool
}

// NewStore returns a Store backed by repo.
func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return nil
	}
	list, err := s.repo.List()
	if err != nil {
		return err
	}
	s.cache = make(map[string]*models.Setting, len(list))
	for _, st := range list {
		s.cache[st.Key] = st
	}
	s.loaded = true
	return nil
}

func (s *Store) invalidate() {
	s.mu.Lock()
	s.loaded = false
	s.cache = nil
	s.mu.Unlock()
}

// Get returns the value stored under key. The second return is false when no
// such setting exists; absence is a valid state, not an error.
func (s *Store) Get(key string) (string, bool, error) {
	if err := s.load(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	st, ok := s.cache[key]
	if !ok {
		return "", false, nil
	}
	return st.Value, true, nil
}

// All returns every stored setting.
func (s *Store) All() ([]*models.Setting, error) {
	if err := s.load(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	list := make([]*models.Setting, 0, len(s.cache))
	for _, st := range s.cache {
		list = append(list, st)
	}
	return list, nil
}

// Upsert creates the setting if the key is absent, otherwise updates its
// value and description. Errors from the repository propagate unmodified.
func (s *Store) Upsert(key, value, description string) (*models.Setting, error) {
	st, err := s.repo.Upsert(&models.Setting{Key: key, Value: value, Description: description})
	if err != nil {
		return nil, err
	}
	s.invalidate()
	return st, nil
}

// Delete removes the setting under key. Deleting a missing key returns
// ErrNotFound.
func (s *Store) Delete(key string) error {
	if err := s.repo.Delete(key); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// FeeCalculationMethod returns the active fee policy. Only a stored value
// exactly matching PER_CYCLE selects per-cycle billing; anything else, a read
// failure, or an absent key falls back to the PER_SESSION default. Legacy
// rows written in lower case are folded before comparison.
func (s *Store) FeeCalculationMethod() models.FeeCalculationMethod {
	value, ok, err := s.Get(FeeMethodKey)
	if err != nil || !ok {
		return models.PerSession
	}
	if models.FeeCalculationMethod(strings.ToUpper(value)) == models.PerCycle {
		return models.PerCycle
	}
	return models.PerSession
}

// SetFeeCalculationMethod persists the fee policy under FeeMethodKey.
func (s *Store) SetFeeCalculationMethod(method models.FeeCalculationMethod) error {
	_, err := s.Upsert(FeeMethodKey, string(method), "Fee calculation method: PER_SESSION or PER_CYCLE")
	return err
}
