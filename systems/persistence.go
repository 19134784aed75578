package systems

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	cfg "github.com/automoto/seed-hodl/config"
	"github.com/quasilyte/gdata"
)

// ErrNoStart is returned when no streak start has been saved yet
var ErrNoStart = errors.New("no saved streak start")

// StartStore persists the moment the current streak began
type StartStore interface {
	LoadStart() (time.Time, error)
	SaveStart(t time.Time) error
}

// gdataStartStore keeps the start as decimal Unix milliseconds
type gdataStartStore struct {
	manager *gdata.Manager
	key     string
}

func (s *gdataStartStore) LoadStart() (time.Time, error) {
	data, err := s.manager.LoadItem(s.key)
	if err != nil {
		return time.Time{}, fmt.Errorf("load %s: %w", s.key, err)
	}
	if len(data) == 0 {
		return time.Time{}, ErrNoStart
	}
	return parseStart(data)
}

func (s *gdataStartStore) SaveStart(t time.Time) error {
	if err := s.manager.SaveItem(s.key, formatStart(t)); err != nil {
		return fmt.Errorf("save %s: %w", s.key, err)
	}
	return nil
}

// MemoryStartStore keeps the start in memory only
type MemoryStartStore struct {
	start time.Time
	saved bool
}

func (s *MemoryStartStore) LoadStart() (time.Time, error) {
	if !s.saved {
		return time.Time{}, ErrNoStart
	}
	return s.start, nil
}

func (s *MemoryStartStore) SaveStart(t time.Time) error {
	s.start = t
	s.saved = true
	return nil
}

var startStore StartStore = &MemoryStartStore{}

// InitPersistence opens the on-disk store. On failure the in-memory store
// stays in place and the streak simply won't survive a restart.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Staking.AppName,
	})
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Staking.AppName, err)
	}
	startStore = &gdataStartStore{manager: m, key: cfg.Staking.StorageKey}
	return nil
}

// SetStartStore replaces the active store
func SetStartStore(s StartStore) {
	startStore = s
}

// LoadOrCreateStart returns the saved streak start, saving now as the start
// when nothing usable is stored.
func LoadOrCreateStart(store StartStore, now time.Time) time.Time {
	start, err := store.LoadStart()
	if err == nil {
		return start
	}
	if !errors.Is(err, ErrNoStart) {
		log.Printf("Warning: Could not load streak start, starting over: %v", err)
	}
	saveStart(store, now)
	return now
}

func saveStart(store StartStore, t time.Time) {
	if err := store.SaveStart(t); err != nil {
		log.Printf("Warning: Could not save streak start: %v", err)
	}
}

func formatStart(t time.Time) []byte {
	return []byte(strconv.FormatInt(t.UnixMilli(), 10))
}

func parseStart(data []byte) (time.Time, error) {
	ms, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse streak start %q: %w", data, err)
	}
	if ms <= 0 {
		return time.Time{}, fmt.Errorf("parse streak start %q: not a positive timestamp", data)
	}
	return time.UnixMilli(ms), nil
}
