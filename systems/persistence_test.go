package systems

import (
	"errors"
	"testing"
	"time"
)

type failingStore struct {
	loadErr error
	saveErr error
	saved   []time.Time
}

func (s *failingStore) LoadStart() (time.Time, error) {
	return time.Time{}, s.loadErr
}

func (s *failingStore) SaveStart(t time.Time) error {
	s.saved = append(s.saved, t)
	return s.saveErr
}

func TestStartRoundTrip(t *testing.T) {
	start := time.UnixMilli(1735732800123)
	got, err := parseStart(formatStart(start))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(start) {
		t.Errorf("round trip = %v, want %v", got, start)
	}
}

func TestParseStartTrimsWhitespace(t *testing.T) {
	got, err := parseStart([]byte(" 1700000000000\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got.UnixMilli() != 1700000000000 {
		t.Errorf("got %d", got.UnixMilli())
	}
}

func TestParseStartRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "yesterday", "12.5", "0", "-5"} {
		if _, err := parseStart([]byte(in)); err == nil {
			t.Errorf("parseStart(%q) succeeded", in)
		}
	}
}

func TestLoadOrCreateStartUsesSaved(t *testing.T) {
	store := &MemoryStartStore{}
	saved := time.UnixMilli(1700000000000)
	_ = store.SaveStart(saved)

	got := LoadOrCreateStart(store, saved.Add(time.Hour))
	if !got.Equal(saved) {
		t.Errorf("got %v, want %v", got, saved)
	}
}

func TestLoadOrCreateStartSavesNowWhenEmpty(t *testing.T) {
	store := &MemoryStartStore{}
	now := time.UnixMilli(1700000000000)

	got := LoadOrCreateStart(store, now)
	if !got.Equal(now) {
		t.Errorf("got %v, want %v", got, now)
	}
	saved, err := store.LoadStart()
	if err != nil || !saved.Equal(now) {
		t.Errorf("saved = %v, %v; want %v", saved, err, now)
	}
}

func TestLoadOrCreateStartRecoversFromBrokenStore(t *testing.T) {
	store := &failingStore{
		loadErr: errors.New("disk on fire"),
		saveErr: errors.New("still on fire"),
	}
	now := time.UnixMilli(1700000000000)

	got := LoadOrCreateStart(store, now)
	if !got.Equal(now) {
		t.Errorf("got %v, want %v", got, now)
	}
	if len(store.saved) != 1 {
		t.Errorf("save attempts = %d, want 1", len(store.saved))
	}
}

func TestMemoryStartStoreEmpty(t *testing.T) {
	_, err := (&MemoryStartStore{}).LoadStart()
	if !errors.Is(err, ErrNoStart) {
		t.Errorf("err = %v, want ErrNoStart", err)
	}
}
