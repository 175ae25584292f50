package store

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-lookup/internal/metrics"
)

const (
	// DefaultHistoryKey is the key the history document is persisted under.
	DefaultHistoryKey = "weatherSearchHistory"
	// MaxHistoryEntries bounds the history length.
	MaxHistoryEntries = 5
)

// HistoryStore is the most-recent-first list of accepted location display
// names. A name appears at most once; recording it again moves it to the
// front. Storage failures are logged and never returned.
type HistoryStore struct {
	kv  KV
	key string
	log logrus.FieldLogger

	mu      sync.Mutex
	entries []string
}

// NewHistoryStore creates a store persisting under key (DefaultHistoryKey if empty).
func NewHistoryStore(kv KV, key string, log logrus.FieldLogger) *HistoryStore {
	if key == "" {
		key = DefaultHistoryKey
	}
	return &HistoryStore{kv: kv, key: key, log: log, entries: []string{}}
}

// Load reads the persisted history. A missing or unreadable value yields an
// empty history.
func (s *HistoryStore) Load(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.read(ctx)
	return slices.Clone(s.entries)
}

// Record moves name to the front, truncates to MaxHistoryEntries, persists the
// result and returns it.
func (s *HistoryStore) Record(ctx context.Context, name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = prepend(s.entries, name)

	raw, err := json.Marshal(s.entries)
	if err == nil {
		err = s.kv.Set(ctx, s.key, string(raw))
	}
	if err != nil {
		s.fail(&StorageError{Op: "write", Key: s.key, Err: err})
	}

	return slices.Clone(s.entries)
}

// Entries returns the in-memory history without touching storage.
func (s *HistoryStore) Entries() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.entries)
}

func (s *HistoryStore) read(ctx context.Context) []string {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, ErrNotFound) {
		return []string{}
	}
	if err != nil {
		s.fail(&StorageError{Op: "read", Key: s.key, Err: err})
		return []string{}
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		s.fail(&StorageError{Op: "parse", Key: s.key, Err: err})
		return []string{}
	}

	entries := make([]string, 0, MaxHistoryEntries)
	for _, name := range stored {
		if len(entries) == MaxHistoryEntries {
			break
		}
		if !slices.Contains(entries, name) {
			entries = append(entries, name)
		}
	}
	return entries
}

func (s *HistoryStore) fail(err *StorageError) {
	metrics.HistoryStorageErrors.WithLabelValues(err.Op).Inc()
	s.log.WithError(err).Warn("search history storage failure")
}

// prepend returns name followed by entries without name, capped at MaxHistoryEntries.
func prepend(entries []string, name string) []string {
	next := make([]string, 0, MaxHistoryEntries)
	next = append(next, name)
	for _, e := range entries {
		if len(next) == MaxHistoryEntries {
			break
		}
		if e != name {
			next = append(next, e)
		}
	}
	return next
}
