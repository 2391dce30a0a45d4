package inmemorystore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/config"
	"github.com/specialistvlad/componentui/internal/ctxlog"
)

// ErrMissingValue is returned when asked to store a missing RawValue.
var ErrMissingValue = errors.New("inmemorystore: cannot store a missing value")

type row struct {
	id       component.RowID
	timeline string
	at       int64
	value    component.RawValue
}

// Store keeps every logged row per entity and component in append order.
//
// Reads vastly outnumber writes (every frame resolves every visible
// component, edits are rare), so a single RWMutex guards the whole store.
type Store struct {
	mu   sync.RWMutex
	rows map[component.EntityPath]map[component.TypeKey][]row
}

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{rows: make(map[component.EntityPath]map[component.TypeKey][]row)}
}

// Append logs value for key at path. An empty timeline logs static data.
func (s *Store) Append(ctx context.Context, path component.EntityPath, timeline string, at int64, key component.TypeKey, value component.RawValue) (component.RowID, error) {
	if value.IsMissing() {
		return component.RowID{}, fmt.Errorf("%w: '%s' at '%s'", ErrMissingValue, key, path)
	}

	id := component.NewRowID()
	s.mu.Lock()
	byKey, ok := s.rows[path]
	if !ok {
		byKey = make(map[component.TypeKey][]row)
		s.rows[path] = byKey
	}
	byKey[key] = append(byKey[key], row{id: id, timeline: timeline, at: at, value: value})
	s.mu.Unlock()

	ctxlog.FromContext(ctx).Debug("Appended component row.", "path", path, "key", key, "timeline", timeline, "at", at, "instances", value.Len())
	return id, nil
}

// Ingest appends every component of every log entry.
func (s *Store) Ingest(ctx context.Context, logs []*config.LogEntry) error {
	for _, entry := range logs {
		keys := make([]component.TypeKey, 0, len(entry.Components))
		for k := range entry.Components {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

		for _, k := range keys {
			if _, err := s.Append(ctx, entry.Path, entry.Timeline, entry.At, k, entry.Components[k]); err != nil {
				return err
			}
		}
	}
	return nil
}

// Resolve returns the latest-at value of key at path and a cache key derived
// from the row it came from. A component that was never logged resolves to
// the zero RawValue and no error.
func (s *Store) Resolve(_ context.Context, path component.EntityPath, key component.TypeKey, q component.Query) (component.RawValue, component.CacheKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := latestAt(s.rows[path][key], q)
	if !ok {
		return component.RawValue{}, 0, nil
	}
	return r.value, component.RowCacheKey(r.id), nil
}

// Components lists the keys that resolve to a value at path for q, sorted.
func (s *Store) Components(_ context.Context, path component.EntityPath, q component.Query) ([]component.TypeKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []component.TypeKey
	for k, rows := range s.rows[path] {
		if _, ok := latestAt(rows, q); ok {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

// Paths lists every entity with at least one row, sorted.
func (s *Store) Paths(_ context.Context) ([]component.EntityPath, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]component.EntityPath, 0, len(s.rows))
	for p := range s.rows {
		paths = append(paths, p)
	}
	sort.Slice(paths, func(i, j int) bool { return paths[i] < paths[j] })
	return paths, nil
}

// Commit implements registry.Committer by logging value as static data.
func (s *Store) Commit(ctx context.Context, writePath component.EntityPath, key component.TypeKey, value component.RawValue) error {
	_, err := s.Append(ctx, writePath, "", 0, key, value)
	return err
}

// latestAt picks the row a query resolves to. The newest static row wins.
// Otherwise the row on q's timeline with the greatest time not after q.At
// wins, later appends breaking ties.
func latestAt(rows []row, q component.Query) (row, bool) {
	var best row
	found := false
	for i := len(rows) - 1; i >= 0; i-- {
		if rows[i].timeline == "" {
			return rows[i], true
		}
	}
	if q.IsStatic() {
		return best, false
	}
	for _, r := range rows {
		if r.timeline != q.Timeline || r.at > q.At {
			continue
		}
		if !found || r.at >= best.at {
			best, found = r, true
		}
	}
	return best, found
}
