// Package sqlitestore implements the component value store on SQLite. Each
// logged batch is one row holding the cty type and value as JSON, so values
// of any component kind round-trip without a schema per component.
//
// The store resolves the same latest-at queries as inmemorystore and doubles
// as the blueprint store: edited values committed through the registry are
// persisted as static rows and survive restarts.
package sqlitestore

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/specialistvlad/componentui/internal/component"
	"github.com/specialistvlad/componentui/internal/config"
	"github.com/specialistvlad/componentui/internal/ctxlog"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

//go:embed schema.sql
var schemaSQL string

// ErrMissingValue is returned when asked to store a missing RawValue.
var ErrMissingValue = errors.New("sqlitestore: cannot store a missing value")

// Store is a component value store backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and applies the
// schema. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database %s: %w", path, err)
	}
	// SQLite allows a single writer; one connection also keeps ":memory:"
	// databases from splitting into one database per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema to %s: %w", path, err)
	}

	ctxlog.FromContext(ctx).Debug("Opened SQLite component store.", "path", path)
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Append logs value for key at path. An empty timeline logs static data.
func (s *Store) Append(ctx context.Context, path component.EntityPath, timeline string, at int64, key component.TypeKey, value component.RawValue) (component.RowID, error) {
	if value.IsMissing() {
		return component.RowID{}, fmt.Errorf("%w: '%s' at '%s'", ErrMissingValue, key, path)
	}

	ty := value.Value().Type()
	typeJSON, err := ctyjson.MarshalType(ty)
	if err != nil {
		return component.RowID{}, fmt.Errorf("encode type of '%s': %w", key, err)
	}
	valueJSON, err := ctyjson.Marshal(value.Value(), ty)
	if err != nil {
		return component.RowID{}, fmt.Errorf("encode value of '%s': %w", key, err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO component_rows (row_id, entity_path, component, timeline, time, type_json, value_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id.String(), string(path), string(key), timeline, at, string(typeJSON), string(valueJSON))
	if err != nil {
		return component.RowID{}, fmt.Errorf("insert '%s' at '%s': %w", key, path, err)
	}

	ctxlog.FromContext(ctx).Debug("Appended component row.", "path", path, "key", key, "timeline", timeline, "at", at, "row_id", id)
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

// Resolve returns the latest-at value of key at path. Static rows take
// precedence over rows on a timeline. A component that was never logged
// resolves to the zero RawValue and no error.
func (s *Store) Resolve(ctx context.Context, path component.EntityPath, key component.TypeKey, q component.Query) (component.RawValue, component.CacheKey, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT row_id, type_json, value_json FROM component_rows
		 WHERE entity_path = ? AND component = ? AND timeline = ''
		 ORDER BY seq DESC LIMIT 1`,
		string(path), string(key))
	value, cacheKey, err := scanValue(row)
	if err == nil || !errors.Is(err, sql.ErrNoRows) {
		return value, cacheKey, err
	}
	if q.IsStatic() {
		return component.RawValue{}, 0, nil
	}

	row = s.db.QueryRowContext(ctx,
		`SELECT row_id, type_json, value_json FROM component_rows
		 WHERE entity_path = ? AND component = ? AND timeline = ? AND time <= ?
		 ORDER BY time DESC, seq DESC LIMIT 1`,
		string(path), string(key), q.Timeline, q.At)
	value, cacheKey, err = scanValue(row)
	if errors.Is(err, sql.ErrNoRows) {
		return component.RawValue{}, 0, nil
	}
	return value, cacheKey, err
}

func scanValue(row *sql.Row) (component.RawValue, component.CacheKey, error) {
	var rowID, typeJSON, valueJSON string
	if err := row.Scan(&rowID, &typeJSON, &valueJSON); err != nil {
		return component.RawValue{}, 0, err
	}

	id, err := uuid.Parse(rowID)
	if err != nil {
		return component.RawValue{}, 0, fmt.Errorf("row %s: invalid row id: %w", rowID, err)
	}
	ty, err := ctyjson.UnmarshalType([]byte(typeJSON))
	if err != nil {
		return component.RawValue{}, 0, fmt.Errorf("row %s: decode type: %w", rowID, err)
	}
	val, err := ctyjson.Unmarshal([]byte(valueJSON), ty)
	if err != nil {
		return component.RawValue{}, 0, fmt.Errorf("row %s: decode value: %w", rowID, err)
	}
	raw, err := component.NewRawValue(val)
	if err != nil {
		return component.RawValue{}, 0, fmt.Errorf("row %s: %w", rowID, err)
	}
	return raw, component.RowCacheKey(id), nil
}

// Components lists the keys that resolve to a value at path for q, sorted.
func (s *Store) Components(ctx context.Context, path component.EntityPath, q component.Query) ([]component.TypeKey, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT DISTINCT component FROM component_rows
		 WHERE entity_path = ? AND (timeline = '' OR (timeline = ? AND time <= ?))
		 ORDER BY component`,
		string(path), q.Timeline, q.At)
	if err != nil {
		return nil, fmt.Errorf("list components of '%s': %w", path, err)
	}
	defer rows.Close()

	var keys []component.TypeKey
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, component.TypeKey(k))
	}
	return keys, rows.Err()
}

// Paths lists every entity with at least one row, sorted.
func (s *Store) Paths(ctx context.Context) ([]component.EntityPath, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT entity_path FROM component_rows ORDER BY entity_path`)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	defer rows.Close()

	var paths []component.EntityPath
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, component.EntityPath(p))
	}
	return paths, rows.Err()
}

// Commit implements registry.Committer by persisting value as a static row.
func (s *Store) Commit(ctx context.Context, writePath component.EntityPath, key component.TypeKey, value component.RawValue) error {
	_, err := s.Append(ctx, writePath, "", 0, key, value)
	return err
}
