package journal

import (
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/rustyeddy/tradecal/datekey"
	"github.com/rustyeddy/tradecal/kv"
)

// PersistError reports that the record map could not be written. The
// in-memory map is still up to date.
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %q: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Store is the authoritative RecordMap for the running process.
type Store struct {
	backend kv.Store
	key     string
	log     *zap.Logger
	records RecordMap
}

// New returns a Store that persists under key in backend. Call Load
// before use.
func New(backend kv.Store, key string, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		backend: backend,
		key:     key,
		log:     log.Named("journal"),
		records: RecordMap{},
	}
}

// Load reads the persisted map. A missing, unreadable or corrupt value
// loads as an empty map.
func (s *Store) Load() RecordMap {
	s.records = s.read()
	return s.records
}

func (s *Store) read() RecordMap {
	raw, found, err := s.backend.Get(s.key)
	if err != nil {
		s.log.Warn("read records failed, starting empty", zap.String("key", s.key), zap.Error(err))
		return RecordMap{}
	}
	if !found {
		s.log.Debug("no records stored yet", zap.String("key", s.key))
		return RecordMap{}
	}

	var m RecordMap
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		s.log.Warn("stored records unparsable, starting empty", zap.String("key", s.key), zap.Error(err))
		return RecordMap{}
	}
	if m == nil {
		m = RecordMap{}
	}
	s.log.Debug("records loaded", zap.Int("days", len(m)))
	return m
}

// Records returns the current map. Callers must not modify it.
func (s *Store) Records() RecordMap { return s.records }

// Get returns the Record saved for key.
func (s *Store) Get(key datekey.Key) (Record, bool) {
	rec, ok := s.records[key]
	return rec, ok
}

// Put replaces whatever was saved for key with rec and returns the new
// map. It does not write to the backend.
func (s *Store) Put(key datekey.Key, rec Record) RecordMap {
	s.records = s.records.With(key, rec)
	return s.records
}

// Persist writes m as a whole to the backend.
func (s *Store) Persist(m RecordMap) error {
	data, err := json.Marshal(m)
	if err != nil {
		return &PersistError{Key: s.key, Err: err}
	}
	if err := s.backend.Set(s.key, string(data)); err != nil {
		return &PersistError{Key: s.key, Err: err}
	}
	return nil
}

// Save puts rec at key and persists the result before returning. On a
// *PersistError the new map is still returned and kept in memory.
func (s *Store) Save(key datekey.Key, rec Record) (RecordMap, error) {
	m := s.Put(key, rec)
	if err := s.Persist(m); err != nil {
		s.log.Warn("record saved in memory only", zap.String("date", key.String()), zap.Error(err))
		return m, err
	}
	s.log.Debug("record saved", zap.String("date", key.String()), zap.Float64("pnl", rec.PnL))
	return m, nil
}
