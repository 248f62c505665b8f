// Package store provides functionality for storing and retrieving application data.
//
// State is held as JSON blobs behind a small key-value interface so the
// repository and sync layers stay decoupled from the storage mechanism.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Well-known state keys.
const (
	KeySelectedPeriods = "selected_periods"
	KeySheetCache      = "sheet_cache"
	KeyManualTxs       = "manual_txs"
	KeyIgnoredIDs      = "ignored_ids"
	KeyPeriodSources   = "period_sources"
)

// KV is the typed load/save capability injected into the core. A missing
// key must load as the zero value, not an error, so first runs work
// against an empty store.
type KV interface {
	// Load decodes the JSON blob stored under key into v. A missing key
	// leaves v untouched and returns nil.
	Load(key string, v interface{}) error
	// Save encodes v as JSON and stores it under key, replacing any
	// previous value atomically.
	Save(key string, v interface{}) error
}

// FileStore is a KV backed by one JSON file per key in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("error creating data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Load reads and decodes the JSON file for key.
func (s *FileStore) Load(key string, v interface{}) error {
	path := s.path(key)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("key", key).Debug("No stored state for key")
			return nil
		}
		return fmt.Errorf("error reading state file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding state file %s: %w", path, err)
	}
	return nil
}

// Save writes v as JSON, going through a temp file so readers never
// observe a half-written blob.
func (s *FileStore) Save(key string, v interface{}) error {
	path := s.path(key)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding state for key %s: %w", key, err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("error writing state file %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("error replacing state file %s: %w", path, err)
	}

	log.WithFields(logrus.Fields{
		"key":   key,
		"bytes": len(data),
	}).Debug("Saved state")
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
