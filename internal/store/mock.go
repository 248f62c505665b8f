package store

import "encoding/json"

// MemStore is an in-memory KV used by tests and by callers that do not
// want persistence. It round-trips values through JSON so behaviour
// matches FileStore exactly.
type MemStore struct {
	blobs map[string][]byte
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{blobs: make(map[string][]byte)}
}

// Load decodes the stored blob for key into v; missing keys are a no-op.
func (s *MemStore) Load(key string, v interface{}) error {
	data, ok := s.blobs[key]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, v)
}

// Save encodes v and replaces the blob for key.
func (s *MemStore) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	s.blobs[key] = data
	return nil
}
