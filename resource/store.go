package resource

import (
	"sort"
	"sync"
)

// PersistentImageStore holds images pinned by the caller under string keys
// for the lifetime of a global context. It is unbounded; entries leave only
// through Delete or Clear. It is consulted before any fetch.
type PersistentImageStore struct {
	mu     sync.RWMutex
	images map[string]*Image
}

// NewPersistentImageStore returns an empty store.
func NewPersistentImageStore() *PersistentImageStore {
	return &PersistentImageStore{images: make(map[string]*Image)}
}

// Put decodes data and stores it under key, replacing any previous image.
func (s *PersistentImageStore) Put(key string, data []byte) (*Image, error) {
	img, err := Decode(data)
	if err != nil {
		return nil, &DecodeError{URI: key, Err: err}
	}
	s.PutImage(key, img)
	return img, nil
}

// PutImage stores an already decoded image under key.
func (s *PersistentImageStore) PutImage(key string, img *Image) {
	s.mu.Lock()
	s.images[key] = img
	s.mu.Unlock()
}

// Get returns the image stored under key.
func (s *PersistentImageStore) Get(key string) (*Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.images[key]
	return img, ok
}

// Delete removes key and reports whether it was present.
func (s *PersistentImageStore) Delete(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.images[key]
	delete(s.images, key)
	return ok
}

// Keys returns the stored keys in sorted order.
func (s *PersistentImageStore) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.images))
	for k := range s.images {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

func (s *PersistentImageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.images)
}

func (s *PersistentImageStore) Clear() {
	s.mu.Lock()
	clear(s.images)
	s.mu.Unlock()
}
