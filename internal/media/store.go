package media

import (
	"context"
	"strings"
	"sync"
)

// ObjectStore receives encoded images and returns their public URL.
type ObjectStore interface {
	PutObject(ctx context.Context, key, contentType string, body []byte) (string, error)
}

// MemoryStore keeps uploads in process; used when no bucket is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]Object
}

type Object struct {
	ContentType string
	Data        []byte
}

func NewMemoryStore(baseURL string) *MemoryStore {
	return &MemoryStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: map[string]Object{},
	}
}

func (m *MemoryStore) PutObject(_ context.Context, key, contentType string, body []byte) (string, error) {
	data := append([]byte(nil), body...)

	m.mu.Lock()
	m.objects[key] = Object{ContentType: contentType, Data: data}
	m.mu.Unlock()

	return m.baseURL + "/" + key, nil
}

// Object returns a stored upload.
func (m *MemoryStore) Object(key string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objects[key]
	return o, ok
}
