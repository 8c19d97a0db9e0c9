package postgres

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/dukerupert/wardrobe/internal/storage"
)

// passThroughScope runs fn directly and records the outcome so tests can
// assert that a failing operation would have rolled back.
type passThroughScope struct {
	calls   int
	lastErr error
}

func (s *passThroughScope) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	s.calls++
	s.lastErr = fn(ctx)
	return s.lastErr
}

// memStorage is an in-memory storage.Storage with injectable failures.
type memStorage struct {
	mu        sync.Mutex
	files     map[string][]byte
	putErr    error
	deleteErr error
	deleted   []string
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (m *memStorage) Put(ctx context.Context, key string, content io.Reader, contentType string) error {
	if m.putErr != nil {
		return m.putErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[key] = data
	return nil
}

func (m *memStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[key]
	if !ok {
		return nil, storage.ErrFileNotFound(key)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (m *memStorage) Delete(ctx context.Context, key string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.files[key]; !ok {
		return storage.ErrFileNotFound(key)
	}
	delete(m.files, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memStorage) Exists(ctx context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[key]
	return ok, nil
}

func (m *memStorage) List(ctx context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.files))
	for k := range m.files {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// fakeThermometer reports a fixed temperature.
type fakeThermometer struct {
	celsius float64
	err     error
	calls   int
}

func (f *fakeThermometer) TemperatureCelsius(ctx context.Context, city, country string) (float64, error) {
	f.calls++
	return f.celsius, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
