// internal/save/memory.go
package save

import (
	"context"
	"log/slog"
	"sync"
)

// MemoryStore keeps the encoded record in memory. The batch simulator and
// tests use it.
type MemoryStore struct {
	mu   sync.Mutex
	blob []byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return DefaultRecord(), nil
	}
	r, err := Decode(m.blob)
	if err != nil {
		slog.WarnContext(ctx, "save record unreadable, using default", "error", err)
		return DefaultRecord(), nil
	}
	return r, nil
}

func (m *MemoryStore) Save(_ context.Context, r Record) error {
	blob, err := Encode(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.blob = blob
	m.mu.Unlock()
	return nil
}

// SetRaw replaces the stored bytes verbatim.
func (m *MemoryStore) SetRaw(blob []byte) {
	m.mu.Lock()
	m.blob = append([]byte(nil), blob...)
	m.mu.Unlock()
}

func (m *MemoryStore) Close() error {
	return nil
}
