package prefs

// MemoryStore is an in-memory Store.
type MemoryStore struct {
	values map[string]string
	closed bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

func (m *MemoryStore) Get(key string) (string, bool, error) {
	if m.closed {
		return "", false, ErrClosed
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryStore) Set(key, value string) error {
	if m.closed {
		return ErrClosed
	}
	m.values[key] = value
	return nil
}

func (m *MemoryStore) Close() error {
	m.closed = true
	return nil
}
