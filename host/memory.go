// SPDX-License-Identifier: Unlicense OR MIT

package host

// DefaultMaxIdle is the number of frames an unused Memory entry
// survives when Memory.MaxIdle is zero.
const DefaultMaxIdle = 60

// Memory stores values across frames, keyed by ID. Entries that are
// not accessed for more than MaxIdle frames are dropped by EndFrame.
//
// The zero value is ready to use. Memory is not safe for concurrent
// use; it belongs to the goroutine running the frame loop.
type Memory struct {
	// MaxIdle overrides DefaultMaxIdle when positive.
	MaxIdle int

	frame   uint64
	entries map[ID]*memEntry
}

type memEntry struct {
	val      interface{}
	lastUsed uint64
}

// Get returns the value stored under id, if it exists and has type T.
func Get[T any](m *Memory, id ID) (T, bool) {
	var zero T
	if m == nil {
		return zero, false
	}
	e, ok := m.entries[id]
	if !ok {
		return zero, false
	}
	v, ok := e.val.(T)
	if !ok {
		return zero, false
	}
	e.lastUsed = m.frame
	return v, true
}

// Insert stores v under id, replacing any previous value.
func Insert[T any](m *Memory, id ID, v T) {
	if m == nil {
		return
	}
	if m.entries == nil {
		m.entries = make(map[ID]*memEntry)
	}
	m.entries[id] = &memEntry{val: v, lastUsed: m.frame}
}

// GetOrInsert returns the value stored under id. If there is none,
// or it has a different type, the result of create is stored and
// returned. A nil Memory stores nothing and always calls create.
func GetOrInsert[T any](m *Memory, id ID, create func() T) T {
	if v, ok := Get[T](m, id); ok {
		return v
	}
	v := create()
	Insert(m, id, v)
	return v
}

// Remove drops the value stored under id.
func (m *Memory) Remove(id ID) {
	if m == nil {
		return
	}
	delete(m.entries, id)
}

// Len returns the number of stored values.
func (m *Memory) Len() int {
	if m == nil {
		return 0
	}
	return len(m.entries)
}

// EndFrame advances the frame counter and evicts idle entries.
func (m *Memory) EndFrame() {
	maxIdle := uint64(DefaultMaxIdle)
	if m.MaxIdle > 0 {
		maxIdle = uint64(m.MaxIdle)
	}
	for id, e := range m.entries {
		if m.frame-e.lastUsed >= maxIdle {
			delete(m.entries, id)
		}
	}
	m.frame++
}
